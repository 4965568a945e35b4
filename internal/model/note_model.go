package model

import (
	"time"

	"gorm.io/gorm"
)

// Title length is capped at 200 by input convention only, so it is
// stored as text.
type Note struct {
	Id        uint           `gorm:"primaryKey;autoIncrement"`
	Title     string         `gorm:"type:text;not null"`
	Summary   string         `gorm:"type:text;not null"`
	Content   string         `gorm:"type:text;not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Note) TableName() string {
	return "notes"
}
