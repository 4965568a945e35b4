package entity

import (
	"time"
)

type Note struct {
	Id        uint
	Title     string
	Summary   string
	Content   string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
