package dto

import (
	"time"
)

type NoteResponse struct {
	Id        uint      `json:"id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type NoteListItem struct {
	Id        uint      `json:"id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
}

type ShowNoteRequest struct {
	Id uint `validate:"required,gt=0"`
}
