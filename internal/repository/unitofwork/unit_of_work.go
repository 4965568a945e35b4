package unitofwork

import (
	"context"

	"ai-notes-hub/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	NoteRepository() contract.NoteRepository
}
