package unitofwork

import (
	"context"
	"testing"
	"time"

	"ai-notes-hub/internal/entity"
	"ai-notes-hub/internal/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWorkTransaction(t *testing.T) {
	db, mock := testutil.NewMockGormDB(t)
	uow := NewRepositoryFactory(db).NewUnitOfWork(context.Background())
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "notes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	require.NoError(t, uow.Begin(ctx))
	assert.EqualError(t, uow.Begin(ctx), "transaction already started")

	note := &entity.Note{Title: "T", Summary: "S", Content: "C", CreatedAt: time.Now()}
	require.NoError(t, uow.NoteRepository().Create(ctx, note))
	require.NoError(t, uow.Commit())

	assert.EqualError(t, uow.Commit(), "no transaction to commit")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWorkRollback(t *testing.T) {
	db, mock := testutil.NewMockGormDB(t)
	uow := NewUnitOfWork(db)

	assert.EqualError(t, uow.Rollback(), "no transaction to rollback")

	mock.ExpectBegin()
	mock.ExpectRollback()

	require.NoError(t, uow.Begin(context.Background()))
	require.NoError(t, uow.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}
