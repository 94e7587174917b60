package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialdesk/internal/apperr"
)

func TestClientRepository_DeleteCascade(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewClientRepository(sqlxDB)

	ctx := context.Background()
	clientID := uuid.New().String()

	t.Run("deletes children and client in one transaction", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM posts WHERE client_id = $1`).
			WithArgs(clientID).
			WillReturnResult(sqlmock.NewResult(0, 4))
		mock.ExpectExec(`DELETE FROM payments WHERE client_id = $1`).
			WithArgs(clientID).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`DELETE FROM approval_links WHERE client_id = $1`).
			WithArgs(clientID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM clients WHERE client_id = $1`).
			WithArgs(clientID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.DeleteCascade(ctx, clientID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing client rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM posts WHERE client_id = $1`).
			WithArgs(clientID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM payments WHERE client_id = $1`).
			WithArgs(clientID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM approval_links WHERE client_id = $1`).
			WithArgs(clientID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM clients WHERE client_id = $1`).
			WithArgs(clientID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.DeleteCascade(ctx, clientID)

		assert.ErrorIs(t, err, apperr.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("child delete failure rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM posts WHERE client_id = $1`).
			WithArgs(clientID).
			WillReturnError(errors.New("connection failed"))
		mock.ExpectRollback()

		err := repo.DeleteCascade(ctx, clientID)

		assert.ErrorIs(t, err, apperr.ErrStorage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
