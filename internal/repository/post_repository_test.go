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
	"socialdesk/internal/models"
)

func TestPostRepository_UpdateStatusFrom(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewPostRepository(sqlxDB)

	ctx := context.Background()
	postID := uuid.New().String()

	t.Run("moves post when the expected status still holds", func(t *testing.T) {
		mock.ExpectExec(`UPDATE posts SET status = $1 WHERE post_id = $2 AND status = $3`).
			WithArgs(models.StatusAprovado, postID, models.StatusAguardandoAprovacao).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatusFrom(ctx, postID, models.StatusAguardandoAprovacao, models.StatusAprovado)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("conflict when another actor already moved the post", func(t *testing.T) {
		mock.ExpectExec(`UPDATE posts SET status = $1 WHERE post_id = $2 AND status = $3`).
			WithArgs(models.StatusAprovado, postID, models.StatusAguardandoAprovacao).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatusFrom(ctx, postID, models.StatusAguardandoAprovacao, models.StatusAprovado)

		assert.ErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec(`UPDATE posts SET status = $1 WHERE post_id = $2 AND status = $3`).
			WithArgs(models.StatusAprovado, postID, models.StatusAguardandoAprovacao).
			WillReturnError(errors.New("connection failed"))

		err := repo.UpdateStatusFrom(ctx, postID, models.StatusAguardandoAprovacao, models.StatusAprovado)

		assert.ErrorIs(t, err, apperr.ErrStorage)
	})
}

func TestPostRepository_Reject(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewPostRepository(sqlxDB)

	ctx := context.Background()
	postID := uuid.New().String()
	reason := "trocar a foto de capa"

	t.Run("stores status and reason together", func(t *testing.T) {
		mock.ExpectExec(`
			UPDATE posts SET status = $1, rejection_reason = $2
			WHERE post_id = $3 AND status = $4
		`).
			WithArgs(models.StatusRejeitado, reason, postID, models.StatusAguardandoAprovacao).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Reject(ctx, postID, models.StatusAguardandoAprovacao, reason)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("conflict when the post already left the approval queue", func(t *testing.T) {
		mock.ExpectExec(`
			UPDATE posts SET status = $1, rejection_reason = $2
			WHERE post_id = $3 AND status = $4
		`).
			WithArgs(models.StatusRejeitado, reason, postID, models.StatusAguardandoAprovacao).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Reject(ctx, postID, models.StatusAguardandoAprovacao, reason)

		assert.ErrorIs(t, err, apperr.ErrConflict)
	})
}

func TestPostRepository_SetBoost(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewPostRepository(sqlxDB)

	ctx := context.Background()
	postID := uuid.New().String()

	t.Run("flags post with notes", func(t *testing.T) {
		mock.ExpectExec(`UPDATE posts SET boost_requested = $1, boost_notes = $2 WHERE post_id = $3`).
			WithArgs(true, "investir R$50", postID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.SetBoost(ctx, postID, true, "investir R$50"))
	})

	t.Run("post not found", func(t *testing.T) {
		mock.ExpectExec(`UPDATE posts SET boost_requested = $1, boost_notes = $2 WHERE post_id = $3`).
			WithArgs(false, "", postID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SetBoost(ctx, postID, false, "")

		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestPostRepository_CountScheduledOn(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewPostRepository(sqlxDB)

	ctx := context.Background()

	t.Run("matches by date prefix", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"count"}).AddRow(3)

		mock.ExpectQuery(`SELECT COUNT(*) FROM posts WHERE scheduled_date LIKE $1 || '%'`).
			WithArgs("2025-03-14").
			WillReturnRows(rows)

		count, err := repo.CountScheduledOn(ctx, "2025-03-14")

		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})
}
