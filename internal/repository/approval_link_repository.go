package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"socialdesk/internal/apperr"
	"socialdesk/internal/models"
)

type approvalLinkRepository struct {
	db *sqlx.DB
}

func NewApprovalLinkRepository(db *sqlx.DB) ApprovalLinkRepository {
	return &approvalLinkRepository{db: db}
}

func (r *approvalLinkRepository) Create(ctx context.Context, link *models.ApprovalLink) error {
	if link.LinkID == "" {
		link.LinkID = uuid.New().String()
	}
	link.CreatedDate = time.Now()

	query := `
		INSERT INTO approval_links (link_id, client_id, unique_token, expires_at, is_active, created_date)
		VALUES (:link_id, :client_id, :unique_token, :expires_at, :is_active, :created_date)
	`

	if _, err := r.db.NamedExecContext(ctx, query, link); err != nil {
		return apperr.Storagef("failed to create approval link: %v", err)
	}

	return nil
}

func (r *approvalLinkRepository) GetByToken(ctx context.Context, token string) (*models.ApprovalLink, error) {
	var link models.ApprovalLink

	query := `SELECT * FROM approval_links WHERE unique_token = $1`

	err := r.db.GetContext(ctx, &link, query, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("approval link")
		}
		return nil, apperr.Storagef("failed to fetch approval link: %v", err)
	}

	return &link, nil
}

func (r *approvalLinkRepository) GetByClientID(ctx context.Context, clientID string) ([]models.ApprovalLink, error) {
	var links []models.ApprovalLink

	query := `SELECT * FROM approval_links WHERE client_id = $1 ORDER BY created_date DESC`

	if err := r.db.SelectContext(ctx, &links, query, clientID); err != nil {
		return nil, apperr.Storagef("failed to list approval links: %v", err)
	}

	return links, nil
}

// Delete does not report a missing link: revoking twice is a no-op.
func (r *approvalLinkRepository) Delete(ctx context.Context, linkID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM approval_links WHERE link_id = $1`, linkID); err != nil {
		return apperr.Storagef("failed to delete approval link: %v", err)
	}

	return nil
}
