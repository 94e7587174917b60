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

type clientRepository struct {
	db *sqlx.DB
}

func NewClientRepository(db *sqlx.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, client *models.Client) error {
	if client.ClientID == "" {
		client.ClientID = uuid.New().String()
	}
	client.CreatedDate = time.Now()

	query := `
		INSERT INTO clients
		(client_id, name, email, phone, company, instagram, profile_photo, contract_pdf, monthly_fee, payment_status, notes, created_date)
		VALUES
		(:client_id, :name, :email, :phone, :company, :instagram, :profile_photo, :contract_pdf, :monthly_fee, :payment_status, :notes, :created_date)
	`

	if _, err := r.db.NamedExecContext(ctx, query, client); err != nil {
		return apperr.Storagef("failed to create client: %v", err)
	}

	return nil
}

func (r *clientRepository) GetByID(ctx context.Context, clientID string) (*models.Client, error) {
	var client models.Client

	query := `SELECT * FROM clients WHERE client_id = $1`

	err := r.db.GetContext(ctx, &client, query, clientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("client %s", clientID)
		}
		return nil, apperr.Storagef("failed to fetch client: %v", err)
	}

	return &client, nil
}

func (r *clientRepository) List(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client

	query := `SELECT * FROM clients ORDER BY name`

	if err := r.db.SelectContext(ctx, &clients, query); err != nil {
		return nil, apperr.Storagef("failed to list clients: %v", err)
	}

	return clients, nil
}

func (r *clientRepository) Update(ctx context.Context, client *models.Client) error {
	query := `
		UPDATE clients SET
			name = :name,
			email = :email,
			phone = :phone,
			company = :company,
			instagram = :instagram,
			profile_photo = :profile_photo,
			contract_pdf = :contract_pdf,
			monthly_fee = :monthly_fee,
			payment_status = :payment_status,
			notes = :notes
		WHERE client_id = :client_id
	`

	result, err := r.db.NamedExecContext(ctx, query, client)
	if err != nil {
		return apperr.Storagef("failed to update client: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storagef("failed to check updated rows: %v", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFoundf("client %s", client.ClientID)
	}

	return nil
}

// DeleteCascade runs all child deletes and the client delete in a single
// transaction so a mid-way failure never leaves orphaned records.
func (r *clientRepository) DeleteCascade(ctx context.Context, clientID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperr.Storagef("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	childDeletes := []string{
		`DELETE FROM posts WHERE client_id = $1`,
		`DELETE FROM payments WHERE client_id = $1`,
		`DELETE FROM approval_links WHERE client_id = $1`,
	}

	for _, query := range childDeletes {
		if _, err := tx.ExecContext(ctx, query, clientID); err != nil {
			return apperr.Storagef("failed to delete client records: %v", err)
		}
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM clients WHERE client_id = $1`, clientID)
	if err != nil {
		return apperr.Storagef("failed to delete client: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storagef("failed to check deleted rows: %v", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFoundf("client %s", clientID)
	}

	if err := tx.Commit(); err != nil {
		return apperr.Storagef("failed to commit client deletion: %v", err)
	}

	return nil
}

func (r *clientRepository) CountActive(ctx context.Context) (int, error) {
	var count int

	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM clients`); err != nil {
		return 0, apperr.Storagef("failed to count clients: %v", err)
	}

	return count, nil
}
