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

type paymentRepository struct {
	db *sqlx.DB
}

func NewPaymentRepository(db *sqlx.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	if payment.PaymentID == "" {
		payment.PaymentID = uuid.New().String()
	}
	payment.CreatedDate = time.Now()

	query := `
		INSERT INTO payments
		(payment_id, client_id, month, year, amount, status, payment_date, invoice_url, receipt_url, notes, created_date)
		VALUES
		(:payment_id, :client_id, :month, :year, :amount, :status, :payment_date, :invoice_url, :receipt_url, :notes, :created_date)
	`

	if _, err := r.db.NamedExecContext(ctx, query, payment); err != nil {
		return apperr.Storagef("failed to create payment: %v", err)
	}

	return nil
}

func (r *paymentRepository) GetByID(ctx context.Context, paymentID string) (*models.Payment, error) {
	var payment models.Payment

	query := `SELECT * FROM payments WHERE payment_id = $1`

	err := r.db.GetContext(ctx, &payment, query, paymentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("payment %s", paymentID)
		}
		return nil, apperr.Storagef("failed to fetch payment: %v", err)
	}

	return &payment, nil
}

// GetByClientID orders newest first: by year, then by the position of the
// Portuguese month name in the calendar.
func (r *paymentRepository) GetByClientID(ctx context.Context, clientID string) ([]models.Payment, error) {
	var payments []models.Payment

	query := `
		SELECT * FROM payments
		WHERE client_id = $1
		ORDER BY year DESC,
			array_position(ARRAY['janeiro','fevereiro','março','abril','maio','junho',
				'julho','agosto','setembro','outubro','novembro','dezembro'], month) DESC
	`

	if err := r.db.SelectContext(ctx, &payments, query, clientID); err != nil {
		return nil, apperr.Storagef("failed to list payments: %v", err)
	}

	return payments, nil
}

func (r *paymentRepository) Update(ctx context.Context, payment *models.Payment) error {
	query := `
		UPDATE payments SET
			month = :month,
			year = :year,
			amount = :amount,
			status = :status,
			payment_date = :payment_date,
			invoice_url = :invoice_url,
			receipt_url = :receipt_url,
			notes = :notes
		WHERE payment_id = :payment_id
	`

	result, err := r.db.NamedExecContext(ctx, query, payment)
	if err != nil {
		return apperr.Storagef("failed to update payment: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storagef("failed to check updated rows: %v", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFoundf("payment %s", payment.PaymentID)
	}

	return nil
}

func (r *paymentRepository) Delete(ctx context.Context, paymentID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE payment_id = $1`, paymentID)
	if err != nil {
		return apperr.Storagef("failed to delete payment: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storagef("failed to check deleted rows: %v", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFoundf("payment %s", paymentID)
	}

	return nil
}
