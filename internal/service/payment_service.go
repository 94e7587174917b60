package service

import (
	"context"

	"socialdesk/internal/apperr"
	"socialdesk/internal/models"
	"socialdesk/internal/repository"
)

var months = []string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

func validMonth(m string) bool {
	for _, month := range months {
		if m == month {
			return true
		}
	}
	return false
}

type PaymentRequest struct {
	Month       string  `json:"month" validate:"required"`
	Year        int     `json:"year" validate:"required"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	PaymentDate string  `json:"paymentDate"`
	InvoiceURL  string  `json:"invoiceUrl"`
	ReceiptURL  string  `json:"receiptUrl"`
	Notes       string  `json:"notes"`
}

type PaymentService interface {
	CreatePayment(ctx context.Context, clientID string, req PaymentRequest) (*models.Payment, error)
	UpdatePayment(ctx context.Context, paymentID string, req PaymentRequest) (*models.Payment, error)
	ListPayments(ctx context.Context, clientID string) ([]models.Payment, error)
	DeletePayment(ctx context.Context, paymentID string) error
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	clientRepo  repository.ClientRepository
}

func NewPaymentService(paymentRepo repository.PaymentRepository, clientRepo repository.ClientRepository) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		clientRepo:  clientRepo,
	}
}

func validatePayment(req PaymentRequest) (string, error) {
	if !validMonth(req.Month) {
		return "", apperr.Validationf("unknown month %q", req.Month)
	}
	if req.Year <= 0 {
		return "", apperr.Validationf("year is required")
	}

	status := req.Status
	if status == "" {
		status = models.PaymentPendente
	}
	if !models.ValidPaymentStatus(status) {
		return "", apperr.Validationf("unknown payment status %q", status)
	}

	return status, nil
}

func (s *paymentService) CreatePayment(ctx context.Context, clientID string, req PaymentRequest) (*models.Payment, error) {
	status, err := validatePayment(req)
	if err != nil {
		return nil, err
	}

	if _, err := s.clientRepo.GetByID(ctx, clientID); err != nil {
		return nil, err
	}

	payment := &models.Payment{
		ClientID:    clientID,
		Month:       req.Month,
		Year:        req.Year,
		Amount:      req.Amount,
		Status:      status,
		PaymentDate: req.PaymentDate,
		InvoiceURL:  req.InvoiceURL,
		ReceiptURL:  req.ReceiptURL,
		Notes:       req.Notes,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

func (s *paymentService) UpdatePayment(ctx context.Context, paymentID string, req PaymentRequest) (*models.Payment, error) {
	status, err := validatePayment(req)
	if err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	payment.Month = req.Month
	payment.Year = req.Year
	payment.Amount = req.Amount
	payment.Status = status
	payment.PaymentDate = req.PaymentDate
	payment.InvoiceURL = req.InvoiceURL
	payment.ReceiptURL = req.ReceiptURL
	payment.Notes = req.Notes

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

func (s *paymentService) ListPayments(ctx context.Context, clientID string) ([]models.Payment, error) {
	return s.paymentRepo.GetByClientID(ctx, clientID)
}

func (s *paymentService) DeletePayment(ctx context.Context, paymentID string) error {
	return s.paymentRepo.Delete(ctx, paymentID)
}
