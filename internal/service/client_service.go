package service

import (
	"context"
	"io"
	"strings"

	"socialdesk/internal/apperr"
	"socialdesk/internal/models"
	"socialdesk/internal/repository"
	"socialdesk/internal/storage"
)

type ClientRequest struct {
	Name          string  `json:"name" validate:"required"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Company       string  `json:"company"`
	Instagram     string  `json:"instagram"`
	MonthlyFee    float64 `json:"monthlyFee"`
	PaymentStatus string  `json:"paymentStatus"`
	Notes         string  `json:"notes"`
}

// Client file slots fed by uploads.
const (
	ClientFileProfilePhoto = "profile_photo"
	ClientFileContractPDF  = "contract_pdf"
)

type ClientService interface {
	CreateClient(ctx context.Context, req ClientRequest) (*models.Client, error)
	UpdateClient(ctx context.Context, clientID string, req ClientRequest) (*models.Client, error)
	GetClient(ctx context.Context, clientID string) (*models.Client, error)
	ListClients(ctx context.Context) ([]models.Client, error)
	// DeleteClient removes the client and all of its posts, payments and
	// approval links in one transaction.
	DeleteClient(ctx context.Context, clientID string) error
	AttachFile(ctx context.Context, clientID, field, fileName string, file io.Reader, size int64) (*models.Client, error)
}

type clientService struct {
	clientRepo repository.ClientRepository
	storage    storage.Storage
}

func NewClientService(clientRepo repository.ClientRepository, store storage.Storage) ClientService {
	return &clientService{
		clientRepo: clientRepo,
		storage:    store,
	}
}

func (s *clientService) CreateClient(ctx context.Context, req ClientRequest) (*models.Client, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperr.Validationf("name is required")
	}

	paymentStatus := req.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = models.PaymentPendente
	}
	if !models.ValidPaymentStatus(paymentStatus) {
		return nil, apperr.Validationf("unknown payment status %q", paymentStatus)
	}

	client := &models.Client{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Company:       req.Company,
		Instagram:     strings.TrimPrefix(req.Instagram, "@"),
		MonthlyFee:    req.MonthlyFee,
		PaymentStatus: paymentStatus,
		Notes:         req.Notes,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

func (s *clientService) UpdateClient(ctx context.Context, clientID string, req ClientRequest) (*models.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, apperr.Validationf("name is required")
	}

	paymentStatus := req.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = client.PaymentStatus
	}
	if !models.ValidPaymentStatus(paymentStatus) {
		return nil, apperr.Validationf("unknown payment status %q", paymentStatus)
	}

	client.Name = req.Name
	client.Email = req.Email
	client.Phone = req.Phone
	client.Company = req.Company
	client.Instagram = strings.TrimPrefix(req.Instagram, "@")
	client.MonthlyFee = req.MonthlyFee
	client.PaymentStatus = paymentStatus
	client.Notes = req.Notes

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

func (s *clientService) GetClient(ctx context.Context, clientID string) (*models.Client, error) {
	return s.clientRepo.GetByID(ctx, clientID)
}

func (s *clientService) ListClients(ctx context.Context) ([]models.Client, error) {
	return s.clientRepo.List(ctx)
}

func (s *clientService) DeleteClient(ctx context.Context, clientID string) error {
	return s.clientRepo.DeleteCascade(ctx, clientID)
}

func (s *clientService) AttachFile(ctx context.Context, clientID, field, fileName string, file io.Reader, size int64) (*models.Client, error) {
	if field != ClientFileProfilePhoto && field != ClientFileContractPDF {
		return nil, apperr.Validationf("unknown file field %q", field)
	}

	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	_, fileURL, err := s.storage.Upload(ctx, "clients", fileName, file, size)
	if err != nil {
		return nil, apperr.Storagef("failed to upload client file: %v", err)
	}

	if field == ClientFileProfilePhoto {
		client.ProfilePhoto = fileURL
	} else {
		client.ContractPDF = fileURL
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}
