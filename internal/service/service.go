package service

import (
	"socialdesk/internal/config"
	"socialdesk/internal/notification"
	"socialdesk/internal/repository"
	"socialdesk/internal/storage"
)

type Service struct {
	Auth      AuthService
	Client    ClientService
	Post      PostService
	Approval  ApprovalService
	Payment   PaymentService
	Agenda    AgendaService
	Dashboard DashboardService
}

func NewService(repo *repository.Repository, cfg *config.Config, store storage.Storage, notifier notification.Notifier) *Service {
	return &Service{
		Auth:      NewAuthService(repo.User, cfg),
		Client:    NewClientService(repo.Client, store),
		Post:      NewPostService(repo.Post, repo.Client, store),
		Approval:  NewApprovalService(repo.ApprovalLink, repo.Client, repo.Post, notifier, cfg),
		Payment:   NewPaymentService(repo.Payment, repo.Client),
		Agenda:    NewAgendaService(repo.Event, repo.Idea, repo.Task),
		Dashboard: NewDashboardService(repo.Client, repo.Post, repo.Event),
	}
}
