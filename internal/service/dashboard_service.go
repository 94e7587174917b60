package service

import (
	"context"
	"time"

	"socialdesk/internal/models"
	"socialdesk/internal/repository"
)

type DashboardStats struct {
	ActiveClients   int `json:"activeClients"`
	PendingApproval int `json:"pendingApproval"`
	BoostRequests   int `json:"boostRequests"`
	ApprovedPosts   int `json:"approvedPosts"`
	TodayPosts      int `json:"todayPosts"`
	TodayEvents     int `json:"todayEvents"`
}

type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

type dashboardService struct {
	clientRepo repository.ClientRepository
	postRepo   repository.PostRepository
	eventRepo  repository.EventRepository
}

func NewDashboardService(clientRepo repository.ClientRepository, postRepo repository.PostRepository, eventRepo repository.EventRepository) DashboardService {
	return &dashboardService{
		clientRepo: clientRepo,
		postRepo:   postRepo,
		eventRepo:  eventRepo,
	}
}

func (s *dashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	today := time.Now().Format("2006-01-02")

	activeClients, err := s.clientRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	pendingApproval, err := s.postRepo.CountByStatus(ctx, models.StatusAguardandoAprovacao)
	if err != nil {
		return nil, err
	}

	boostRequests, err := s.postRepo.CountBoostRequested(ctx)
	if err != nil {
		return nil, err
	}

	approvedPosts, err := s.postRepo.CountByStatus(ctx, models.StatusAprovado)
	if err != nil {
		return nil, err
	}

	todayPosts, err := s.postRepo.CountScheduledOn(ctx, today)
	if err != nil {
		return nil, err
	}

	todayEvents, err := s.eventRepo.CountOn(ctx, today)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		ActiveClients:   activeClients,
		PendingApproval: pendingApproval,
		BoostRequests:   boostRequests,
		ApprovedPosts:   approvedPosts,
		TodayPosts:      todayPosts,
		TodayEvents:     todayEvents,
	}, nil
}
