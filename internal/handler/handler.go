package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"socialdesk/internal/config"
	"socialdesk/internal/ratelimit"
	"socialdesk/internal/service"
)

type Handlers struct {
	AuthService      service.AuthService
	ClientService    service.ClientService
	PostService      service.PostService
	ApprovalService  service.ApprovalService
	PaymentService   service.PaymentService
	AgendaService    service.AgendaService
	DashboardService service.DashboardService
	Limiter          ratelimit.Limiter
	Cfg              *config.Config
	Validate         *validator.Validate
}

func NewHandlers(services *service.Service, limiter ratelimit.Limiter, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthService:      services.Auth,
		ClientService:    services.Client,
		PostService:      services.Post,
		ApprovalService:  services.Approval,
		PaymentService:   services.Payment,
		AgendaService:    services.Agenda,
		DashboardService: services.Dashboard,
		Limiter:          limiter,
		Cfg:              cfg,
		Validate:         validator.New(),
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, MessageResponse{Message: "ok"}, http.StatusOK)
}

func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.DashboardService.Stats(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, stats, http.StatusOK)
}
