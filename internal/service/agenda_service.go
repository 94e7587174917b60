package service

import (
	"context"
	"errors"
	"strings"

	"github.com/lib/pq"

	"socialdesk/internal/apperr"
	"socialdesk/internal/models"
	"socialdesk/internal/repository"
)

type EventRequest struct {
	Date  string `json:"date" validate:"required"`
	Time  string `json:"time"`
	Title string `json:"title"`
	Type  string `json:"type"`
	Notes string `json:"notes"`
}

type IdeaRequest struct {
	Title    string   `json:"title" validate:"required"`
	ClientID string   `json:"clientId"`
	Notes    string   `json:"notes"`
	Tags     []string `json:"tags"`
	Status   string   `json:"status"`
}

type TaskRequest struct {
	Title     string `json:"title" validate:"required"`
	Completed bool   `json:"completed"`
	Priority  string `json:"priority"`
}

// AgendaService covers the operator's personal calendar, the idea backlog
// and the todo list.
type AgendaService interface {
	SaveEvent(ctx context.Context, req EventRequest) (*models.PersonalEvent, error)
	ListEvents(ctx context.Context, start, end string) ([]models.PersonalEvent, error)
	DeleteEvent(ctx context.Context, eventID string) error

	CreateIdea(ctx context.Context, req IdeaRequest) (*models.Idea, error)
	ListIdeas(ctx context.Context) ([]models.Idea, error)
	UpdateIdea(ctx context.Context, ideaID string, req IdeaRequest) (*models.Idea, error)
	DeleteIdea(ctx context.Context, ideaID string) error

	CreateTask(ctx context.Context, req TaskRequest) (*models.Task, error)
	ListTasks(ctx context.Context) ([]models.Task, error)
	UpdateTask(ctx context.Context, taskID string, req TaskRequest) (*models.Task, error)
	ToggleTask(ctx context.Context, taskID string) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
}

type agendaService struct {
	eventRepo repository.EventRepository
	ideaRepo  repository.IdeaRepository
	taskRepo  repository.TaskRepository
}

func NewAgendaService(eventRepo repository.EventRepository, ideaRepo repository.IdeaRepository, taskRepo repository.TaskRepository) AgendaService {
	return &agendaService{
		eventRepo: eventRepo,
		ideaRepo:  ideaRepo,
		taskRepo:  taskRepo,
	}
}

// SaveEvent upserts by date: the calendar edits the single event of a day.
func (s *agendaService) SaveEvent(ctx context.Context, req EventRequest) (*models.PersonalEvent, error) {
	if strings.TrimSpace(req.Date) == "" {
		return nil, apperr.Validationf("date is required")
	}

	existing, err := s.eventRepo.GetByDate(ctx, req.Date)
	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		existing.Time = req.Time
		existing.Title = req.Title
		existing.Type = req.Type
		existing.Notes = req.Notes
		if err := s.eventRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	event := &models.PersonalEvent{
		Date:  req.Date,
		Time:  req.Time,
		Title: req.Title,
		Type:  req.Type,
		Notes: req.Notes,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

func (s *agendaService) ListEvents(ctx context.Context, start, end string) ([]models.PersonalEvent, error) {
	if start == "" || end == "" {
		return nil, apperr.Validationf("start and end dates are required")
	}
	return s.eventRepo.ListBetween(ctx, start, end)
}

func (s *agendaService) DeleteEvent(ctx context.Context, eventID string) error {
	return s.eventRepo.Delete(ctx, eventID)
}

func (s *agendaService) CreateIdea(ctx context.Context, req IdeaRequest) (*models.Idea, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperr.Validationf("title is required")
	}

	status := req.Status
	if status == "" {
		status = "nova"
	}

	idea := &models.Idea{
		Title:    req.Title,
		ClientID: req.ClientID,
		Notes:    req.Notes,
		Tags:     pq.StringArray(req.Tags),
		Status:   status,
	}
	if idea.Tags == nil {
		idea.Tags = pq.StringArray{}
	}

	if err := s.ideaRepo.Create(ctx, idea); err != nil {
		return nil, err
	}

	return idea, nil
}

func (s *agendaService) ListIdeas(ctx context.Context) ([]models.Idea, error) {
	return s.ideaRepo.List(ctx)
}

func (s *agendaService) UpdateIdea(ctx context.Context, ideaID string, req IdeaRequest) (*models.Idea, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperr.Validationf("title is required")
	}

	idea := &models.Idea{
		IdeaID:   ideaID,
		Title:    req.Title,
		ClientID: req.ClientID,
		Notes:    req.Notes,
		Tags:     pq.StringArray(req.Tags),
		Status:   req.Status,
	}
	if idea.Tags == nil {
		idea.Tags = pq.StringArray{}
	}
	if idea.Status == "" {
		idea.Status = "nova"
	}

	if err := s.ideaRepo.Update(ctx, idea); err != nil {
		return nil, err
	}

	return idea, nil
}

func (s *agendaService) DeleteIdea(ctx context.Context, ideaID string) error {
	return s.ideaRepo.Delete(ctx, ideaID)
}

func (s *agendaService) CreateTask(ctx context.Context, req TaskRequest) (*models.Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperr.Validationf("title is required")
	}

	priority := req.Priority
	if priority == "" {
		priority = "media"
	}

	task := &models.Task{
		Title:     req.Title,
		Completed: req.Completed,
		Priority:  priority,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *agendaService) ListTasks(ctx context.Context) ([]models.Task, error) {
	return s.taskRepo.List(ctx)
}

func (s *agendaService) UpdateTask(ctx context.Context, taskID string, req TaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, apperr.Validationf("title is required")
	}

	task.Title = req.Title
	task.Completed = req.Completed
	if req.Priority != "" {
		task.Priority = req.Priority
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *agendaService) ToggleTask(ctx context.Context, taskID string) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	task.Completed = !task.Completed

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *agendaService) DeleteTask(ctx context.Context, taskID string) error {
	return s.taskRepo.Delete(ctx, taskID)
}
