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

type eventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *models.PersonalEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.New().String()
	}
	event.CreatedDate = time.Now()

	query := `
		INSERT INTO personal_events (event_id, date, time, title, type, notes, created_date)
		VALUES (:event_id, :date, :time, :title, :type, :notes, :created_date)
	`

	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		return apperr.Storagef("failed to create event: %v", err)
	}

	return nil
}

func (r *eventRepository) GetByDate(ctx context.Context, date string) (*models.PersonalEvent, error) {
	var event models.PersonalEvent

	query := `SELECT * FROM personal_events WHERE date = $1 LIMIT 1`

	err := r.db.GetContext(ctx, &event, query, date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("event on %s", date)
		}
		return nil, apperr.Storagef("failed to fetch event: %v", err)
	}

	return &event, nil
}

func (r *eventRepository) ListBetween(ctx context.Context, start, end string) ([]models.PersonalEvent, error) {
	var events []models.PersonalEvent

	query := `SELECT * FROM personal_events WHERE date >= $1 AND date <= $2 ORDER BY date`

	if err := r.db.SelectContext(ctx, &events, query, start, end); err != nil {
		return nil, apperr.Storagef("failed to list events: %v", err)
	}

	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, event *models.PersonalEvent) error {
	query := `
		UPDATE personal_events SET
			date = :date,
			time = :time,
			title = :title,
			type = :type,
			notes = :notes
		WHERE event_id = :event_id
	`

	result, err := r.db.NamedExecContext(ctx, query, event)
	if err != nil {
		return apperr.Storagef("failed to update event: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storagef("failed to check updated rows: %v", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFoundf("event %s", event.EventID)
	}

	return nil
}

func (r *eventRepository) Delete(ctx context.Context, eventID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM personal_events WHERE event_id = $1`, eventID)
	if err != nil {
		return apperr.Storagef("failed to delete event: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storagef("failed to check deleted rows: %v", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFoundf("event %s", eventID)
	}

	return nil
}

func (r *eventRepository) CountOn(ctx context.Context, date string) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM personal_events WHERE date = $1`, date)
	if err != nil {
		return 0, apperr.Storagef("failed to count events: %v", err)
	}

	return count, nil
}

type ideaRepository struct {
	db *sqlx.DB
}

func NewIdeaRepository(db *sqlx.DB) IdeaRepository {
	return &ideaRepository{db: db}
}

func (r *ideaRepository) Create(ctx context.Context, idea *models.Idea) error {
	if idea.IdeaID == "" {
		idea.IdeaID = uuid.New().String()
	}
	idea.CreatedDate = time.Now()

	query := `
		INSERT INTO ideas (idea_id, title, client_id, notes, tags, status, created_date)
		VALUES (:idea_id, :title, :client_id, :notes, :tags, :status, :created_date)
	`

	if _, err := r.db.NamedExecContext(ctx, query, idea); err != nil {
		return apperr.Storagef("failed to create idea: %v", err)
	}

	return nil
}

func (r *ideaRepository) List(ctx context.Context) ([]models.Idea, error) {
	var ideas []models.Idea

	query := `SELECT * FROM ideas ORDER BY created_date DESC`

	if err := r.db.SelectContext(ctx, &ideas, query); err != nil {
		return nil, apperr.Storagef("failed to list ideas: %v", err)
	}

	return ideas, nil
}

func (r *ideaRepository) Update(ctx context.Context, idea *models.Idea) error {
	query := `
		UPDATE ideas SET
			title = :title,
			client_id = :client_id,
			notes = :notes,
			tags = :tags,
			status = :status
		WHERE idea_id = :idea_id
	`

	result, err := r.db.NamedExecContext(ctx, query, idea)
	if err != nil {
		return apperr.Storagef("failed to update idea: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storagef("failed to check updated rows: %v", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFoundf("idea %s", idea.IdeaID)
	}

	return nil
}

func (r *ideaRepository) Delete(ctx context.Context, ideaID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM ideas WHERE idea_id = $1`, ideaID)
	if err != nil {
		return apperr.Storagef("failed to delete idea: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storagef("failed to check deleted rows: %v", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFoundf("idea %s", ideaID)
	}

	return nil
}

type taskRepository struct {
	db *sqlx.DB
}

func NewTaskRepository(db *sqlx.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *models.Task) error {
	if task.TaskID == "" {
		task.TaskID = uuid.New().String()
	}
	task.CreatedDate = time.Now()

	query := `
		INSERT INTO tasks (task_id, title, completed, priority, created_date)
		VALUES (:task_id, :title, :completed, :priority, :created_date)
	`

	if _, err := r.db.NamedExecContext(ctx, query, task); err != nil {
		return apperr.Storagef("failed to create task: %v", err)
	}

	return nil
}

func (r *taskRepository) GetByID(ctx context.Context, taskID string) (*models.Task, error) {
	var task models.Task

	query := `SELECT * FROM tasks WHERE task_id = $1`

	err := r.db.GetContext(ctx, &task, query, taskID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("task %s", taskID)
		}
		return nil, apperr.Storagef("failed to fetch task: %v", err)
	}

	return &task, nil
}

func (r *taskRepository) List(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task

	query := `SELECT * FROM tasks ORDER BY created_date DESC`

	if err := r.db.SelectContext(ctx, &tasks, query); err != nil {
		return nil, apperr.Storagef("failed to list tasks: %v", err)
	}

	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, task *models.Task) error {
	query := `
		UPDATE tasks SET
			title = :title,
			completed = :completed,
			priority = :priority
		WHERE task_id = :task_id
	`

	result, err := r.db.NamedExecContext(ctx, query, task)
	if err != nil {
		return apperr.Storagef("failed to update task: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storagef("failed to check updated rows: %v", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFoundf("task %s", task.TaskID)
	}

	return nil
}

func (r *taskRepository) Delete(ctx context.Context, taskID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE task_id = $1`, taskID)
	if err != nil {
		return apperr.Storagef("failed to delete task: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storagef("failed to check deleted rows: %v", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFoundf("task %s", taskID)
	}

	return nil
}
