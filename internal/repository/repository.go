package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"socialdesk/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
}

type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	GetByID(ctx context.Context, clientID string) (*models.Client, error)
	List(ctx context.Context) ([]models.Client, error)
	Update(ctx context.Context, client *models.Client) error
	// DeleteCascade removes the client's posts, payments and approval
	// links together with the client record, all in one transaction.
	DeleteCascade(ctx context.Context, clientID string) error
	CountActive(ctx context.Context) (int, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	GetByClientID(ctx context.Context, clientID string) ([]models.Post, error)
	GetByClientAndStatus(ctx context.Context, clientID, status string) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID string) error
	// UpdateStatus sets the status unconditionally (kanban move).
	UpdateStatus(ctx context.Context, postID, status string) error
	// UpdateStatusFrom sets the status only when the current status
	// matches from; a concurrent change surfaces as ErrConflict.
	UpdateStatusFrom(ctx context.Context, postID, from, to string) error
	Reject(ctx context.Context, postID, from, reason string) error
	SetBoost(ctx context.Context, postID string, requested bool, notes string) error
	CountByStatus(ctx context.Context, status string) (int, error)
	CountBoostRequested(ctx context.Context) (int, error)
	CountScheduledOn(ctx context.Context, datePrefix string) (int, error)
}

type ApprovalLinkRepository interface {
	Create(ctx context.Context, link *models.ApprovalLink) error
	GetByToken(ctx context.Context, token string) (*models.ApprovalLink, error)
	GetByClientID(ctx context.Context, clientID string) ([]models.ApprovalLink, error)
	// Delete is idempotent: deleting an unknown id is a no-op.
	Delete(ctx context.Context, linkID string) error
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByID(ctx context.Context, paymentID string) (*models.Payment, error)
	GetByClientID(ctx context.Context, clientID string) ([]models.Payment, error)
	Update(ctx context.Context, payment *models.Payment) error
	Delete(ctx context.Context, paymentID string) error
}

type EventRepository interface {
	Create(ctx context.Context, event *models.PersonalEvent) error
	GetByDate(ctx context.Context, date string) (*models.PersonalEvent, error)
	ListBetween(ctx context.Context, start, end string) ([]models.PersonalEvent, error)
	Update(ctx context.Context, event *models.PersonalEvent) error
	Delete(ctx context.Context, eventID string) error
	CountOn(ctx context.Context, date string) (int, error)
}

type IdeaRepository interface {
	Create(ctx context.Context, idea *models.Idea) error
	List(ctx context.Context) ([]models.Idea, error)
	Update(ctx context.Context, idea *models.Idea) error
	Delete(ctx context.Context, ideaID string) error
}

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, taskID string) (*models.Task, error)
	List(ctx context.Context) ([]models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, taskID string) error
}

type Repository struct {
	User         UserRepository
	Client       ClientRepository
	Post         PostRepository
	ApprovalLink ApprovalLinkRepository
	Payment      PaymentRepository
	Event        EventRepository
	Idea         IdeaRepository
	Task         TaskRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:         NewUserRepository(db),
		Client:       NewClientRepository(db),
		Post:         NewPostRepository(db),
		ApprovalLink: NewApprovalLinkRepository(db),
		Payment:      NewPaymentRepository(db),
		Event:        NewEventRepository(db),
		Idea:         NewIdeaRepository(db),
		Task:         NewTaskRepository(db),
	}
}
