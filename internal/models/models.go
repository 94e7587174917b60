package models

import (
	"time"

	"github.com/lib/pq"
)

// Post statuses. The kanban board may set any of them; the approval
// surface only ever moves aguardando_aprovacao to aprovado/rejeitado.
const (
	StatusPendente            = "pendente"
	StatusEmCriacao           = "em_criacao"
	StatusAguardandoAprovacao = "aguardando_aprovacao"
	StatusAprovado            = "aprovado"
	StatusRejeitado           = "rejeitado"
	StatusAgendado            = "agendado"
	StatusPostado             = "postado"
)

// Post formats. The format decides which media field is authoritative:
// image_url for post/story, video_url for reel, carousel_images for carrossel.
const (
	FormatPost      = "post"
	FormatStory     = "story"
	FormatReel      = "reel"
	FormatCarrossel = "carrossel"
)

// Payment statuses, shared by payments and the client payment_status field.
const (
	PaymentRecebido = "recebido"
	PaymentPendente = "pendente"
	PaymentAtrasado = "atrasado"
)

type User struct {
	UserID                 string    `json:"userId" db:"user_id"`
	FullName               string    `json:"fullName" db:"full_name"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	RefreshToken           string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"-" db:"refresh_token_expiry_time"`
	CreatedDate            time.Time `json:"createdDate" db:"created_date"`
}

type Client struct {
	ClientID      string    `json:"clientId" db:"client_id"`
	Name          string    `json:"name" db:"name"`
	Email         string    `json:"email" db:"email"`
	Phone         string    `json:"phone" db:"phone"`
	Company       string    `json:"company" db:"company"`
	Instagram     string    `json:"instagram" db:"instagram"`
	ProfilePhoto  string    `json:"profilePhoto" db:"profile_photo"`
	ContractPDF   string    `json:"contractPdf" db:"contract_pdf"`
	MonthlyFee    float64   `json:"monthlyFee" db:"monthly_fee"`
	PaymentStatus string    `json:"paymentStatus" db:"payment_status"`
	Notes         string    `json:"notes" db:"notes"`
	CreatedDate   time.Time `json:"createdDate" db:"created_date"`
}

type Post struct {
	PostID          string         `json:"postId" db:"post_id"`
	ClientID        string         `json:"clientId" db:"client_id"`
	Title           string         `json:"title" db:"title"`
	Caption         string         `json:"caption" db:"caption"`
	Hashtags        string         `json:"hashtags" db:"hashtags"`
	Format          string         `json:"format" db:"format"`
	ImageURL        string         `json:"imageUrl" db:"image_url"`
	VideoURL        string         `json:"videoUrl" db:"video_url"`
	CarouselImages  pq.StringArray `json:"carouselImages" db:"carousel_images"`
	ScheduledDate   string         `json:"scheduledDate" db:"scheduled_date"`
	Status          string         `json:"status" db:"status"`
	RejectionReason string         `json:"rejectionReason" db:"rejection_reason"`
	BoostRequested  bool           `json:"boostRequested" db:"boost_requested"`
	BoostNotes      string         `json:"boostNotes" db:"boost_notes"`
	CreatedDate     time.Time      `json:"createdDate" db:"created_date"`
}

type ApprovalLink struct {
	LinkID      string    `json:"linkId" db:"link_id"`
	ClientID    string    `json:"clientId" db:"client_id"`
	UniqueToken string    `json:"uniqueToken" db:"unique_token"`
	ExpiresAt   time.Time `json:"expiresAt" db:"expires_at"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	CreatedDate time.Time `json:"createdDate" db:"created_date"`
}

type Payment struct {
	PaymentID   string    `json:"paymentId" db:"payment_id"`
	ClientID    string    `json:"clientId" db:"client_id"`
	Month       string    `json:"month" db:"month"`
	Year        int       `json:"year" db:"year"`
	Amount      float64   `json:"amount" db:"amount"`
	Status      string    `json:"status" db:"status"`
	PaymentDate string    `json:"paymentDate" db:"payment_date"`
	InvoiceURL  string    `json:"invoiceUrl" db:"invoice_url"`
	ReceiptURL  string    `json:"receiptUrl" db:"receipt_url"`
	Notes       string    `json:"notes" db:"notes"`
	CreatedDate time.Time `json:"createdDate" db:"created_date"`
}

type PersonalEvent struct {
	EventID     string    `json:"eventId" db:"event_id"`
	Date        string    `json:"date" db:"date"`
	Time        string    `json:"time" db:"time"`
	Title       string    `json:"title" db:"title"`
	Type        string    `json:"type" db:"type"`
	Notes       string    `json:"notes" db:"notes"`
	CreatedDate time.Time `json:"createdDate" db:"created_date"`
}

type Idea struct {
	IdeaID      string         `json:"ideaId" db:"idea_id"`
	Title       string         `json:"title" db:"title"`
	ClientID    string         `json:"clientId" db:"client_id"`
	Notes       string         `json:"notes" db:"notes"`
	Tags        pq.StringArray `json:"tags" db:"tags"`
	Status      string         `json:"status" db:"status"`
	CreatedDate time.Time      `json:"createdDate" db:"created_date"`
}

type Task struct {
	TaskID      string    `json:"taskId" db:"task_id"`
	Title       string    `json:"title" db:"title"`
	Completed   bool      `json:"completed" db:"completed"`
	Priority    string    `json:"priority" db:"priority"`
	CreatedDate time.Time `json:"createdDate" db:"created_date"`
}

// ValidStatus reports whether s is one of the known post statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPendente, StatusEmCriacao, StatusAguardandoAprovacao,
		StatusAprovado, StatusRejeitado, StatusAgendado, StatusPostado:
		return true
	}
	return false
}

// ValidFormat reports whether f is one of the known post formats.
func ValidFormat(f string) bool {
	switch f {
	case FormatPost, FormatStory, FormatReel, FormatCarrossel:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is one of the known payment statuses.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentRecebido, PaymentPendente, PaymentAtrasado:
		return true
	}
	return false
}
