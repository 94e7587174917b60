package service

import (
	"context"
	"io"
	"strings"

	"github.com/lib/pq"

	"socialdesk/internal/apperr"
	"socialdesk/internal/models"
	"socialdesk/internal/repository"
	"socialdesk/internal/storage"
)

type CreatePostRequest struct {
	ClientID       string   `json:"clientId" validate:"required"`
	Title          string   `json:"title" validate:"required"`
	Caption        string   `json:"caption"`
	Hashtags       string   `json:"hashtags"`
	Format         string   `json:"format"`
	ImageURL       string   `json:"imageUrl"`
	VideoURL       string   `json:"videoUrl"`
	CarouselImages []string `json:"carouselImages"`
	ScheduledDate  string   `json:"scheduledDate"`
	Status         string   `json:"status"`
}

type UpdatePostRequest struct {
	PostID         string   `json:"postId"`
	Title          string   `json:"title" validate:"required"`
	Caption        string   `json:"caption"`
	Hashtags       string   `json:"hashtags"`
	Format         string   `json:"format"`
	ImageURL       string   `json:"imageUrl"`
	VideoURL       string   `json:"videoUrl"`
	CarouselImages []string `json:"carouselImages"`
	ScheduledDate  string   `json:"scheduledDate"`
	Status         string   `json:"status"`
}

type PostService interface {
	CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error)
	UpdatePost(ctx context.Context, req UpdatePostRequest) (*models.Post, error)
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	ListPosts(ctx context.Context, clientID, status string) ([]models.Post, error)
	DeletePost(ctx context.Context, postID string) error
	SendForApproval(ctx context.Context, postID string) error
	MoveStatus(ctx context.Context, postID, status string) error
	MarkBoostProcessed(ctx context.Context, postID string) error
	AttachMedia(ctx context.Context, postID, fileName string, file io.Reader, size int64) (*models.Post, error)
}

type postService struct {
	postRepo   repository.PostRepository
	clientRepo repository.ClientRepository
	storage    storage.Storage
}

func NewPostService(postRepo repository.PostRepository, clientRepo repository.ClientRepository, store storage.Storage) PostService {
	return &postService{
		postRepo:   postRepo,
		clientRepo: clientRepo,
		storage:    store,
	}
}

// validateMedia enforces that only the representation matching the format
// is populated. The matching field may still be empty while drafting.
func validateMedia(format, imageURL, videoURL string, carousel []string) error {
	switch format {
	case models.FormatPost, models.FormatStory:
		if videoURL != "" || len(carousel) > 0 {
			return apperr.Validationf("format %s only carries image_url", format)
		}
	case models.FormatReel:
		if imageURL != "" || len(carousel) > 0 {
			return apperr.Validationf("format reel only carries video_url")
		}
	case models.FormatCarrossel:
		if imageURL != "" || videoURL != "" {
			return apperr.Validationf("format carrossel only carries carousel_images")
		}
	}
	return nil
}

func (p *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperr.Validationf("title is required")
	}

	format := req.Format
	if format == "" {
		format = models.FormatPost
	}
	if !models.ValidFormat(format) {
		return nil, apperr.Validationf("unknown format %q", format)
	}

	status := req.Status
	if status == "" {
		status = models.StatusPendente
	}
	if !models.ValidStatus(status) {
		return nil, apperr.Validationf("unknown status %q", status)
	}

	if err := validateMedia(format, req.ImageURL, req.VideoURL, req.CarouselImages); err != nil {
		return nil, err
	}

	if _, err := p.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		return nil, err
	}

	post := &models.Post{
		ClientID:       req.ClientID,
		Title:          req.Title,
		Caption:        req.Caption,
		Hashtags:       req.Hashtags,
		Format:         format,
		ImageURL:       req.ImageURL,
		VideoURL:       req.VideoURL,
		CarouselImages: pq.StringArray(req.CarouselImages),
		ScheduledDate:  req.ScheduledDate,
		Status:         status,
	}
	if post.CarouselImages == nil {
		post.CarouselImages = pq.StringArray{}
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) UpdatePost(ctx context.Context, req UpdatePostRequest) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, apperr.Validationf("title is required")
	}

	format := req.Format
	if format == "" {
		format = post.Format
	}
	if !models.ValidFormat(format) {
		return nil, apperr.Validationf("unknown format %q", format)
	}

	status := req.Status
	if status == "" {
		status = post.Status
	}
	if !models.ValidStatus(status) {
		return nil, apperr.Validationf("unknown status %q", status)
	}

	if err := validateMedia(format, req.ImageURL, req.VideoURL, req.CarouselImages); err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Caption = req.Caption
	post.Hashtags = req.Hashtags
	post.Format = format
	post.ImageURL = req.ImageURL
	post.VideoURL = req.VideoURL
	post.CarouselImages = pq.StringArray(req.CarouselImages)
	post.ScheduledDate = req.ScheduledDate
	post.Status = status
	if post.CarouselImages == nil {
		post.CarouselImages = pq.StringArray{}
	}

	if err := p.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	return p.postRepo.GetByID(ctx, postID)
}

func (p *postService) ListPosts(ctx context.Context, clientID, status string) ([]models.Post, error) {
	switch {
	case clientID != "" && status != "":
		return p.postRepo.GetByClientAndStatus(ctx, clientID, status)
	case clientID != "":
		return p.postRepo.GetByClientID(ctx, clientID)
	default:
		return p.postRepo.List(ctx)
	}
}

func (p *postService) DeletePost(ctx context.Context, postID string) error {
	return p.postRepo.Delete(ctx, postID)
}

// SendForApproval forces the status regardless of its prior value.
func (p *postService) SendForApproval(ctx context.Context, postID string) error {
	return p.postRepo.UpdateStatus(ctx, postID, models.StatusAguardandoAprovacao)
}

// MoveStatus is the kanban move: any known status, no transition guard.
func (p *postService) MoveStatus(ctx context.Context, postID, status string) error {
	if !models.ValidStatus(status) {
		return apperr.Validationf("unknown status %q", status)
	}
	return p.postRepo.UpdateStatus(ctx, postID, status)
}

// MarkBoostProcessed clears the flag but keeps the notes for reference.
func (p *postService) MarkBoostProcessed(ctx context.Context, postID string) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	return p.postRepo.SetBoost(ctx, postID, false, post.BoostNotes)
}

// AttachMedia uploads the file and stores its URL on the field the post's
// format designates. Carousel uploads append to the existing frames.
func (p *postService) AttachMedia(ctx context.Context, postID, fileName string, file io.Reader, size int64) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	_, fileURL, err := p.storage.Upload(ctx, "posts", fileName, file, size)
	if err != nil {
		return nil, apperr.Storagef("failed to upload media: %v", err)
	}

	switch post.Format {
	case models.FormatReel:
		post.VideoURL = fileURL
	case models.FormatCarrossel:
		post.CarouselImages = append(post.CarouselImages, fileURL)
	default:
		post.ImageURL = fileURL
	}

	if err := p.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}
