package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"socialdesk/internal/apperr"
	"socialdesk/internal/config"
	"socialdesk/internal/models"
	"socialdesk/internal/notification"
	"socialdesk/internal/repository"
)

// ApprovalService implements the client-facing approval workflow: issuing
// bearer-token share links and acting on posts through them.
type ApprovalService interface {
	IssueLink(ctx context.Context, clientID string) (*models.ApprovalLink, string, error)
	ResolveLink(ctx context.Context, token string) (*models.ApprovalLink, *models.Client, error)
	RevokeLink(ctx context.Context, linkID string) error
	ListLinks(ctx context.Context, clientID string) ([]models.ApprovalLink, error)
	GetPendingPosts(ctx context.Context, token string) (*models.Client, []models.Post, error)
	Approve(ctx context.Context, token, postID string) error
	Reject(ctx context.Context, token, postID, reason string) error
	RequestBoost(ctx context.Context, token, postID, notes string) error
}

type approvalService struct {
	linkRepo   repository.ApprovalLinkRepository
	clientRepo repository.ClientRepository
	postRepo   repository.PostRepository
	notifier   notification.Notifier
	cfg        *config.Config
}

func NewApprovalService(
	linkRepo repository.ApprovalLinkRepository,
	clientRepo repository.ClientRepository,
	postRepo repository.PostRepository,
	notifier notification.Notifier,
	cfg *config.Config,
) ApprovalService {
	return &approvalService{
		linkRepo:   linkRepo,
		clientRepo: clientRepo,
		postRepo:   postRepo,
		notifier:   notifier,
		cfg:        cfg,
	}
}

// generateToken returns 128 bits from crypto/rand as 32 hex characters.
func generateToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func (s *approvalService) IssueLink(ctx context.Context, clientID string) (*models.ApprovalLink, string, error) {
	if _, err := s.clientRepo.GetByID(ctx, clientID); err != nil {
		return nil, "", err
	}

	token, err := generateToken()
	if err != nil {
		return nil, "", err
	}

	link := &models.ApprovalLink{
		ClientID:    clientID,
		UniqueToken: token,
		ExpiresAt:   time.Now().Add(s.cfg.ApprovalLinkTTL),
		IsActive:    true,
	}

	if err := s.linkRepo.Create(ctx, link); err != nil {
		return nil, "", err
	}

	shareURL := fmt.Sprintf("%s/approval?token=%s", s.cfg.PublicBaseURL, token)
	return link, shareURL, nil
}

// ResolveLink validates the token server-side: unknown tokens are NotFound,
// expired or deactivated links are Expired. The expiry boundary is
// inclusive: a link resolved at exactly expires_at is still valid.
func (s *approvalService) ResolveLink(ctx context.Context, token string) (*models.ApprovalLink, *models.Client, error) {
	link, err := s.linkRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, nil, err
	}

	if time.Now().After(link.ExpiresAt) || !link.IsActive {
		return nil, nil, apperr.Expiredf("approval link")
	}

	client, err := s.clientRepo.GetByID(ctx, link.ClientID)
	if err != nil {
		return nil, nil, err
	}

	return link, client, nil
}

func (s *approvalService) RevokeLink(ctx context.Context, linkID string) error {
	return s.linkRepo.Delete(ctx, linkID)
}

func (s *approvalService) ListLinks(ctx context.Context, clientID string) ([]models.ApprovalLink, error) {
	return s.linkRepo.GetByClientID(ctx, clientID)
}

func (s *approvalService) GetPendingPosts(ctx context.Context, token string) (*models.Client, []models.Post, error) {
	_, client, err := s.ResolveLink(ctx, token)
	if err != nil {
		return nil, nil, err
	}

	posts, err := s.postRepo.GetByClientAndStatus(ctx, client.ClientID, models.StatusAguardandoAprovacao)
	if err != nil {
		return nil, nil, err
	}

	return client, posts, nil
}

// resolvePost re-validates the token and checks the post belongs to the
// link's client. A post of another client is reported as missing, not
// forbidden, so the response does not leak that the id exists.
func (s *approvalService) resolvePost(ctx context.Context, token, postID string) (*models.Client, *models.Post, error) {
	_, client, err := s.ResolveLink(ctx, token)
	if err != nil {
		return nil, nil, err
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, nil, err
	}

	if post.ClientID != client.ClientID {
		return nil, nil, apperr.NotFoundf("post %s", postID)
	}

	return client, post, nil
}

func (s *approvalService) Approve(ctx context.Context, token, postID string) error {
	client, post, err := s.resolvePost(ctx, token, postID)
	if err != nil {
		return err
	}

	err = s.postRepo.UpdateStatusFrom(ctx, postID, models.StatusAguardandoAprovacao, models.StatusAprovado)
	if err != nil {
		return err
	}

	s.notify(ctx, client, post.Title, "Post Aprovado", "")
	return nil
}

func (s *approvalService) Reject(ctx context.Context, token, postID, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return apperr.Validationf("rejection reason is required")
	}

	client, post, err := s.resolvePost(ctx, token, postID)
	if err != nil {
		return err
	}

	if err := s.postRepo.Reject(ctx, postID, models.StatusAguardandoAprovacao, reason); err != nil {
		return err
	}

	s.notify(ctx, client, post.Title, "Post Rejeitado", reason)
	return nil
}

// RequestBoost is orthogonal to the status machine: it flags the post and
// stores the notes without touching status.
func (s *approvalService) RequestBoost(ctx context.Context, token, postID, notes string) error {
	client, post, err := s.resolvePost(ctx, token, postID)
	if err != nil {
		return err
	}

	if err := s.postRepo.SetBoost(ctx, postID, true, notes); err != nil {
		return err
	}

	s.notify(ctx, client, post.Title, "Pedido para Turbinar", notes)
	return nil
}

// notify emails the operator about a client action. Failures are logged
// and swallowed: a broken mailer must never fail an approval.
func (s *approvalService) notify(ctx context.Context, client *models.Client, postTitle, action, detail string) {
	if s.cfg.NotifyEmail == "" {
		return
	}

	body := fmt.Sprintf("Cliente: %s\nPost: %s\nAção: %s\n", client.Name, postTitle, action)
	if detail != "" {
		body += fmt.Sprintf("\nMotivo: %s\n", detail)
	}

	subject := fmt.Sprintf("%s - %s", action, postTitle)

	if err := s.notifier.Send(ctx, s.cfg.NotifyEmail, subject, body); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"client": client.ClientID,
			"action": action,
		}).Warn("failed to send notification")
	}
}
