package test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"socialdesk/internal/models"
	"socialdesk/internal/service"
)

type MockApprovalService struct {
	mock.Mock
}

func (m *MockApprovalService) IssueLink(ctx context.Context, clientID string) (*models.ApprovalLink, string, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.ApprovalLink), args.String(1), args.Error(2)
}

func (m *MockApprovalService) ResolveLink(ctx context.Context, token string) (*models.ApprovalLink, *models.Client, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.ApprovalLink), args.Get(1).(*models.Client), args.Error(2)
}

func (m *MockApprovalService) RevokeLink(ctx context.Context, linkID string) error {
	args := m.Called(ctx, linkID)
	return args.Error(0)
}

func (m *MockApprovalService) ListLinks(ctx context.Context, clientID string) ([]models.ApprovalLink, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ApprovalLink), args.Error(1)
}

func (m *MockApprovalService) GetPendingPosts(ctx context.Context, token string) (*models.Client, []models.Post, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Client), args.Get(1).([]models.Post), args.Error(2)
}

func (m *MockApprovalService) Approve(ctx context.Context, token, postID string) error {
	args := m.Called(ctx, token, postID)
	return args.Error(0)
}

func (m *MockApprovalService) Reject(ctx context.Context, token, postID, reason string) error {
	args := m.Called(ctx, token, postID, reason)
	return args.Error(0)
}

func (m *MockApprovalService) RequestBoost(ctx context.Context, token, postID, notes string) error {
	args := m.Called(ctx, token, postID, notes)
	return args.Error(0)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, req service.CreatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, req service.UpdatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) ListPosts(ctx context.Context, clientID, status string) ([]models.Post, error) {
	args := m.Called(ctx, clientID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockPostService) SendForApproval(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockPostService) MoveStatus(ctx context.Context, postID, status string) error {
	args := m.Called(ctx, postID, status)
	return args.Error(0)
}

func (m *MockPostService) MarkBoostProcessed(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockPostService) AttachMedia(ctx context.Context, postID, fileName string, file io.Reader, size int64) (*models.Post, error) {
	args := m.Called(ctx, postID, fileName, file, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) CreateClient(ctx context.Context, req service.ClientRequest) (*models.Client, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockClientService) UpdateClient(ctx context.Context, clientID string, req service.ClientRequest) (*models.Client, error) {
	args := m.Called(ctx, clientID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockClientService) GetClient(ctx context.Context, clientID string) (*models.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockClientService) ListClients(ctx context.Context) ([]models.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Client), args.Error(1)
}

func (m *MockClientService) DeleteClient(ctx context.Context, clientID string) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

func (m *MockClientService) AttachFile(ctx context.Context, clientID, field, fileName string, file io.Reader, size int64) (*models.Client, error) {
	args := m.Called(ctx, clientID, field, fileName, file, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

// MockLimiter denies requests once allow is set to false.
type MockLimiter struct {
	allow bool
	keys  []string
}

func (m *MockLimiter) Allow(_ context.Context, key string) bool {
	m.keys = append(m.keys, key)
	return m.allow
}
