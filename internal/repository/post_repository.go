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

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}
	post.CreatedDate = time.Now()

	query := `
		INSERT INTO posts
		(post_id, client_id, title, caption, hashtags, format, image_url, video_url, carousel_images,
		 scheduled_date, status, rejection_reason, boost_requested, boost_notes, created_date)
		VALUES
		(:post_id, :client_id, :title, :caption, :hashtags, :format, :image_url, :video_url, :carousel_images,
		 :scheduled_date, :status, :rejection_reason, :boost_requested, :boost_notes, :created_date)
	`

	if _, err := r.db.NamedExecContext(ctx, query, post); err != nil {
		return apperr.Storagef("failed to create post: %v", err)
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	var post models.Post

	query := `SELECT * FROM posts WHERE post_id = $1`

	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("post %s", postID)
		}
		return nil, apperr.Storagef("failed to fetch post: %v", err)
	}

	return &post, nil
}

func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post

	query := `SELECT * FROM posts ORDER BY created_date DESC`

	if err := r.db.SelectContext(ctx, &posts, query); err != nil {
		return nil, apperr.Storagef("failed to list posts: %v", err)
	}

	return posts, nil
}

func (r *postRepository) GetByClientID(ctx context.Context, clientID string) ([]models.Post, error) {
	var posts []models.Post

	query := `SELECT * FROM posts WHERE client_id = $1 ORDER BY created_date DESC`

	if err := r.db.SelectContext(ctx, &posts, query, clientID); err != nil {
		return nil, apperr.Storagef("failed to list client posts: %v", err)
	}

	return posts, nil
}

func (r *postRepository) GetByClientAndStatus(ctx context.Context, clientID, status string) ([]models.Post, error) {
	var posts []models.Post

	query := `SELECT * FROM posts WHERE client_id = $1 AND status = $2 ORDER BY created_date DESC`

	if err := r.db.SelectContext(ctx, &posts, query, clientID, status); err != nil {
		return nil, apperr.Storagef("failed to list client posts by status: %v", err)
	}

	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts SET
			title = :title,
			caption = :caption,
			hashtags = :hashtags,
			format = :format,
			image_url = :image_url,
			video_url = :video_url,
			carousel_images = :carousel_images,
			scheduled_date = :scheduled_date,
			status = :status
		WHERE post_id = :post_id
	`

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return apperr.Storagef("failed to update post: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storagef("failed to check updated rows: %v", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFoundf("post %s", post.PostID)
	}

	return nil
}

func (r *postRepository) Delete(ctx context.Context, postID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE post_id = $1`, postID)
	if err != nil {
		return apperr.Storagef("failed to delete post: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storagef("failed to check deleted rows: %v", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFoundf("post %s", postID)
	}

	return nil
}

func (r *postRepository) UpdateStatus(ctx context.Context, postID, status string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE posts SET status = $1 WHERE post_id = $2`, status, postID)
	if err != nil {
		return apperr.Storagef("failed to update post status: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storagef("failed to check updated rows: %v", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFoundf("post %s", postID)
	}

	return nil
}

func (r *postRepository) UpdateStatusFrom(ctx context.Context, postID, from, to string) error {
	query := `UPDATE posts SET status = $1 WHERE post_id = $2 AND status = $3`

	result, err := r.db.ExecContext(ctx, query, to, postID, from)
	if err != nil {
		return apperr.Storagef("failed to update post status: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storagef("failed to check updated rows: %v", err)
	}

	if rowsAffected == 0 {
		return apperr.Conflictf("post %s is not %s anymore", postID, from)
	}

	return nil
}

func (r *postRepository) Reject(ctx context.Context, postID, from, reason string) error {
	query := `
		UPDATE posts SET status = $1, rejection_reason = $2
		WHERE post_id = $3 AND status = $4
	`

	result, err := r.db.ExecContext(ctx, query, models.StatusRejeitado, reason, postID, from)
	if err != nil {
		return apperr.Storagef("failed to reject post: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storagef("failed to check updated rows: %v", err)
	}

	if rowsAffected == 0 {
		return apperr.Conflictf("post %s is not %s anymore", postID, from)
	}

	return nil
}

func (r *postRepository) SetBoost(ctx context.Context, postID string, requested bool, notes string) error {
	query := `UPDATE posts SET boost_requested = $1, boost_notes = $2 WHERE post_id = $3`

	result, err := r.db.ExecContext(ctx, query, requested, notes, postID)
	if err != nil {
		return apperr.Storagef("failed to update boost request: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storagef("failed to check updated rows: %v", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFoundf("post %s", postID)
	}

	return nil
}

func (r *postRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts WHERE status = $1`, status)
	if err != nil {
		return 0, apperr.Storagef("failed to count posts by status: %v", err)
	}

	return count, nil
}

func (r *postRepository) CountBoostRequested(ctx context.Context) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts WHERE boost_requested = TRUE`)
	if err != nil {
		return 0, apperr.Storagef("failed to count boost requests: %v", err)
	}

	return count, nil
}

// CountScheduledOn matches scheduled_date by its yyyy-mm-dd prefix because
// the column holds verbatim local wall-clock text.
func (r *postRepository) CountScheduledOn(ctx context.Context, datePrefix string) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts WHERE scheduled_date LIKE $1 || '%'`, datePrefix)
	if err != nil {
		return 0, apperr.Storagef("failed to count scheduled posts: %v", err)
	}

	return count, nil
}
