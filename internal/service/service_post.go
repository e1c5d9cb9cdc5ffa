package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/models"
)

type postService struct {
	postRepository store.PostRepository
	sanitizer      *sanitizer

	logger *logger.Logger
}

// NewPostService returns a PostService backed by postRepository. When
// sanitizeHTML is set, titles lose all markup and contents keep only a safe
// subset of it.
func NewPostService(postRepository store.PostRepository, sanitizeHTML bool, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		sanitizer:      newSanitizer(sanitizeHTML),
		logger:         logger,
	}
}

func (p *postService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	now := time.Now().UTC()
	post.ID = 0
	post.Title = p.sanitizer.Title(post.Title)
	post.Content = p.sanitizer.Content(post.Content)
	post.Comments = []models.Comment{}
	post.CreatedAt = now
	post.UpdatedAt = now

	created, err := p.postRepository.CreatePost(ctx, post)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("post creation failed")
		return models.Post{}, fmt.Errorf("post creation failed: %w", err)
	}

	return created, nil
}

func (p *postService) GetPost(ctx context.Context, id int64) (models.Post, error) {
	post, err := p.postRepository.GetPost(ctx, id)
	if err != nil {
		return models.Post{}, p.wrapError(ctx, id, "post search failed", err)
	}

	return post, nil
}

func (p *postService) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := p.postRepository.GetAllPosts(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("posts listing failed")
		return nil, fmt.Errorf("posts listing failed: %w", err)
	}
	if posts == nil {
		posts = []models.Post{}
	}

	return posts, nil
}

// UpdatePost applies a partial update. An update without fields returns the
// post unchanged.
func (p *postService) UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error) {
	if update.IsEmpty() {
		return p.GetPost(ctx, update.ID)
	}

	if update.Title != nil {
		title := p.sanitizer.Title(*update.Title)
		update.Title = &title
	}
	if update.Content != nil {
		content := p.sanitizer.Content(*update.Content)
		update.Content = &content
	}

	updated, err := p.postRepository.UpdatePost(ctx, update)
	if err != nil {
		return models.Post{}, p.wrapError(ctx, update.ID, "post update failed", err)
	}

	return updated, nil
}

func (p *postService) DeletePost(ctx context.Context, id int64) error {
	if err := p.postRepository.DeletePost(ctx, id); err != nil {
		return p.wrapError(ctx, id, "post deletion failed", err)
	}

	logger.FromContext(ctx).Info().Int64("id", id).Msg("post deleted")
	return nil
}

func (p *postService) wrapError(ctx context.Context, id int64, msg string, err error) error {
	if errors.Is(err, store.ErrPostNotFound) {
		return ErrPostNotFound
	}

	logger.FromContext(ctx).Err(err).Int64("id", id).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}
