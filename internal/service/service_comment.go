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

type commentService struct {
	commentRepository store.CommentRepository
	sanitizer         *sanitizer

	logger *logger.Logger
}

func NewCommentService(commentRepository store.CommentRepository, sanitizeHTML bool, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		sanitizer:         newSanitizer(sanitizeHTML),
		logger:            logger,
	}
}

// CreateComment attaches a comment to an existing post. Returns ErrPostNotFound
// when comment.PostID references no post.
func (c *commentService) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	comment.ID = 0
	comment.Content = c.sanitizer.Content(comment.Content)
	comment.CreatedAt = time.Now().UTC()

	created, err := c.commentRepository.CreateComment(ctx, comment)
	if errors.Is(err, store.ErrPostNotFound) {
		return models.Comment{}, ErrPostNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("post_id", comment.PostID).Msg("comment creation failed")
		return models.Comment{}, fmt.Errorf("comment creation failed: %w", err)
	}

	return created, nil
}

func (c *commentService) DeleteComment(ctx context.Context, id int64) error {
	err := c.commentRepository.DeleteComment(ctx, id)
	if errors.Is(err, store.ErrCommentNotFound) {
		return ErrCommentNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("comment deletion failed")
		return fmt.Errorf("comment deletion failed: %w", err)
	}

	return nil
}
