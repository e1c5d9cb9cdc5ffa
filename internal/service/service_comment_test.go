package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.CommentRepository
// ─────────────────────────────────────────────

type mockCommentRepository struct {
	createFn func(ctx context.Context, comment models.Comment) (models.Comment, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockCommentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	if m.createFn != nil {
		return m.createFn(ctx, comment)
	}
	return comment, nil
}

func (m *mockCommentRepository) DeleteComment(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// CreateComment
// ─────────────────────────────────────────────

func TestCommentService_CreateComment_Success(t *testing.T) {
	repo := &mockCommentRepository{
		createFn: func(_ context.Context, c models.Comment) (models.Comment, error) {
			assert.False(t, c.CreatedAt.IsZero())
			c.ID = 10
			return c, nil
		},
	}
	svc := NewCommentService(repo, false, logger.Nop())

	got, err := svc.CreateComment(context.Background(), models.Comment{PostID: 1, Content: "nice"})

	require.NoError(t, err)
	assert.Equal(t, int64(10), got.ID)
	assert.Equal(t, int64(1), got.PostID)
	assert.Equal(t, "nice", got.Content)
}

func TestCommentService_CreateComment_Sanitizes(t *testing.T) {
	svc := NewCommentService(&mockCommentRepository{}, true, logger.Nop())

	got, err := svc.CreateComment(context.Background(), models.Comment{PostID: 1, Content: `<a href="javascript:x()">hi</a>`})

	require.NoError(t, err)
	assert.NotContains(t, got.Content, "javascript")
	assert.Contains(t, got.Content, "hi")
}

func TestCommentService_CreateComment_MissingPost(t *testing.T) {
	repo := &mockCommentRepository{
		createFn: func(context.Context, models.Comment) (models.Comment, error) {
			return models.Comment{}, store.ErrPostNotFound
		},
	}
	svc := NewCommentService(repo, false, logger.Nop())

	_, err := svc.CreateComment(context.Background(), models.Comment{PostID: 404, Content: "x"})

	assert.ErrorIs(t, err, ErrPostNotFound)
}

// ─────────────────────────────────────────────
// DeleteComment
// ─────────────────────────────────────────────

func TestCommentService_DeleteComment_NotFound(t *testing.T) {
	repo := &mockCommentRepository{
		deleteFn: func(context.Context, int64) error { return store.ErrCommentNotFound },
	}
	svc := NewCommentService(repo, false, logger.Nop())

	assert.ErrorIs(t, svc.DeleteComment(context.Background(), 1), ErrCommentNotFound)
}

func TestCommentService_DeleteComment_RepositoryError(t *testing.T) {
	dbErr := errors.New("timeout")
	repo := &mockCommentRepository{
		deleteFn: func(context.Context, int64) error { return dbErr },
	}
	svc := NewCommentService(repo, false, logger.Nop())

	err := svc.DeleteComment(context.Background(), 1)

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrCommentNotFound)
}

func TestCommentService_DeleteComment_Success(t *testing.T) {
	var deleted int64
	repo := &mockCommentRepository{
		deleteFn: func(_ context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	svc := NewCommentService(repo, false, logger.Nop())

	require.NoError(t, svc.DeleteComment(context.Background(), 8))
	assert.Equal(t, int64(8), deleted)
}
