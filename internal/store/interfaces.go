package store

import (
	"context"

	"github.com/MKhiriev/go-blog-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser stores user and returns it with ID and CreatedAt assigned.
	// Returns ErrEmailAlreadyExists if the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns ErrUserNotFound when no user matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns ErrUserNotFound when no user matches.
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	// DeleteAllUsers removes every user. Identifiers are not reused afterwards.
	DeleteAllUsers(ctx context.Context) error
}

// PostRepository persists posts. Posts are always returned with their
// comments ordered by id.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	// GetPost returns ErrPostNotFound when the post does not exist.
	GetPost(ctx context.Context, id int64) (models.Post, error)
	// GetAllPosts returns posts ordered by id.
	GetAllPosts(ctx context.Context) ([]models.Post, error)
	// UpdatePost applies the non-nil fields of update and returns the
	// resulting post. Returns ErrPostNotFound when the post does not exist.
	UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error)
	// DeletePost removes the post together with its comments.
	DeletePost(ctx context.Context, id int64) error
}

// CommentRepository persists comments.
type CommentRepository interface {
	// CreateComment returns ErrPostNotFound when comment.PostID does not
	// reference an existing post.
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	// DeleteComment returns ErrCommentNotFound when the comment does not exist.
	DeleteComment(ctx context.Context, id int64) error
}
