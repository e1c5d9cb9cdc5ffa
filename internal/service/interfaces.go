package service

import (
	"context"

	"github.com/MKhiriev/go-blog-api/models"
)

// AuthService registers users, checks credentials and manages bearer tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// Authenticate parses tokenString and resolves the user it was issued to.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
	CurrentUser(ctx context.Context, userID int64) (models.User, error)
	ResetUsers(ctx context.Context) error
}

// PostService manages posts and exposes them with their comments.
type PostService interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	GetPost(ctx context.Context, id int64) (models.Post, error)
	GetAllPosts(ctx context.Context) ([]models.Post, error)
	UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error)
	DeletePost(ctx context.Context, id int64) error
}

// CommentService manages comments attached to posts.
type CommentService interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}

// AppInfoService reports build metadata of the running binary.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
