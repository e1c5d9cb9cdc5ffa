// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed Go client for the blog REST API.
//
// The primary abstraction is [BlogAPI], which hides the JSON envelope and
// bearer token handling from callers. The package ships an HTTP/REST
// implementation ([NewHTTPBlogClient]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-blog-api/models"
)

// BlogAPI defines communication with the blog server. Implementations are
// responsible for serialisation, authentication header management, and
// mapping transport-level errors to the sentinel values defined in this
// package.
type BlogAPI interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. Login calls it on success.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. The returned user carries the id
	// assigned by the server.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login exchanges credentials for an access token and stores it via
	// SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)

	// Me returns the account the current token belongs to.
	Me(ctx context.Context) (models.User, error)

	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	GetPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id int64) (models.Post, error)
	UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error)
	DeletePost(ctx context.Context, id int64) error

	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	DeleteComment(ctx context.Context, id int64) error

	// Version returns the build information of the server.
	Version(ctx context.Context) (models.AppBuildInfo, error)
}
