package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

// envelope is the success body of every endpoint.
type envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

type httpBlogClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPBlogClient constructs an HTTP/REST implementation of [BlogAPI].
// It normalises and validates baseURL and configures the underlying HTTP
// client with the resolved base URL and request timeout.
//
// Returns an error if baseURL is empty or cannot be parsed as a valid URL.
func NewHTTPBlogClient(baseURL string, timeout time.Duration, logger *logger.Logger) (BlogAPI, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid blog api address: %w", err)
	}

	client := utils.NewHTTPClient(normalized)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &httpBlogClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [BlogAPI]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpBlogClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [BlogAPI].
func (h *httpBlogClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [BlogAPI]. The password is sent explicitly because
// [models.User] never serializes it.
func (h *httpBlogClient) Register(ctx context.Context, user models.User) (models.User, error) {
	var result envelope[models.User]

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"name":     user.Name,
			"email":    user.Email,
			"password": user.Password,
		}).
		SetResult(&result).
		Post("/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.Data, nil
}

// Login implements [BlogAPI]. On success the access token is stored via
// SetToken and returned together with the user id read from its subject.
func (h *httpBlogClient) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	var result envelope[models.AccessToken]

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&result).
		Post("/auth/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	userID, err := parseUserIDFromJWT(result.Data.AccessToken)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse user id: %w", err)
	}

	h.SetToken(result.Data.AccessToken)
	h.logger.Debug().Int64("id", userID).Msg("logged in")

	return models.Token{SignedString: result.Data.AccessToken, UserID: userID}, nil
}

func (h *httpBlogClient) Me(ctx context.Context) (models.User, error) {
	var result envelope[models.User]

	resp, err := h.authedRequest(ctx).SetResult(&result).Get("/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.Data, nil
}

func (h *httpBlogClient) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	var result envelope[models.Post]

	resp, err := h.authedRequest(ctx).
		SetBody(map[string]string{"title": post.Title, "content": post.Content}).
		SetResult(&result).
		Post("/posts")
	if err != nil {
		return models.Post{}, fmt.Errorf("create post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return result.Data, nil
}

func (h *httpBlogClient) GetPosts(ctx context.Context) ([]models.Post, error) {
	var result envelope[[]models.Post]

	resp, err := h.authedRequest(ctx).SetResult(&result).Get("/posts")
	if err != nil {
		return nil, fmt.Errorf("get posts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Data, nil
}

func (h *httpBlogClient) GetPost(ctx context.Context, id int64) (models.Post, error) {
	var result envelope[models.Post]

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&result).
		Get("/posts/{id}")
	if err != nil {
		return models.Post{}, fmt.Errorf("get post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return result.Data, nil
}

// UpdatePost implements [BlogAPI]. Only the non-nil fields of update are sent.
func (h *httpBlogClient) UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error) {
	body := make(map[string]string, 2)
	if update.Title != nil {
		body["title"] = *update.Title
	}
	if update.Content != nil {
		body["content"] = *update.Content
	}

	var result envelope[models.Post]

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(update.ID, 10)).
		SetBody(body).
		SetResult(&result).
		Patch("/posts/{id}")
	if err != nil {
		return models.Post{}, fmt.Errorf("update post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return result.Data, nil
}

func (h *httpBlogClient) DeletePost(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/posts/{id}")
	if err != nil {
		return fmt.Errorf("delete post request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBlogClient) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	var result envelope[models.Comment]

	resp, err := h.authedRequest(ctx).
		SetBody(map[string]any{"post_id": comment.PostID, "content": comment.Content}).
		SetResult(&result).
		Post("/comments")
	if err != nil {
		return models.Comment{}, fmt.Errorf("create comment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Comment{}, err
	}

	return result.Data, nil
}

func (h *httpBlogClient) DeleteComment(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/comments/{id}")
	if err != nil {
		return fmt.Errorf("delete comment request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBlogClient) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var result envelope[models.AppBuildInfo]

	resp, err := h.client.R().SetContext(ctx).SetResult(&result).Get("/version")
	if err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppBuildInfo{}, err
	}

	return result.Data, nil
}

func (h *httpBlogClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// parseUserIDFromJWT reads the subject of tokenString without verifying the
// signature; the server is the only party holding the key.
func parseUserIDFromJWT(tokenString string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}

	return strconv.ParseInt(sub, 10, 64)
}
