package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createComment(t *testing.T, router http.Handler, token string, postID int64, content string) models.Comment {
	t.Helper()

	rec, env := doRequest(t, router, http.MethodPost, "/comments",
		toJSON(t, map[string]any{"post_id": postID, "content": content}), token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var comment models.Comment
	env.decodeData(t, &comment)
	return comment
}

func TestComments_RequireToken(t *testing.T) {
	router := newTestRouter(t, testAppConfig, config.Server{})

	rec, _ := doRequest(t, router, http.MethodPost, "/comments", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = doRequest(t, router, http.MethodDelete, "/comments/1", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateComment_ValidationMessages(t *testing.T) {
	router := newTestRouter(t, testAppConfig, config.Server{})
	token := registerAndLogin(t, router)

	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "empty body",
			body: "",
			want: []string{
				"post_id must be a number conforming to the specified constraints",
				"content must be a string",
			},
		},
		{
			name: "string post id",
			body: `{"post_id":"1","content":"x"}`,
			want: []string{"post_id must be a number conforming to the specified constraints"},
		},
		{
			name: "fractional post id",
			body: `{"post_id":1.5,"content":"x"}`,
			want: []string{"post_id must be a number conforming to the specified constraints"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := doRequest(t, router, http.MethodPost, "/comments", tt.body, token)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			msgs := env.messages(t)
			for _, want := range tt.want {
				assert.Contains(t, msgs, want)
			}
		})
	}
}

func TestCreateComment_EmbeddedInPostViews(t *testing.T) {
	router := newTestRouter(t, testAppConfig, config.Server{})
	token := registerAndLogin(t, router)
	post := createPost(t, router, token, "t", "c")

	rec, env := doRequest(t, router, http.MethodPost, "/comments",
		toJSON(t, map[string]any{"post_id": post.ID, "content": "first!"}), token)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)

	var comment models.Comment
	env.decodeData(t, &comment)
	assert.Equal(t, post.ID, comment.PostID)
	assert.Equal(t, "first!", comment.Content)

	_, env = doRequest(t, router, http.MethodGet, fmt.Sprintf("/posts/%d", post.ID), "", token)
	var got models.Post
	env.decodeData(t, &got)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "first!", got.Comments[0].Content)

	_, env = doRequest(t, router, http.MethodGet, "/posts", "", token)
	var posts []models.Post
	env.decodeData(t, &posts)
	require.Len(t, posts, 1)
	require.Len(t, posts[0].Comments, 1)
	assert.Equal(t, comment.ID, posts[0].Comments[0].ID)
}

func TestCreateComment_MissingPost(t *testing.T) {
	router := newTestRouter(t, testAppConfig, config.Server{})
	token := registerAndLogin(t, router)

	rec, env := doRequest(t, router, http.MethodPost, "/comments",
		toJSON(t, map[string]any{"post_id": 77, "content": "orphan"}), token)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Post not found", env.message(t))
}

func TestDeleteComment(t *testing.T) {
	router := newTestRouter(t, testAppConfig, config.Server{})
	token := registerAndLogin(t, router)
	post := createPost(t, router, token, "t", "c")
	keep := createComment(t, router, token, post.ID, "keep")
	drop := createComment(t, router, token, post.ID, "drop")

	rec, env := doRequest(t, router, http.MethodDelete, fmt.Sprintf("/comments/%d", drop.ID), "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Comment deleted successfully", env.message(t))

	_, env = doRequest(t, router, http.MethodGet, fmt.Sprintf("/posts/%d", post.ID), "", token)
	var got models.Post
	env.decodeData(t, &got)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, keep.ID, got.Comments[0].ID)

	rec, env = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/comments/%d", drop.ID), "", token)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Comment not found", env.message(t))
}

func TestDeletePost_RemovesComments(t *testing.T) {
	router := newTestRouter(t, testAppConfig, config.Server{})
	token := registerAndLogin(t, router)
	post := createPost(t, router, token, "t", "c")
	comment := createComment(t, router, token, post.ID, "bye")

	rec, _ := doRequest(t, router, http.MethodDelete, fmt.Sprintf("/posts/%d", post.ID), "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/comments/%d", comment.ID), "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
