package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/app"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/validators"
	"github.com/MKhiriev/go-blog-api/models"
)

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	body, err := h.decodeAndValidate(w, r, validators.CreatePostSchema)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.CreatePost(r.Context(), models.Post{
		Title:   body.String("title"),
		Content: body.String("content"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", post.ID).Msg("post created")
	writeData(w, r, post, http.StatusCreated)
}

func (h *Handler) getAllPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.GetAllPosts(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, r, posts, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.GetPost(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, r, post, http.StatusOK)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	body, err := h.decodeAndValidate(w, r, validators.UpdatePostSchema)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.UpdatePost(r.Context(), models.PostUpdate{
		ID:      id,
		Title:   body.StringPtr("title"),
		Content: body.StringPtr("content"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, r, post, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.PostService.DeletePost(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	writeMessage(w, r, app.MsgPostDeleted, http.StatusOK)
}
