package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/app"
	"github.com/MKhiriev/go-blog-api/internal/validators"
	"github.com/MKhiriev/go-blog-api/models"
)

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	body, err := h.decodeAndValidate(w, r, validators.CreateCommentSchema)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	comment, err := h.services.CommentService.CreateComment(r.Context(), models.Comment{
		PostID:  body.Int64("post_id"),
		Content: body.String("content"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, r, comment, http.StatusCreated)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.CommentService.DeleteComment(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	writeMessage(w, r, app.MsgCommentDeleted, http.StatusOK)
}
