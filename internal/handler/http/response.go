package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/app"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/internal/validators"
	"github.com/MKhiriev/go-blog-api/models"
)

// writeData writes a success envelope carrying data.
func writeData(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	writeEnvelope(w, r, models.Response{Success: true, Data: data}, statusCode)
}

// writeMessage writes a success envelope carrying a message.
func writeMessage(w http.ResponseWriter, r *http.Request, message string, statusCode int) {
	writeEnvelope(w, r, models.Response{Success: true, Message: message}, statusCode)
}

// writeError maps err onto a failure envelope:
//   - validation errors become 400 with the list of messages;
//   - missing resources become 404 with data set to null;
//   - everything else carries a single message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		writeEnvelope(w, r, models.Response{
			Error:   app.MsgBadRequest,
			Message: validationErr.Messages,
		}, http.StatusBadRequest)
		return
	}

	status := h.statusFromError(err)
	message := messageFromError(err, status)

	if status == http.StatusNotFound {
		writeEnvelope(w, r, models.NotFoundResponse{Message: message}, status)
		return
	}
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed")
	}

	writeEnvelope(w, r, models.Response{Message: message}, status)
}

func (h *Handler) statusFromError(err error) int {
	if h.appConfig.StrictConflictStatus && errors.Is(err, service.ErrEmailAlreadyExists) {
		return http.StatusConflict
	}
	return statusFromError(err)
}

func writeEnvelope(w http.ResponseWriter, r *http.Request, envelope any, statusCode int) {
	if _, err := utils.WriteJSON(w, envelope, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
