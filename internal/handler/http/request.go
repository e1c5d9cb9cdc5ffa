package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-blog-api/internal/app"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/validators"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

// decodeBody reads a JSON object from the request body. An empty body or a
// JSON null decodes to an empty object so that field rules report what is
// missing. Anything that is not a JSON object is a validation error.
func decodeBody(w http.ResponseWriter, r *http.Request) (models.RequestBody, error) {
	var body models.RequestBody

	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body)
	if errors.Is(err, io.EOF) {
		return models.RequestBody{}, nil
	}
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg(validators.MsgInvalidJSON)
		return nil, validators.NewValidationError(validators.MsgInvalidJSON)
	}
	if body == nil {
		body = models.RequestBody{}
	}

	return body, nil
}

// decodeAndValidate decodes the body and checks it against schema.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, schema validators.Schema) (models.RequestBody, error) {
	body, err := decodeBody(w, r)
	if err != nil {
		return nil, err
	}

	if err = h.validator.Validate(r.Context(), body, schema); err != nil {
		return nil, err
	}

	return body, nil
}

// pathID parses the positive integer {id} URL parameter.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, validators.NewValidationError(app.MsgInvalidID)
	}
	return id, nil
}
