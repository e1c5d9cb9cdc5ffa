package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-blog-api/internal/app"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		Messages:   envelopeMessages(resp.Body()),
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		apiErr.kind = ErrBadRequest
	case http.StatusUnauthorized:
		apiErr.kind = ErrUnauthorized
	case http.StatusNotFound:
		apiErr.kind = ErrNotFound
	case http.StatusConflict:
		apiErr.kind = ErrConflict
	case http.StatusTooManyRequests:
		apiErr.kind = ErrTooManyRequests
	case http.StatusInternalServerError:
		// servers without strict conflict status report a taken email as 500
		if len(apiErr.Messages) == 1 && apiErr.Messages[0] == app.MsgEmailAlreadyExists {
			apiErr.kind = ErrConflict
		} else {
			apiErr.kind = ErrInternalServerError
		}
	default:
		body := strings.TrimSpace(string(resp.Body()))
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}

	return apiErr
}

// envelopeMessages extracts the message of a failure envelope, which is
// either a string or a list of strings.
func envelopeMessages(body []byte) []string {
	var env struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(body, &env); err != nil || len(env.Message) == 0 {
		return nil
	}

	var single string
	if err := json.Unmarshal(env.Message, &single); err == nil {
		return []string{single}
	}

	var list []string
	if err := json.Unmarshal(env.Message, &list); err == nil {
		return list
	}

	return nil
}
