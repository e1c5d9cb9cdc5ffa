package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/app"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrValidation: http.StatusBadRequest,

	service.ErrInvalidDataProvided:      http.StatusUnauthorized,
	service.ErrWrongPassword:            http.StatusUnauthorized,
	service.ErrUserNotFound:             http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:  http.StatusUnauthorized,
	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,
	ErrNoUserInContext:                  http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,

	service.ErrPostNotFound:    http.StatusNotFound,
	service.ErrCommentNotFound: http.StatusNotFound,

	// 500 is kept for clients that depend on it, see config.App.StrictConflictStatus.
	service.ErrEmailAlreadyExists:  http.StatusInternalServerError,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	service.ErrPostNotFound:       app.MsgPostNotFound,
	service.ErrCommentNotFound:    app.MsgCommentNotFound,
	service.ErrEmailAlreadyExists: app.MsgEmailAlreadyExists,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error, status int) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}

	switch status {
	case http.StatusUnauthorized:
		return app.MsgUnauthorized
	case http.StatusNotFound:
		return app.MsgNotFound
	default:
		return app.MsgInternalServerError
	}
}
