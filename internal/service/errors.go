package service

import "errors"

var (
	// ErrInvalidDataProvided is returned by Login when email or password is missing.
	ErrInvalidDataProvided = errors.New("invalid data provided")
	// ErrWrongPassword is returned by Login on a password mismatch.
	ErrWrongPassword = errors.New("wrong password")
	// ErrUserNotFound is returned when the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailAlreadyExists is returned by RegisterUser for a taken email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
)

// ErrVersionIsNotSpecified is returned by NewAppInfoService for build info without a version.
var ErrVersionIsNotSpecified = errors.New("app version is not specified")
