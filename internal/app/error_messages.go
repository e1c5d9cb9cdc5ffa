// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// blog API handlers, middleware and the API client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place ensures consistent wording between server and client.
package app

const (
	// MsgUnauthorized is returned for missing or rejected credentials and
	// bearer tokens.
	MsgUnauthorized = "Unauthorized"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal Server Error"

	// MsgBadRequest is the error label of every validation failure.
	MsgBadRequest = "Bad Request"

	// MsgNotFound is the error label of unknown routes.
	MsgNotFound = "Not Found"

	// MsgTooManyRequests is returned when a client exceeds the auth rate limit.
	MsgTooManyRequests = "Too Many Requests"

	// MsgInvalidID is returned when a path id is not a positive integer.
	MsgInvalidID = "id must be a number conforming to the specified constraints"

	MsgEmailAlreadyExists = "Email already exists"
	MsgPostNotFound       = "Post not found"
	MsgCommentNotFound    = "Comment not found"

	MsgPostDeleted    = "Post deleted successfully"
	MsgCommentDeleted = "Comment deleted successfully"
	MsgUsersReset     = "Users reset successfully"
)
