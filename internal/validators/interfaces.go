// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks decoded request bodies against declarative
// schemas before they are converted into domain models.
//
// Core concepts:
//   - Schema: an ordered list of fields, each with an ordered list of rules.
//   - Rule: a validator tag plus the message reported when it fails.
//   - Validator: runs a schema over a body and collects every violation
//     into a single *ValidationError.
//
// Usage patterns:
//  1. Decode the request into models.RequestBody.
//  2. Call Validate with one of the predefined schemas.
//  3. Map *ValidationError to 400 Bad Request at the transport layer.
package validators

import (
	"context"

	"github.com/MKhiriev/go-blog-api/models"
)

// Validator defines the validation contract used by the HTTP handlers.
type Validator interface {

	// Validate checks body against schema and returns a *ValidationError
	// listing every violated rule, or nil if the body is valid.
	Validate(ctx context.Context, body models.RequestBody, schema Schema) error
}
