// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/app"
	"github.com/MKhiriev/go-blog-api/models"
)

// routeNotFound is registered as both the NotFound and the MethodNotAllowed
// handler of the router.
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method
// is not handled. Here both cases answer with HTTP 404 and a JSON envelope
// naming the method and path, so that callers cannot tell an unknown path
// from an unsupported method.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, r, models.Response{
		Message: fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path),
		Error:   app.MsgNotFound,
	}, http.StatusNotFound)
}
