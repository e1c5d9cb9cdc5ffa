package handler

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServices returns a nil *service.Services. http.NewHandler only stores
// the pointer without dereferencing it, so nil is safe for construction-time tests.
func newTestServices() *service.Services {
	return nil
}

// TestNewHandlers_HTTPAddress verifies that a configured HTTPAddress produces
// an HTTP handler.
func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: ":3000"}}

	h, err := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

// TestNewHandlers_NoAddress verifies that an empty server configuration is a
// startup error.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.StructuredConfig{}, logger.Nop())

	assert.Nil(t, h)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errNoHandlersAreCreated))
}

// TestNewHandlers_RouterBuilds verifies that the router can be built from the
// created handler.
func TestNewHandlers_RouterBuilds(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: ":3000"}}

	h, err := NewHandlers(newTestServices(), cfg, logger.Nop())
	require.NoError(t, err)

	assert.NotNil(t, h.HTTP.Init())
}
