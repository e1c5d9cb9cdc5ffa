package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/stretchr/testify/require"
)

const (
	testName     = "John Doe"
	testEmail    = "john@nest.test"
	testPassword = "Secret_123"
)

var testAppConfig = config.App{
	PasswordHashKey: "test-hash-key",
	TokenSignKey:    "test-sign-key",
	TokenIssuer:     "go-blog-api-test",
	TokenDuration:   time.Hour,
	EnableReset:     true,
}

// envelope is a loosely typed view of every response body.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message json.RawMessage `json:"message"`
	Error   string          `json:"error"`
}

func (e envelope) messages(t *testing.T) []string {
	t.Helper()
	var msgs []string
	require.NoError(t, json.Unmarshal(e.Message, &msgs))
	return msgs
}

func (e envelope) message(t *testing.T) string {
	t.Helper()
	var msg string
	require.NoError(t, json.Unmarshal(e.Message, &msg))
	return msg
}

func (e envelope) decodeData(t *testing.T, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(e.Data, v))
}

// newTestRouter builds the full router over in-memory storage.
func newTestRouter(t *testing.T, app config.App, server config.Server) http.Handler {
	t.Helper()

	storages, err := store.NewStorages(context.Background(), config.Storage{DB: config.DB{Driver: config.DriverMemory}}, logger.Nop())
	require.NoError(t, err)

	services, err := service.NewServices(storages, app, models.NewAppBuildInfo("v-test", "", ""), logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, server, app, logger.Nop()).Init()
}

// doRequest sends body (a JSON string, or "" for none) through router.
func doRequest(t *testing.T, router http.Handler, method, target, body, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}

	return rec, env
}

func toJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// registerAndLogin registers the default user and returns an access token.
func registerAndLogin(t *testing.T, router http.Handler) string {
	t.Helper()

	rec, _ := doRequest(t, router, http.MethodPost, "/auth/register",
		toJSON(t, map[string]string{"name": testName, "email": testEmail, "password": testPassword}), "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := doRequest(t, router, http.MethodPost, "/auth/login",
		toJSON(t, map[string]string{"email": testEmail, "password": testPassword}), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var token models.AccessToken
	env.decodeData(t, &token)
	require.NotEmpty(t, token.AccessToken)

	return token.AccessToken
}
