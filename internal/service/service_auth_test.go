package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/mock"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testHashKey = "test-hash-key"
	testSignKey = "test-sign-key"
	testIssuer  = "go-blog-api-test"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository) {
	t.Helper()

	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, config.App{
		PasswordHashKey: testHashKey,
		TokenSignKey:    testSignKey,
		TokenIssuer:     testIssuer,
		TokenDuration:   time.Hour,
	}, logger.Nop())

	return svc, repo
}

func hashedUser(t *testing.T, id int64, email, password string) models.User {
	t.Helper()

	hash, err := utils.HashPassword(password, testHashKey)
	require.NoError(t, err)

	return models.User{ID: id, Name: "John", Email: email, PasswordHash: hash}
}

// ── RegisterUser ──

func TestAuthService_RegisterUser_StoresHashNotPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.Empty(t, u.Password)
			assert.NotEmpty(t, u.PasswordHash)
			assert.True(t, utils.CheckPassword(u.PasswordHash, "Passw0rd!", testHashKey))
			assert.False(t, u.CreatedAt.IsZero())
			u.ID = 1
			return u, nil
		})

	got, err := svc.RegisterUser(context.Background(), models.User{Name: "John", Email: "john@example.com", Password: "Passw0rd!"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "john@example.com", got.Email)
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.User{Email: "john@example.com", Password: "Passw0rd!"})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestAuthService_RegisterUser_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	dbErr := errors.New("connection refused")
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, dbErr)

	_, err := svc.RegisterUser(context.Background(), models.User{Email: "john@example.com", Password: "Passw0rd!"})

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
}

// ── Login ──

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	stored := hashedUser(t, 7, "john@example.com", "Passw0rd!")
	repo.EXPECT().FindUserByEmail(gomock.Any(), "john@example.com").Return(stored, nil)

	got, err := svc.Login(context.Background(), models.Credentials{Email: "john@example.com", Password: "Passw0rd!"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
}

func TestAuthService_Login_MissingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	tests := []models.Credentials{
		{},
		{Email: "john@example.com"},
		{Password: "Passw0rd!"},
	}

	for _, creds := range tests {
		_, err := svc.Login(context.Background(), creds)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByEmail(gomock.Any(), "nobody@example.com").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "nobody@example.com", Password: "Passw0rd!"})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	stored := hashedUser(t, 7, "john@example.com", "Passw0rd!")
	repo.EXPECT().FindUserByEmail(gomock.Any(), "john@example.com").Return(stored, nil)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "john@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, ErrWrongPassword)
}

// ── Tokens ──

func TestAuthService_CreateAndParseToken_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	token, err := svc.CreateToken(context.Background(), models.User{ID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.ParseToken(context.Background(), "not-a-jwt")

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_ForeignKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	foreign, err := utils.GenerateJWTToken(testIssuer, 42, time.Hour, "another-key")
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), foreign.SignedString)

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ── Authenticate ──

func TestAuthService_Authenticate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	token, err := svc.CreateToken(context.Background(), models.User{ID: 3})
	require.NoError(t, err)

	repo.EXPECT().FindUserByID(gomock.Any(), int64(3)).Return(models.User{ID: 3, Email: "a@b.c"}, nil)

	user, err := svc.Authenticate(context.Background(), token.SignedString)

	require.NoError(t, err)
	assert.Equal(t, "a@b.c", user.Email)
}

func TestAuthService_Authenticate_DeletedUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	token, err := svc.CreateToken(context.Background(), models.User{ID: 3})
	require.NoError(t, err)

	repo.EXPECT().FindUserByID(gomock.Any(), int64(3)).Return(models.User{}, store.ErrUserNotFound)

	_, err = svc.Authenticate(context.Background(), token.SignedString)

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_Authenticate_InvalidTokenSkipsLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByID(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Authenticate(context.Background(), "garbage")

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ── ResetUsers ──

func TestAuthService_ResetUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	gomock.InOrder(
		repo.EXPECT().DeleteAllUsers(gomock.Any()).Return(nil),
		repo.EXPECT().DeleteAllUsers(gomock.Any()).Return(errors.New("boom")),
	)

	require.NoError(t, svc.ResetUsers(context.Background()))
	assert.Error(t, svc.ResetUsers(context.Background()))
}
