package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return NewUserRepository(db, logger.Nop()), mock
}

func TestUserRepository_CreateUser(t *testing.T) {
	now := time.Now().UTC()
	user := models.User{Name: "John Doe", Email: "john@nest.test", PasswordHash: "hash", CreatedAt: now}
	insert := regexp.QuoteMeta("INSERT INTO users (name,email,password_hash,created_at) VALUES ($1,$2,$3,$4) RETURNING id")

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery(insert).
			WithArgs(user.Name, user.Email, user.PasswordHash, now).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		created, err := repo.CreateUser(context.Background(), user)
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		assert.Equal(t, user.Email, created.Email)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery(insert).WillReturnError(pgError(pgerrcode.UniqueViolation))

		_, err := repo.CreateUser(context.Background(), user)
		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	})

	t.Run("other db error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery(insert).WillReturnError(errors.New("connection reset"))

		_, err := repo.CreateUser(context.Background(), user)
		assert.ErrorIs(t, err, ErrExecutingQuery)
		assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
	})
}

func TestUserRepository_FindUser(t *testing.T) {
	now := time.Now().UTC()
	columns := []string{"id", "name", "email", "password_hash", "created_at"}

	t.Run("by email", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, password_hash, created_at FROM users WHERE email = $1 LIMIT 1")).
			WithArgs("john@nest.test").
			WillReturnRows(sqlmock.NewRows(columns).AddRow(3, "John Doe", "john@nest.test", "hash", now))

		user, err := repo.FindUserByEmail(context.Background(), "john@nest.test")
		require.NoError(t, err)
		assert.Equal(t, models.User{ID: 3, Name: "John Doe", Email: "john@nest.test", PasswordHash: "hash", CreatedAt: now}, user)
	})

	t.Run("by id", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(3, "John Doe", "john@nest.test", "hash", now))

		user, err := repo.FindUserByID(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, int64(3), user.ID)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("FROM users").WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.FindUserByEmail(context.Background(), "nobody@nest.test")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("FROM users").WillReturnError(errors.New("boom"))

		_, err := repo.FindUserByID(context.Background(), 1)
		assert.ErrorIs(t, err, ErrScanningRow)
	})
}

func TestUserRepository_DeleteAllUsers(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users")).WillReturnResult(sqlmock.NewResult(0, 4))

		assert.NoError(t, repo.DeleteAllUsers(context.Background()))
	})

	t.Run("error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("DELETE FROM users").WillReturnError(errors.New("boom"))

		assert.ErrorIs(t, repo.DeleteAllUsers(context.Background()), ErrExecutingQuery)
	})
}
