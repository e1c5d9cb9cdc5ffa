package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
)

// Storages groups the repositories used by the service layer.
type Storages struct {
	UserRepository    UserRepository
	PostRepository    PostRepository
	CommentRepository CommentRepository

	db *DB
}

// NewStorages builds the repositories for the configured driver. For SQL
// drivers it connects to the database and applies pending migrations.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case config.DriverMemory, "":
		memory := NewMemoryStorage()
		return &Storages{
			UserRepository:    memory,
			PostRepository:    memory,
			CommentRepository: memory,
		}, nil
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.DB.Driver, err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewSQLStorages(db, logger), nil
}

// NewSQLStorages wires the SQL repositories to an open DB.
func NewSQLStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		PostRepository:    NewPostRepository(db, logger),
		CommentRepository: NewCommentRepository(db, logger),
		db:                db,
	}
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
