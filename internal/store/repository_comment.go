package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/models"
)

// commentRepository is the SQL implementation of [CommentRepository].
type commentRepository struct {
	*DB
	logger *logger.Logger
}

func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateComment checks that the parent post exists and inserts the comment
// in the same transaction.
func (c *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx).With().Int64("post_id", comment.PostID).Logger()

	existsQuery, existsArgs, err := buildPostExistsQuery(c.builder, comment.PostID)
	if err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	insertQuery, insertArgs, err := buildInsertCommentQuery(c.builder, comment)
	if err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = c.withTx(ctx, func(tx *sql.Tx) error {
		var postID int64
		err := tx.QueryRowContext(ctx, existsQuery, existsArgs...).Scan(&postID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPostNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		if err := tx.QueryRowContext(ctx, insertQuery, insertArgs...).Scan(&comment.ID); err != nil {
			if c.classify(err) == ForeignKeyViolation {
				return ErrPostNotFound
			}
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "commentRepository.CreateComment").Msg("error creating comment")
		return models.Comment{}, err
	}

	return comment, nil
}

func (c *commentRepository) DeleteComment(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCommentQuery(c.builder, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = execAffectingRow(ctx, c.DB, query, args, ErrCommentNotFound); err != nil {
		log.Err(err).Str("func", "commentRepository.DeleteComment").Int64("comment_id", id).Msg("error deleting comment")
		return err
	}

	return nil
}
