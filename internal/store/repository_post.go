package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/models"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// postRepository is the SQL implementation of [PostRepository].
type postRepository struct {
	*DB
	logger *logger.Logger
}

func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		DB:     db,
		logger: logger,
	}
}

func (p *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPostQuery(p.builder, post)
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = p.QueryRowContext(ctx, query, args...).Scan(&post.ID); err != nil {
		log.Err(err).Str("func", "postRepository.CreatePost").Msg("error inserting post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	post.Comments = []models.Comment{}

	return post, nil
}

func (p *postRepository) GetPost(ctx context.Context, id int64) (models.Post, error) {
	return p.getPost(ctx, p.DB, id)
}

func (p *postRepository) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPostsQuery(p.builder, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	posts, err := p.queryPosts(ctx, p.DB, query, args)
	if err != nil {
		log.Err(err).Str("func", "postRepository.GetAllPosts").Msg("error selecting posts")
		return nil, err
	}

	return posts, nil
}

// UpdatePost updates the post and re-reads it inside one transaction.
func (p *postRepository) UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error) {
	log := logger.FromContext(ctx).With().Int64("post_id", update.ID).Logger()

	query, args, err := buildUpdatePostQuery(p.builder, update, time.Now().UTC())
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Post
	err = p.withTx(ctx, func(tx *sql.Tx) error {
		if err := execAffectingRow(ctx, tx, query, args, ErrPostNotFound); err != nil {
			return err
		}

		updated, err = p.getPost(ctx, tx, update.ID)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "postRepository.UpdatePost").Msg("error updating post")
		return models.Post{}, err
	}

	return updated, nil
}

// DeletePost removes the post's comments and then the post itself in one
// transaction, so no comment outlives its post even without FK cascades.
func (p *postRepository) DeletePost(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).With().Int64("post_id", id).Logger()

	deleteComments, commentArgs, err := buildDeletePostCommentsQuery(p.builder, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	deletePost, postArgs, err := buildDeletePostQuery(p.builder, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = p.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteComments, commentArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return execAffectingRow(ctx, tx, deletePost, postArgs, ErrPostNotFound)
	})
	if err != nil {
		log.Err(err).Str("func", "postRepository.DeletePost").Msg("error deleting post")
		return err
	}

	return nil
}

func (p *postRepository) getPost(ctx context.Context, q querier, id int64) (models.Post, error) {
	query, args, err := buildSelectPostsQuery(p.builder, &id)
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	posts, err := p.queryPosts(ctx, q, query, args)
	if err != nil {
		return models.Post{}, err
	}
	if len(posts) == 0 {
		return models.Post{}, ErrPostNotFound
	}

	return posts[0], nil
}

// queryPosts runs a posts LEFT JOIN comments query and folds the rows into
// posts with nested comments, preserving row order.
func (p *postRepository) queryPosts(ctx context.Context, q querier, query string, args []any) ([]models.Post, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	index := make(map[int64]int)

	for rows.Next() {
		var (
			post             models.Post
			commentID        sql.NullInt64
			commentPostID    sql.NullInt64
			commentContent   sql.NullString
			commentCreatedAt sql.NullTime
		)

		if err := rows.Scan(
			&post.ID, &post.Title, &post.Content, &post.CreatedAt, &post.UpdatedAt,
			&commentID, &commentPostID, &commentContent, &commentCreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		i, ok := index[post.ID]
		if !ok {
			post.Comments = []models.Comment{}
			posts = append(posts, post)
			i = len(posts) - 1
			index[post.ID] = i
		}

		if commentID.Valid {
			posts[i].Comments = append(posts[i].Comments, models.Comment{
				ID:        commentID.Int64,
				PostID:    commentPostID.Int64,
				Content:   commentContent.String,
				CreatedAt: commentCreatedAt.Time,
			})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

// execAffectingRow executes a DML statement and returns notFound when it
// affected no rows.
func execAffectingRow(ctx context.Context, q querier, query string, args []any, notFound error) error {
	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}
