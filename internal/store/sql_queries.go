// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	"github.com/MKhiriev/go-blog-api/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	userColumns = []string{"id", "name", "email", "password_hash", "created_at"}

	// postWithCommentsColumns is the projection of a posts LEFT JOIN comments
	// query. Comment columns are NULL for posts without comments.
	postWithCommentsColumns = []string{
		"p.id", "p.title", "p.content", "p.created_at", "p.updated_at",
		"c.id", "c.post_id", "c.content", "c.created_at",
	}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(models.User{}.TableName()).
		Columns("name", "email", "password_hash", "created_at").
		Values(user.Name, user.Email, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
}

func buildDeleteAllUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Delete(models.User{}.TableName()).ToSql()
}

func buildInsertPostQuery(b sq.StatementBuilderType, post models.Post) (string, []any, error) {
	return b.Insert(models.Post{}.TableName()).
		Columns("title", "content", "created_at", "updated_at").
		Values(post.Title, post.Content, post.CreatedAt, post.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
}

// buildSelectPostsQuery selects posts with their comments ordered by post id
// and comment id. A non-nil postID narrows the result to a single post.
func buildSelectPostsQuery(b sq.StatementBuilderType, postID *int64) (string, []any, error) {
	query := b.Select(postWithCommentsColumns...).
		From(models.Post{}.TableName() + " p").
		LeftJoin(models.Comment{}.TableName() + " c ON c.post_id = p.id").
		OrderBy("p.id", "c.id")

	if postID != nil {
		query = query.Where(sq.Eq{"p.id": *postID})
	}

	return query.ToSql()
}

func buildUpdatePostQuery(b sq.StatementBuilderType, update models.PostUpdate, updatedAt time.Time) (string, []any, error) {
	query := b.Update(models.Post{}.TableName()).
		Set("updated_at", updatedAt)

	if update.Title != nil {
		query = query.Set("title", *update.Title)
	}
	if update.Content != nil {
		query = query.Set("content", *update.Content)
	}

	return query.Where(sq.Eq{"id": update.ID}).ToSql()
}

func buildDeletePostQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(models.Post{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildPostExistsQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select("id").
		From(models.Post{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertCommentQuery(b sq.StatementBuilderType, comment models.Comment) (string, []any, error) {
	return b.Insert(models.Comment{}.TableName()).
		Columns("post_id", "content", "created_at").
		Values(comment.PostID, comment.Content, comment.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildDeleteCommentQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(models.Comment{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeletePostCommentsQuery(b sq.StatementBuilderType, postID int64) (string, []any, error) {
	return b.Delete(models.Comment{}.TableName()).
		Where(sq.Eq{"post_id": postID}).
		ToSql()
}
