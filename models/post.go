package models

import "time"

// Post is a blog entry together with its embedded comments.
type Post struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`

	// Comments are ordered by insertion. The slice is never nil so that it is
	// always serialized as a JSON array.
	Comments []Comment `json:"comments"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// PostUpdate represents a partial update of a single post.
// Only non-nil fields are updated.
type PostUpdate struct {
	// ID is the identifier of the post to update. Required.
	ID int64 `json:"id"`

	// Title is the new title. If nil, the field will not be updated.
	Title *string `json:"title,omitempty"`

	// Content is the new content. If nil, the field will not be updated.
	Content *string `json:"content,omitempty"`
}

// IsEmpty reports whether the update carries no fields to change.
func (u PostUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil
}
