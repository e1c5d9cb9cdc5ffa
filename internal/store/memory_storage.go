package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-blog-api/models"
)

// MemoryStorage keeps users, posts and comments in process memory. It
// implements [UserRepository], [PostRepository] and [CommentRepository].
//
// Identifiers come from per-entity counters that only grow, so an id is
// never handed out twice during the lifetime of the storage.
type MemoryStorage struct {
	mu sync.RWMutex

	users      map[int64]models.User
	usersEmail map[string]int64

	posts        map[int64]models.Post
	postComments map[int64][]int64
	comments     map[int64]models.Comment

	lastUserID    int64
	lastPostID    int64
	lastCommentID int64
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users:        make(map[int64]models.User),
		usersEmail:   make(map[string]int64),
		posts:        make(map[int64]models.Post),
		postComments: make(map[int64][]int64),
		comments:     make(map[int64]models.Comment),
	}
}

func (m *MemoryStorage) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.usersEmail[user.Email]; ok {
		return models.User{}, ErrEmailAlreadyExists
	}

	m.lastUserID++
	user.ID = m.lastUserID
	user.Password = ""
	m.users[user.ID] = user
	m.usersEmail[user.Email] = user.ID

	return user, nil
}

func (m *MemoryStorage) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.usersEmail[email]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	return m.users[id], nil
}

func (m *MemoryStorage) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	return user, nil
}

func (m *MemoryStorage) DeleteAllUsers(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clear(m.users)
	clear(m.usersEmail)

	return nil
}

func (m *MemoryStorage) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastPostID++
	post.ID = m.lastPostID
	post.Comments = nil
	m.posts[post.ID] = post

	return m.postWithComments(post.ID), nil
}

func (m *MemoryStorage) GetPost(ctx context.Context, id int64) (models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.posts[id]; !ok {
		return models.Post{}, ErrPostNotFound
	}

	return m.postWithComments(id), nil
}

func (m *MemoryStorage) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]int64, 0, len(m.posts))
	for id := range m.posts {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	posts := make([]models.Post, 0, len(ids))
	for _, id := range ids {
		posts = append(posts, m.postWithComments(id))
	}

	return posts, nil
}

func (m *MemoryStorage) UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	post, ok := m.posts[update.ID]
	if !ok {
		return models.Post{}, ErrPostNotFound
	}

	if update.Title != nil {
		post.Title = *update.Title
	}
	if update.Content != nil {
		post.Content = *update.Content
	}
	post.UpdatedAt = time.Now().UTC()
	m.posts[post.ID] = post

	return m.postWithComments(post.ID), nil
}

// DeletePost removes the post and every comment attached to it.
func (m *MemoryStorage) DeletePost(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.posts[id]; !ok {
		return ErrPostNotFound
	}

	for _, commentID := range m.postComments[id] {
		delete(m.comments, commentID)
	}
	delete(m.postComments, id)
	delete(m.posts, id)

	return nil
}

func (m *MemoryStorage) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.posts[comment.PostID]; !ok {
		return models.Comment{}, ErrPostNotFound
	}

	m.lastCommentID++
	comment.ID = m.lastCommentID
	m.comments[comment.ID] = comment
	m.postComments[comment.PostID] = append(m.postComments[comment.PostID], comment.ID)

	return comment, nil
}

// DeleteComment removes the comment and its reference from the parent post.
func (m *MemoryStorage) DeleteComment(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	comment, ok := m.comments[id]
	if !ok {
		return ErrCommentNotFound
	}

	m.postComments[comment.PostID] = slices.DeleteFunc(m.postComments[comment.PostID], func(commentID int64) bool {
		return commentID == id
	})
	delete(m.comments, id)

	return nil
}

// postWithComments returns a copy of the post with its comments in
// insertion order. Callers must hold m.mu.
func (m *MemoryStorage) postWithComments(id int64) models.Post {
	post := m.posts[id]

	commentIDs := m.postComments[id]
	post.Comments = make([]models.Comment, 0, len(commentIDs))
	for _, commentID := range commentIDs {
		post.Comments = append(post.Comments, m.comments[commentID])
	}

	return post
}
