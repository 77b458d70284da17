package blog

import (
	"errors"

	"roamify/database/filestore"
	"roamify/models"
)

// ErrPostNotFound is returned when an update names an unknown post.
var ErrPostNotFound = errors.New("post not found")

// PostService defines operations over the blog. Unlike products, post
// updates are replace updates: the stored record is fully overwritten.
type PostService interface {
	List() []models.Post
	Create(title, content string) (*models.Post, error)
	Update(id int64, title, content string) (*models.Post, error)
	Delete(id int64) error
}

// DefaultPostService implements PostService over a file-backed collection.
type DefaultPostService struct {
	Posts *filestore.Collection[models.Post]
}

// List returns every post in insertion order.
func (s *DefaultPostService) List() []models.Post {
	return s.Posts.All()
}

// Create adds a post.
func (s *DefaultPostService) Create(title, content string) (*models.Post, error) {
	post := models.Post{
		ID:      s.Posts.NextID(),
		Title:   title,
		Content: content,
	}
	if err := s.Posts.Insert(post); err != nil {
		return nil, err
	}
	return &post, nil
}

// Update overwrites the whole post record.
func (s *DefaultPostService) Update(id int64, title, content string) (*models.Post, error) {
	post := models.Post{ID: id, Title: title, Content: content}
	if err := s.Posts.Replace(id, post); err != nil {
		if errors.Is(err, filestore.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Delete removes a post. Deleting an unknown id is not an error.
func (s *DefaultPostService) Delete(id int64) error {
	return s.Posts.Remove(id)
}
