package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/hopefoundation/charity-backend/internal/db"
)

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrPostTitleMissing = errors.New("post title is required")
	ErrPostBodyMissing  = errors.New("post content is required")
)

// PostService handles the news/updates articles.
type PostService struct {
	db *gorm.DB
}

// PostInput represents fields accepted when creating or updating a post.
type PostInput struct {
	Title   string
	Content string
	Image   string
}

// NewPostService creates a PostService instance.
func NewPostService(gdb *gorm.DB) *PostService {
	return &PostService{db: gdb}
}

// List returns all posts with their author preloaded, newest first.
func (s *PostService) List() ([]db.Post, error) {
	var items []db.Post
	if err := s.db.Preload("Author").Order("created_at desc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return items, nil
}

// Get fetches one post with its author preloaded.
func (s *PostService) Get(id uint) (*db.Post, error) {
	var item db.Post
	if err := s.db.Preload("Author").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("load post: %w", err)
	}
	return &item, nil
}

// Create persists a post owned by the given admin.
func (s *PostService) Create(authorID uint, input PostInput) (*db.Post, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrPostTitleMissing
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrPostBodyMissing
	}

	post := db.Post{
		Title:    title,
		Content:  input.Content,
		Image:    strings.TrimSpace(input.Image),
		AuthorID: &authorID,
	}

	if err := s.db.Create(&post).Error; err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	return &post, nil
}

// Update replaces the editable fields of a post. Authorship is untouched.
func (s *PostService) Update(id uint, input PostInput) (*db.Post, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrPostTitleMissing
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrPostBodyMissing
	}

	item.Title = title
	item.Content = input.Content
	item.Image = strings.TrimSpace(input.Image)

	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return item, nil
}

// Delete removes a post.
func (s *PostService) Delete(id uint) error {
	res := s.db.Delete(&db.Post{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}
