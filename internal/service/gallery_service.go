package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/hopefoundation/charity-backend/internal/db"
)

var (
	ErrGalleryNotFound     = errors.New("gallery image not found")
	ErrGalleryImageMissing = errors.New("image path is required")
)

// GalleryService handles the public image gallery.
type GalleryService struct {
	db *gorm.DB
}

// GalleryInput represents fields accepted when adding a gallery image.
type GalleryInput struct {
	Image   string
	Caption string
}

// NewGalleryService creates a GalleryService instance.
func NewGalleryService(gdb *gorm.DB) *GalleryService {
	return &GalleryService{db: gdb}
}

// List returns all gallery images, newest first.
func (s *GalleryService) List() ([]db.GalleryImage, error) {
	var items []db.GalleryImage
	if err := s.db.Order("created_at desc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list gallery: %w", err)
	}
	return items, nil
}

// Add persists a gallery record pointing at an already stored image.
func (s *GalleryService) Add(input GalleryInput) (*db.GalleryImage, error) {
	image := strings.TrimSpace(input.Image)
	if image == "" {
		return nil, ErrGalleryImageMissing
	}

	item := db.GalleryImage{
		Image:   image,
		Caption: strings.TrimSpace(input.Caption),
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("insert gallery image: %w", err)
	}
	return &item, nil
}

// Delete removes a gallery record and returns the stored image path so the
// caller can clean up the backing file. The row delete is the durability
// boundary; file cleanup is best-effort and happens after this returns.
func (s *GalleryService) Delete(id uint) (string, error) {
	var item db.GalleryImage
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrGalleryNotFound
		}
		return "", fmt.Errorf("load gallery image: %w", err)
	}

	if err := s.db.Delete(&item).Error; err != nil {
		return "", fmt.Errorf("delete gallery image: %w", err)
	}
	return item.Image, nil
}
