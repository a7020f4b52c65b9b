package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sunseekerapp/sunseeker-backend/internal/models"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrTitleMissing = errors.New("title is required")
)

// PostService handles post CRUD.
type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

func (s *PostService) Create(sender uuid.UUID, title, body string) (*models.Post, error) {
	if title == "" {
		return nil, ErrTitleMissing
	}

	post := &models.Post{
		ID:     uuid.New(),
		Title:  title,
		Body:   body,
		Sender: sender,
	}
	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) List() ([]models.Post, error) {
	var posts []models.Post
	err := s.db.Order("created_at DESC").Find(&posts).Error
	return posts, err
}

func (s *PostService) Get(id uuid.UUID) (*models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (s *PostService) BySender(sender uuid.UUID) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.Where("sender = ?", sender).Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// Update replaces title and body, the full writable field set of a post.
func (s *PostService) Update(id uuid.UUID, title, body string) (*models.Post, error) {
	if title == "" {
		return nil, ErrTitleMissing
	}

	post, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	post.Title = title
	post.Body = body
	if err := s.db.Save(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}
