package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sunseekerapp/sunseeker-backend/internal/models"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrBodyMissing     = errors.New("body is required")
)

// CommentService handles comment CRUD.
type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

func (s *CommentService) Create(postID, sender uuid.UUID, body string) (*models.Comment, error) {
	if body == "" {
		return nil, ErrBodyMissing
	}

	comment := &models.Comment{
		ID:     uuid.New(),
		PostID: postID,
		Sender: sender,
		Body:   body,
	}
	if err := s.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) ByPost(postID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.Where("post_id = ?", postID).Order("created_at DESC").Find(&comments).Error
	return comments, err
}

func (s *CommentService) Get(id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (s *CommentService) Update(id uuid.UUID, body string) (*models.Comment, error) {
	if body == "" {
		return nil, ErrBodyMissing
	}

	comment, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	comment.Body = body
	if err := s.db.Save(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Comment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}
