package store

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sunseekerapp/sunseeker-backend/internal/models"
)

// GormStore keeps credentials in the relational database. Refresh tokens are
// stored as sha256 hashes; a leaked table does not yield usable tokens.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreateUser(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *GormStore) UserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) UserByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) UpdatePassword(userID uuid.UUID, passwordHash string) error {
	result := s.db.Model(&models.User{}).Where("id = ?", userID).Update("password", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) AppendToken(userID uuid.UUID, token string, expiresAt time.Time) error {
	record := models.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: hashToken(token),
		ExpiresAt: expiresAt,
	}
	return s.db.Create(&record).Error
}

// RemoveToken deletes one token from the user's set. Removing a token that
// is already absent is a no-op success.
func (s *GormStore) RemoveToken(userID uuid.UUID, token string) error {
	return s.db.
		Where("user_id = ? AND token_hash = ?", userID, hashToken(token)).
		Delete(&models.RefreshToken{}).Error
}

func (s *GormStore) ContainsToken(userID uuid.UUID, token string) (bool, error) {
	var count int64
	err := s.db.Model(&models.RefreshToken{}).
		Where("user_id = ? AND token_hash = ?", userID, hashToken(token)).
		Count(&count).Error
	return count > 0, err
}

// RotateToken swaps oldToken for newToken in a single transaction. The old
// token must be present when the delete runs; losing a concurrent race to
// another rotation of the same token fails the whole swap.
func (s *GormStore) RotateToken(userID uuid.UUID, oldToken, newToken string, expiresAt time.Time) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("user_id = ? AND token_hash = ?", userID, hashToken(oldToken)).
			Delete(&models.RefreshToken{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Create(&models.RefreshToken{
			ID:        uuid.New(),
			UserID:    userID,
			TokenHash: hashToken(newToken),
			ExpiresAt: expiresAt,
		}).Error
	})
}

func (s *GormStore) RevokeAll(userID uuid.UUID) error {
	return s.db.Where("user_id = ?", userID).Delete(&models.RefreshToken{}).Error
}

func (s *GormStore) TokenCount(userID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.Model(&models.RefreshToken{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
