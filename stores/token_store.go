package stores

import (
	"errors"

	"github.com/shouvik177/HRMS-Backend/models"

	"gorm.io/gorm"
)

// TokenStore abstracts bearer token persistence.
type TokenStore interface {
	// GetOrCreate returns the user's active token, issuing one if none
	// exists. Tokens are never rotated here.
	GetOrCreate(userID uint) (*models.Token, error)
	// FindUser resolves a token key to its owner, or ErrNotFound.
	FindUser(key string) (*models.User, error)
	// DeleteForUser revokes every token owned by the user.
	DeleteForUser(userID uint) error
}

// GormTokenStore implements TokenStore using GORM.
type GormTokenStore struct{ DB *gorm.DB }

func (s *GormTokenStore) GetOrCreate(userID uint) (*models.Token, error) {
	var t models.Token
	err := s.DB.Where("user_id = ?", userID).First(&t).Error
	if err == nil {
		return &t, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	key, err := models.GenerateTokenKey()
	if err != nil {
		return nil, err
	}
	t = models.Token{Key: key, UserID: userID}
	if err := s.DB.Create(&t).Error; err != nil {
		// Lost a race with a concurrent login; use the winner's token.
		if errors.Is(err, ErrDuplicate) {
			if err := s.DB.Where("user_id = ?", userID).First(&t).Error; err != nil {
				return nil, err
			}
			return &t, nil
		}
		return nil, err
	}
	return &t, nil
}

func (s *GormTokenStore) FindUser(key string) (*models.User, error) {
	var t models.Token
	if err := s.DB.Preload("User").Where("key = ?", key).First(&t).Error; err != nil {
		return nil, err
	}
	return &t.User, nil
}

func (s *GormTokenStore) DeleteForUser(userID uint) error {
	return s.DB.Where("user_id = ?", userID).Delete(&models.Token{}).Error
}
