package stores

import (
	"github.com/shouvik177/HRMS-Backend/models"

	"gorm.io/gorm"
)

// UserStore abstracts account persistence.
type UserStore interface {
	FindByEmail(email string) (*models.User, error)
	EmailTaken(email string) (bool, error)
	Create(u *models.User) error
}

// GormUserStore implements UserStore using GORM.
type GormUserStore struct{ DB *gorm.DB }

func (s *GormUserStore) FindByEmail(email string) (*models.User, error) {
	var u models.User
	if err := s.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GormUserStore) EmailTaken(email string) (bool, error) {
	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *GormUserStore) Create(u *models.User) error {
	return s.DB.Create(u).Error
}
