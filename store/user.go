package store

import (
	"context"
	"errors"

	"rental-service/models"

	"gorm.io/gorm"
)

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.withRetry(func() error {
		result := s.db.WithContext(ctx).Where("email = ?", email).First(&user)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return result.Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
