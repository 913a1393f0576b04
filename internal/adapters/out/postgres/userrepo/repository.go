// Package userrepo reads users provisioned by the identity provider.
package userrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// UserDTO represents a row of users.
type UserDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(255)"`
	Email     string `gorm:"type:varchar(255)"`
	Role      string `gorm:"type:varchar(50)"`
	CreatedAt time.Time
}

func (UserDTO) TableName() string {
	return "users"
}

func toDomain(dto UserDTO) *user.User {
	return user.RestoreUser(dto.ID, dto.Name, dto.Email, user.Role(dto.Role))
}

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id)
		}
		return nil, fmt.Errorf("userrepo.Get: %w", err)
	}
	return toDomain(dto), nil
}

// FindByEmail matches case-insensitively.
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	email = user.NormalizeEmail(email)
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "lower(email) = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", email)
		}
		return nil, fmt.Errorf("userrepo.FindByEmail: %w", err)
	}
	return toDomain(dto), nil
}
