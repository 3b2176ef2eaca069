package auth

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/fleetdesk/fleetdesk/internal/domain"
)

// adminUserRepository implements domain.AdminUserRepository using GORM.
type adminUserRepository struct {
	db *gorm.DB
}

// NewAdminUserRepository creates an AdminUserRepository backed by the given
// GORM database.
func NewAdminUserRepository(db *gorm.DB) domain.AdminUserRepository {
	return &adminUserRepository{db: db}
}

// Create inserts a new operator account.
func (r *adminUserRepository) Create(ctx context.Context, user *domain.AdminUser) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return mapError(err)
	}
	return nil
}

// GetByID retrieves an operator by its primary key.
func (r *adminUserRepository) GetByID(ctx context.Context, id uint) (*domain.AdminUser, error) {
	var user domain.AdminUser
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

// GetByEmail retrieves an operator by email.
func (r *adminUserRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	var user domain.AdminUser
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

// mapError converts GORM errors to domain errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
		return domain.NewAppError(domain.CodeAlreadyExists, "already exists", err)
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}

// isDuplicateKeyError detects unique constraint violations by examining the
// error message. Not all GORM dialectors translate driver-level errors to
// gorm.ErrDuplicatedKey (e.g. the pure-Go SQLite driver).
func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
