package domain

import "context"

// AdminUser is a dashboard operator account. The list engine only reads the
// operator's identity for display; it never gates its own logic on it.
type AdminUser struct {
	BaseModel
	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`
}

// AdminUserRepository defines the data access interface for operator accounts.
type AdminUserRepository interface {
	Create(ctx context.Context, user *AdminUser) error
	GetByID(ctx context.Context, id uint) (*AdminUser, error)
	GetByEmail(ctx context.Context, email string) (*AdminUser, error)
}
