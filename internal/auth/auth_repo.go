package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/resource"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	Create(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error

	SaveResetToken(ctx context.Context, token *PasswordResetToken) error
	FindResetToken(ctx context.Context, tokenHash string) (*PasswordResetToken, error)
	ConsumeResetToken(ctx context.Context, tokenHash string) error
	PurgeResetTokens(ctx context.Context, before time.Time) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err != nil {
		return nil, resource.MapStorageError(err)
	}
	return &u, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		return nil, resource.MapStorageError(err)
	}
	return &u, nil
}

func (r *repository) Create(ctx context.Context, user *User) error {
	return resource.MapStorageError(r.db.WithContext(ctx).Create(user).Error)
}

func (r *repository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	return resource.MapStorageError(
		r.db.WithContext(ctx).
			Model(&User{}).
			Where("id = ?", userID).
			Update("password_hash", passwordHash).Error,
	)
}

func (r *repository) SaveResetToken(ctx context.Context, token *PasswordResetToken) error {
	return resource.MapStorageError(r.db.WithContext(ctx).Create(token).Error)
}

func (r *repository) FindResetToken(ctx context.Context, tokenHash string) (*PasswordResetToken, error) {
	var t PasswordResetToken
	err := r.db.WithContext(ctx).First(&t, "token_hash = ?", tokenHash).Error
	if err != nil {
		return nil, resource.MapStorageError(err)
	}
	return &t, nil
}

func (r *repository) ConsumeResetToken(ctx context.Context, tokenHash string) error {
	return resource.MapStorageError(
		r.db.WithContext(ctx).
			Model(&PasswordResetToken{}).
			Where("token_hash = ?", tokenHash).
			Update("consumed", true).Error,
	)
}

// PurgeResetTokens membuang token yang sudah terpakai atau kedaluwarsa.
func (r *repository) PurgeResetTokens(ctx context.Context, before time.Time) error {
	return resource.MapStorageError(
		r.db.WithContext(ctx).
			Where("consumed = ? OR expires_at < ?", true, before).
			Delete(&PasswordResetToken{}).Error,
	)
}
