package user

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/resource"
	usererrors "github.com/muhammad-amin-8102/crown-security-personal/internal/user/errors"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, q resource.ListQuery) ([]User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, req CreateUserRequest) (*User, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) (*User, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	store *resource.Store[User]
}

func Descriptor() resource.Descriptor {
	return resource.Descriptor{
		DateColumn: "created_at",
		Filters:    map[string]string{"role": "role"},
	}
}

func NewService(db *gorm.DB) Service {
	return &service{store: resource.NewStore[User](db, Descriptor())}
}

func (s *service) List(ctx context.Context, q resource.ListQuery) ([]User, error) {
	return s.store.List(ctx, q)
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, usererrors.ErrInvalidUserID
	}
	return s.store.Get(ctx, uid)
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (*User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	u := &User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         req.Role,
		PasswordHash: string(hashed),
		Active:       active,
	}

	if err := s.store.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateUserRequest) (*User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, usererrors.ErrInvalidUserID
	}

	u, err := s.store.Get(ctx, uid)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}
	if req.Role != nil {
		u.Role = *req.Role
	}
	if req.Active != nil {
		u.Active = *req.Active
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hashed)
	}

	if err := s.store.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return usererrors.ErrInvalidUserID
	}
	return s.store.Delete(ctx, uid)
}
