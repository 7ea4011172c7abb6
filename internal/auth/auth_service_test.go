package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/auth"
	autherrors "github.com/muhammad-amin-8102/crown-security-personal/internal/auth/errors"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/domain"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/apperror"
)

type fakeRepo struct {
	getByEmailFn       func(ctx context.Context, email string) (*auth.User, error)
	getByIDFn          func(ctx context.Context, id uuid.UUID) (*auth.User, error)
	createFn           func(ctx context.Context, user *auth.User) error
	updatePasswordFn   func(ctx context.Context, userID uuid.UUID, passwordHash string) error
	saveResetTokenFn   func(ctx context.Context, token *auth.PasswordResetToken) error
	findResetTokenFn   func(ctx context.Context, tokenHash string) (*auth.PasswordResetToken, error)
	consumeResetFn     func(ctx context.Context, tokenHash string) error
	purgeResetTokensFn func(ctx context.Context, before time.Time) error
}

func (f *fakeRepo) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	return f.getByEmailFn(ctx, email)
}
func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeRepo) Create(ctx context.Context, user *auth.User) error {
	return f.createFn(ctx, user)
}
func (f *fakeRepo) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	return f.updatePasswordFn(ctx, userID, passwordHash)
}
func (f *fakeRepo) SaveResetToken(ctx context.Context, token *auth.PasswordResetToken) error {
	return f.saveResetTokenFn(ctx, token)
}
func (f *fakeRepo) FindResetToken(ctx context.Context, tokenHash string) (*auth.PasswordResetToken, error) {
	return f.findResetTokenFn(ctx, tokenHash)
}
func (f *fakeRepo) ConsumeResetToken(ctx context.Context, tokenHash string) error {
	return f.consumeResetFn(ctx, tokenHash)
}
func (f *fakeRepo) PurgeResetTokens(ctx context.Context, before time.Time) error {
	if f.purgeResetTokensFn != nil {
		return f.purgeResetTokensFn(ctx, before)
	}
	return nil
}

type fakeMailer struct {
	sent  int
	email string
	token string
}

func (m *fakeMailer) SendPasswordReset(ctx context.Context, email, token string) error {
	m.sent++
	m.email = email
	m.token = token
	return nil
}

func newTokens() *auth.TokenService {
	return auth.NewTokenService([]byte("access"), []byte("refresh"), time.Hour, time.Hour)
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	password := "password123"
	pw, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	user := &auth.User{
		ID:           uuid.New(),
		Name:         "Client One",
		Email:        "client@example.com",
		Role:         domain.RoleClient,
		PasswordHash: string(pw),
		Active:       true,
	}

	repo := &fakeRepo{
		getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
			if email == user.Email {
				return user, nil
			}
			return nil, apperror.ErrNotFound
		},
	}
	svc := auth.NewService(repo, newTokens(), &fakeMailer{})

	t.Run("success", func(t *testing.T) {
		resp, err := svc.Login(ctx, user.Email, password)
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, user.Email, resp.User.Email)
	})

	t.Run("unknown email and wrong password give the same error", func(t *testing.T) {
		_, errUnknown := svc.Login(ctx, "nobody@example.com", password)
		_, errWrongPw := svc.Login(ctx, user.Email, "wrongpass")

		assert.ErrorIs(t, errUnknown, autherrors.ErrInvalidCredentials)
		assert.ErrorIs(t, errWrongPw, autherrors.ErrInvalidCredentials)
	})
}

func TestService_Signup(t *testing.T) {
	ctx := context.Background()

	var created *auth.User
	repo := &fakeRepo{
		getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
			return nil, apperror.ErrNotFound
		},
		createFn: func(ctx context.Context, user *auth.User) error {
			created = user
			return nil
		},
	}
	svc := auth.NewService(repo, newTokens(), &fakeMailer{})

	payload, err := svc.Signup(ctx, auth.SignupRequest{
		Name:     "New Client",
		Email:    "new@example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleClient, payload.Role)
	assert.NotNil(t, created)
	// Password tidak boleh tersimpan plaintext
	assert.NotEqual(t, "secret123", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")))
}

func TestService_Signup_DuplicateEmail(t *testing.T) {
	repo := &fakeRepo{
		getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
			return &auth.User{ID: uuid.New(), Email: email}, nil
		},
	}
	svc := auth.NewService(repo, newTokens(), &fakeMailer{})

	_, err := svc.Signup(context.Background(), auth.SignupRequest{
		Name: "X", Email: "taken@example.com", Password: "secret123",
	})
	assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
}

func TestService_Refresh(t *testing.T) {
	ctx := context.Background()
	tokens := newTokens()
	user := &auth.User{
		ID:    uuid.New(),
		Name:  "Officer",
		Email: "officer@example.com",
		Role:  domain.RoleOfficer,
	}
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*auth.User, error) {
			if id == user.ID {
				return user, nil
			}
			return nil, apperror.ErrNotFound
		},
	}
	svc := auth.NewService(repo, tokens, &fakeMailer{})

	refresh, err := tokens.IssueRefresh(domain.Identity{ID: user.ID.String(), Role: user.Role})
	assert.NoError(t, err)

	resp, err := svc.Refresh(ctx, refresh)
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, user.Email, resp.User.Email)

	// Access token bukan refresh token
	access, _ := tokens.IssueAccess(domain.Identity{ID: user.ID.String()})
	_, err = svc.Refresh(ctx, access)
	assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
}

func TestService_ForgotPassword(t *testing.T) {
	ctx := context.Background()
	user := &auth.User{ID: uuid.New(), Email: "client@example.com"}

	t.Run("unknown email is silent and sends nothing", func(t *testing.T) {
		mailer := &fakeMailer{}
		repo := &fakeRepo{
			getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
				return nil, apperror.ErrNotFound
			},
		}
		svc := auth.NewService(repo, newTokens(), mailer)

		err := svc.ForgotPassword(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Zero(t, mailer.sent)
	})

	t.Run("stores hash, mails raw token", func(t *testing.T) {
		mailer := &fakeMailer{}
		var saved *auth.PasswordResetToken
		repo := &fakeRepo{
			getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
				return user, nil
			},
			saveResetTokenFn: func(ctx context.Context, token *auth.PasswordResetToken) error {
				saved = token
				return nil
			},
		}
		svc := auth.NewService(repo, newTokens(), mailer)

		err := svc.ForgotPassword(ctx, user.Email)
		assert.NoError(t, err)
		assert.Equal(t, 1, mailer.sent)
		assert.Equal(t, user.Email, mailer.email)
		assert.NotNil(t, saved)
		// Yang tersimpan hash SHA-256 (64 hex), bukan token mentahnya
		assert.Len(t, saved.TokenHash, 64)
		assert.NotEqual(t, mailer.token, saved.TokenHash)
		assert.WithinDuration(t, time.Now().Add(30*time.Minute), saved.ExpiresAt, time.Minute)
	})
}

func TestService_ResetPassword(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("happy path consumes the token", func(t *testing.T) {
		mailer := &fakeMailer{}
		var saved *auth.PasswordResetToken
		var newHash string
		consumed := false

		repo := &fakeRepo{
			getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
				return &auth.User{ID: userID, Email: email}, nil
			},
			saveResetTokenFn: func(ctx context.Context, token *auth.PasswordResetToken) error {
				saved = token
				return nil
			},
			findResetTokenFn: func(ctx context.Context, tokenHash string) (*auth.PasswordResetToken, error) {
				if saved != nil && saved.TokenHash == tokenHash {
					return saved, nil
				}
				return nil, apperror.ErrNotFound
			},
			updatePasswordFn: func(ctx context.Context, id uuid.UUID, passwordHash string) error {
				assert.Equal(t, userID, id)
				newHash = passwordHash
				return nil
			},
			consumeResetFn: func(ctx context.Context, tokenHash string) error {
				consumed = true
				return nil
			},
		}
		svc := auth.NewService(repo, newTokens(), mailer)

		assert.NoError(t, svc.ForgotPassword(ctx, "client@example.com"))
		assert.NoError(t, svc.ResetPassword(ctx, mailer.token, "brand-new-pass"))
		assert.True(t, consumed)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("brand-new-pass")))
	})

	t.Run("expired token rejected", func(t *testing.T) {
		repo := &fakeRepo{
			findResetTokenFn: func(ctx context.Context, tokenHash string) (*auth.PasswordResetToken, error) {
				return &auth.PasswordResetToken{
					TokenHash: tokenHash,
					UserID:    userID,
					ExpiresAt: time.Now().Add(-time.Minute),
				}, nil
			},
		}
		svc := auth.NewService(repo, newTokens(), &fakeMailer{})

		err := svc.ResetPassword(ctx, "whatever", "newpass123")
		assert.ErrorIs(t, err, autherrors.ErrInvalidResetToken)
	})

	t.Run("consumed token rejected", func(t *testing.T) {
		repo := &fakeRepo{
			findResetTokenFn: func(ctx context.Context, tokenHash string) (*auth.PasswordResetToken, error) {
				return &auth.PasswordResetToken{
					TokenHash: tokenHash,
					UserID:    userID,
					ExpiresAt: time.Now().Add(time.Minute),
					Consumed:  true,
				}, nil
			},
		}
		svc := auth.NewService(repo, newTokens(), &fakeMailer{})

		err := svc.ResetPassword(ctx, "whatever", "newpass123")
		assert.ErrorIs(t, err, autherrors.ErrInvalidResetToken)
	})
}
