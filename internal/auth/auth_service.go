package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	autherrors "github.com/muhammad-amin-8102/crown-security-personal/internal/auth/errors"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/domain"
)

const resetTokenTTL = 30 * time.Minute

// Mailer mengirim link reset password. Implementasi produksi ada di
// bootstrap; service tidak peduli transport email-nya.
type Mailer interface {
	SendPasswordReset(ctx context.Context, email, token string) error
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (LoginResponse, error)
	Signup(ctx context.Context, req SignupRequest) (UserPayload, error)
	Refresh(ctx context.Context, refreshToken string) (LoginResponse, error)
	GetMe(ctx context.Context, userID string) (UserPayload, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type service struct {
	repo   Repository
	tokens *TokenService
	mailer Mailer
}

func NewService(repo Repository, tokens *TokenService, mailer Mailer) Service {
	return &service{repo: repo, tokens: tokens, mailer: mailer}
}

func (s *service) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	// Email tak dikenal dan password salah memberi error yang sama
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	identity := identityOf(user)

	accessToken, err := s.tokens.IssueAccess(identity)
	if err != nil {
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := s.tokens.IssueRefresh(identity)
	if err != nil {
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         payloadOf(user),
	}, nil
}

func (s *service) Signup(ctx context.Context, req SignupRequest) (UserPayload, error) {
	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return UserPayload{}, autherrors.ErrEmailAlreadyRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserPayload{}, err
	}

	user := &User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         domain.RoleClient, // signup publik selalu CLIENT
		PasswordHash: string(hashed),
		Active:       true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return UserPayload{}, autherrors.ErrEmailAlreadyRegistered
	}

	return payloadOf(user), nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (LoginResponse, error) {
	identity, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return LoginResponse{}, autherrors.ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(identity.ID)
	if err != nil {
		return LoginResponse{}, autherrors.ErrInvalidRefreshToken
	}

	// Re-load user supaya perubahan role/status ikut terbawa token baru
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return LoginResponse{}, autherrors.ErrUserNotFound
	}

	fresh := identityOf(user)
	newAccess, err := s.tokens.IssueAccess(fresh)
	if err != nil {
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}
	newRefresh, err := s.tokens.IssueRefresh(fresh)
	if err != nil {
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return LoginResponse{
		AccessToken:  newAccess,
		RefreshToken: newRefresh,
		User:         payloadOf(user),
	}, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (UserPayload, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return UserPayload{}, autherrors.ErrUserNotFound
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return UserPayload{}, autherrors.ErrUserNotFound
	}

	return payloadOf(user), nil
}

func (s *service) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		// Jangan bocorkan apakah email terdaftar
		return nil
	}

	// Bersihkan token lama sekalian
	_ = s.repo.PurgeResetTokens(ctx, time.Now())

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return err
	}
	token := hex.EncodeToString(raw)

	// Simpan hash-nya saja, token mentah hanya lewat email
	entry := &PasswordResetToken{
		TokenHash: hashResetToken(token),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := s.repo.SaveResetToken(ctx, entry); err != nil {
		return err
	}

	return s.mailer.SendPasswordReset(ctx, user.Email, token)
}

func (s *service) ResetPassword(ctx context.Context, token, newPassword string) error {
	entry, err := s.repo.FindResetToken(ctx, hashResetToken(token))
	if err != nil {
		return autherrors.ErrInvalidResetToken
	}
	if entry.Consumed || time.Now().After(entry.ExpiresAt) {
		return autherrors.ErrInvalidResetToken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, entry.UserID, string(hashed)); err != nil {
		return err
	}

	return s.repo.ConsumeResetToken(ctx, entry.TokenHash)
}

func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func identityOf(u *User) domain.Identity {
	return domain.Identity{ID: u.ID.String(), Role: u.Role, Name: u.Name, Email: u.Email}
}

func payloadOf(u *User) UserPayload {
	return UserPayload{ID: u.ID.String(), Role: u.Role, Name: u.Name, Email: u.Email}
}
