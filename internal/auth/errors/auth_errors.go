package autherrors

import (
	"net/http"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/apperror"
)

var (
	// Satu pesan untuk email tak dikenal ataupun password salah,
	// agar tidak bocor field mana yang keliru.
	ErrInvalidCredentials = apperror.New(
		"invalid_credentials",
		"Invalid email or password",
		http.StatusBadRequest,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeInvalidToken,
		"Token is invalid or expired",
		http.StatusUnauthorized,
	)

	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeInvalidToken,
		"Refresh token is invalid or expired",
		http.StatusUnauthorized,
	)

	ErrEmailAlreadyRegistered = apperror.New(
		"email_exists",
		"Email is already registered",
		http.StatusBadRequest,
	)

	ErrInvalidResetToken = apperror.New(
		"invalid_or_expired_token",
		"Reset token is invalid or expired",
		http.StatusBadRequest,
	)

	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusBadRequest,
	)

	ErrMissingFields = apperror.New(
		"missing_fields",
		"Name, email, and password are required",
		http.StatusBadRequest,
	)

	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)
)
