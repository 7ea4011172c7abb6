package auth

import (
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	autherrors "github.com/muhammad-amin-8102/crown-security-personal/internal/auth/errors"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/domain"
)

// Default TTL 30 hari kalau env tidak di-set. Sengaja dipertahankan dari
// versi lama; catatan hardening: perpendek di deployment produksi.
const defaultTokenTTL = 30 * 24 * time.Hour

// TokenService menerbitkan dan memverifikasi access/refresh token.
// Keduanya HS256 dengan secret BERBEDA; expiry embedded di claim, tanpa
// revocation list — token mati hanya karena kedaluwarsa.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenService(accessSecret, refreshSecret []byte, accessTTL, refreshTTL time.Duration) *TokenService {
	if accessTTL <= 0 {
		accessTTL = defaultTokenTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultTokenTTL
	}
	return &TokenService{
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// NewTokenServiceFromEnv membaca JWT_ACCESS_SECRET, JWT_REFRESH_SECRET,
// JWT_ACCESS_TTL, JWT_REFRESH_TTL (detik).
func NewTokenServiceFromEnv() *TokenService {
	return NewTokenService(
		[]byte(os.Getenv("JWT_ACCESS_SECRET")),
		[]byte(os.Getenv("JWT_REFRESH_SECRET")),
		ttlFromEnv("JWT_ACCESS_TTL"),
		ttlFromEnv("JWT_REFRESH_TTL"),
	)
}

func ttlFromEnv(key string) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return 0
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

func (t *TokenService) IssueAccess(identity domain.Identity) (string, error) {
	return t.sign(identity, t.accessSecret, t.accessTTL)
}

func (t *TokenService) IssueRefresh(identity domain.Identity) (string, error) {
	return t.sign(identity, t.refreshSecret, t.refreshTTL)
}

func (t *TokenService) sign(identity domain.Identity, secret []byte, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"id":    identity.ID,
		"role":  identity.Role,
		"name":  identity.Name,
		"email": identity.Email,
		"exp":   time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (t *TokenService) VerifyAccess(tokenString string) (domain.Identity, error) {
	return t.verify(tokenString, t.accessSecret)
}

func (t *TokenService) VerifyRefresh(tokenString string) (domain.Identity, error) {
	return t.verify(tokenString, t.refreshSecret)
}

// verify cek signature + expiry saja; tidak ada issuer/audience check.
func (t *TokenService) verify(tokenString string, secret []byte) (domain.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return domain.Identity{}, autherrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Identity{}, autherrors.ErrInvalidToken
	}

	id, _ := claims["id"].(string)
	if id == "" {
		return domain.Identity{}, autherrors.ErrInvalidToken
	}
	role, _ := claims["role"].(string)
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)

	return domain.Identity{ID: id, Role: role, Name: name, Email: email}, nil
}
