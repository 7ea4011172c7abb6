package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/domain"
)

func testTokenService() *TokenService {
	return NewTokenService(
		[]byte("access-secret"),
		[]byte("refresh-secret"),
		time.Hour,
		2*time.Hour,
	)
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := testTokenService()
	identity := domain.Identity{
		ID:    uuid.New().String(),
		Role:  domain.RoleAdmin,
		Name:  "Admin",
		Email: "admin@example.com",
	}

	access, err := svc.IssueAccess(identity)
	assert.NoError(t, err)
	assert.NotEmpty(t, access)

	got, err := svc.VerifyAccess(access)
	assert.NoError(t, err)
	assert.Equal(t, identity, got)

	refresh, err := svc.IssueRefresh(identity)
	assert.NoError(t, err)

	got, err = svc.VerifyRefresh(refresh)
	assert.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestTokenService_CrossSecretRejected(t *testing.T) {
	svc := testTokenService()
	identity := domain.Identity{ID: uuid.New().String(), Role: domain.RoleClient}

	access, err := svc.IssueAccess(identity)
	assert.NoError(t, err)
	refresh, err := svc.IssueRefresh(identity)
	assert.NoError(t, err)

	// access token tidak boleh lolos verifikasi refresh, dan sebaliknya
	_, err = svc.VerifyRefresh(access)
	assert.Error(t, err)
	_, err = svc.VerifyAccess(refresh)
	assert.Error(t, err)
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService(
		[]byte("access-secret"),
		[]byte("refresh-secret"),
		-time.Minute,
		-time.Minute,
	)
	// TTL <= 0 jatuh ke default 30 hari, jadi paksa lewat sign langsung
	token, err := svc.sign(domain.Identity{ID: uuid.New().String()}, svc.accessSecret, -time.Minute)
	assert.NoError(t, err)

	_, err = svc.VerifyAccess(token)
	assert.Error(t, err)
}

func TestTokenService_DefaultTTL(t *testing.T) {
	svc := NewTokenService([]byte("a"), []byte("r"), 0, 0)
	assert.Equal(t, defaultTokenTTL, svc.accessTTL)
	assert.Equal(t, defaultTokenTTL, svc.refreshTTL)
}

func TestTokenService_GarbageToken(t *testing.T) {
	svc := testTokenService()
	_, err := svc.VerifyAccess("not-a-jwt")
	assert.Error(t, err)
}
