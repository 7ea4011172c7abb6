package rating

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/apperror"
)

func TestRatingRequest_ToEntity(t *testing.T) {
	clientID := uuid.New()
	req := RatingRequest{
		SiteID:      uuid.New().String(),
		Month:       "2026-07",
		RatingValue: 4,
		NPSScore:    60,
	}

	row, err := req.toEntity(clientID.String())
	assert.NoError(t, err)
	assert.Equal(t, clientID, row.ClientID)
	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), row.Month)
	assert.Equal(t, 4, row.RatingValue)
	assert.Equal(t, 60, row.NPSScore)
}

func TestRatingRequest_ToEntity_BadClient(t *testing.T) {
	req := RatingRequest{SiteID: uuid.New().String(), Month: "2026-07", RatingValue: 3}

	_, err := req.toEntity("bukan-uuid")
	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
}

func TestNormalizeMonth_Truncates(t *testing.T) {
	got, err := NormalizeMonth("2026-02-28")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = NormalizeMonth("2026")
	assert.Error(t, err)
}
