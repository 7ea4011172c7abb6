package rating

import (
	"time"

	"github.com/google/uuid"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/apperror"
)

type RatingRequest struct {
	SiteID      string `json:"site_id" binding:"required,uuid"`
	Month       string `json:"month" binding:"required"` // "YYYY-MM"
	RatingValue int    `json:"rating_value" binding:"required,min=1,max=5"`
	NPSScore    int    `json:"nps_score" binding:"omitempty,min=-100,max=100"`
}

// AdminRatingRequest dipakai ADMIN/CRO membuat rating atas nama klien.
type AdminRatingRequest struct {
	RatingRequest
	ClientID string `json:"client_id" binding:"required,uuid"`
}

func (req RatingRequest) toEntity(clientID string) (*Rating, error) {
	siteID, err := uuid.Parse(req.SiteID)
	if err != nil {
		return nil, apperror.InvalidField("Site Id")
	}

	cid, err := uuid.Parse(clientID)
	if err != nil {
		return nil, apperror.InvalidField("Client Id")
	}

	month, err := NormalizeMonth(req.Month)
	if err != nil {
		return nil, err
	}

	return &Rating{
		ID:          uuid.New(),
		SiteID:      siteID,
		ClientID:    cid,
		Month:       month,
		RatingValue: req.RatingValue,
		NPSScore:    req.NPSScore,
	}, nil
}

// NormalizeMonth map "YYYY-MM" (atau tanggal penuh) ke tanggal pertama bulan.
func NormalizeMonth(raw string) (time.Time, error) {
	if len(raw) > 7 {
		raw = raw[:7]
	}
	month, err := time.Parse("2006-01", raw)
	if err != nil {
		return time.Time{}, apperror.InvalidField("Month")
	}
	return month, nil
}
