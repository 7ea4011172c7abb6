package shift

import (
	"time"

	"github.com/google/uuid"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/apperror"
)

type ShiftRequest struct {
	SiteID     string `json:"site_id" binding:"required,uuid"`
	Date       string `json:"date" binding:"required"` // YYYY-MM-DD
	ShiftType  string `json:"shift_type" binding:"required,oneof=DAY MORNING EVENING NIGHT"`
	GuardCount int    `json:"guard_count" binding:"gte=0"`
}

// ShiftTypeCount adalah baris agregasi guard per tipe shift di hari terakhir.
type ShiftTypeCount struct {
	Shift  string `json:"shift"`
	Guards int    `json:"guards"`
}

func (req ShiftRequest) toEntity() (*Shift, error) {
	siteID, err := uuid.Parse(req.SiteID)
	if err != nil {
		return nil, apperror.InvalidField("Site Id")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperror.InvalidField("Date")
	}

	return &Shift{
		ID:         uuid.New(),
		SiteID:     siteID,
		Date:       date,
		ShiftType:  NormalizeType(req.ShiftType),
		GuardCount: req.GuardCount,
	}, nil
}
