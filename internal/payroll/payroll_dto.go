package payroll

import (
	"time"

	"github.com/google/uuid"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/apperror"
)

type DisbursementRequest struct {
	SiteID   string  `json:"site_id" binding:"required,uuid"`
	Month    string  `json:"month" binding:"required"` // "YYYY-MM" atau "YYYY-MM-DD"
	Status   string  `json:"status" binding:"omitempty,oneof=PENDING PAID"`
	DatePaid *string `json:"date_paid"`
}

func (req DisbursementRequest) toEntity() (*SalaryDisbursement, error) {
	siteID, err := uuid.Parse(req.SiteID)
	if err != nil {
		return nil, apperror.InvalidField("Site Id")
	}

	month, err := NormalizeMonth(req.Month)
	if err != nil {
		return nil, err
	}

	s := &SalaryDisbursement{
		ID:     uuid.New(),
		SiteID: siteID,
		Month:  month,
		Status: req.Status,
	}
	if req.DatePaid != nil {
		paid, err := time.Parse("2006-01-02", *req.DatePaid)
		if err != nil {
			return nil, apperror.InvalidField("Date Paid")
		}
		s.DatePaid = &paid
	}
	return s, nil
}

// NormalizeMonth menerima "YYYY-MM" atau tanggal penuh dan selalu
// mengembalikan tanggal pertama bulan itu.
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
