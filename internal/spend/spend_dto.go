package spend

import (
	"time"

	"github.com/google/uuid"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/apperror"
)

type SpendRequest struct {
	SiteID      string  `json:"site_id" binding:"required,uuid"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Date        string  `json:"date" binding:"required"` // YYYY-MM-DD
	Description string  `json:"description"`
}

type UpdateSpendRequest struct {
	Amount      *float64 `json:"amount" binding:"omitempty,gt=0"`
	Date        *string  `json:"date"`
	Description *string  `json:"description"`
}

func (req SpendRequest) toEntity() (*Spend, error) {
	siteID, err := uuid.Parse(req.SiteID)
	if err != nil {
		return nil, apperror.InvalidField("Site Id")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperror.InvalidField("Date")
	}

	return &Spend{
		ID:          uuid.New(),
		SiteID:      siteID,
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
	}, nil
}
