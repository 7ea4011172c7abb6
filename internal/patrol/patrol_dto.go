package patrol

import (
	"time"

	"github.com/google/uuid"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/apperror"
)

type NightRoundRequest struct {
	SiteID    string  `json:"site_id" binding:"required,uuid"`
	Date      string  `json:"date" binding:"required"` // YYYY-MM-DD
	Findings  string  `json:"findings"`
	OfficerID *string `json:"officer_id" binding:"omitempty,uuid"`
}

type NightRoundResponse struct {
	NightRound
	OfficerName string `json:"officer_name,omitempty"`
}

func (req NightRoundRequest) toEntity() (*NightRound, error) {
	siteID, err := uuid.Parse(req.SiteID)
	if err != nil {
		return nil, apperror.InvalidField("Site Id")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperror.InvalidField("Date")
	}

	n := &NightRound{
		ID:       uuid.New(),
		SiteID:   siteID,
		Date:     date,
		Findings: req.Findings,
	}
	if req.OfficerID != nil {
		officerID, err := uuid.Parse(*req.OfficerID)
		if err != nil {
			return nil, apperror.InvalidField("Officer Id")
		}
		n.OfficerID = &officerID
	}
	return n, nil
}
