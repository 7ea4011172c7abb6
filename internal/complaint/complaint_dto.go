package complaint

import (
	"github.com/google/uuid"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/apperror"
)

type ComplaintRequest struct {
	SiteID        string `json:"site_id" binding:"required,uuid"`
	ComplaintText string `json:"complaint_text" binding:"required"`
}

// toEntity: client_id selalu dari identity pemanggil, bukan dari body.
func (req ComplaintRequest) toEntity(clientID string) (*Complaint, error) {
	siteID, err := uuid.Parse(req.SiteID)
	if err != nil {
		return nil, apperror.InvalidField("Site Id")
	}

	cid, err := uuid.Parse(clientID)
	if err != nil {
		return nil, apperror.InvalidField("Client Id")
	}

	return &Complaint{
		ID:            uuid.New(),
		SiteID:        siteID,
		ClientID:      cid,
		ComplaintText: req.ComplaintText,
		Status:        StatusOpen,
	}, nil
}
