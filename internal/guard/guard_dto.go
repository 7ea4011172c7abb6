package guard

import (
	"github.com/google/uuid"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/apperror"
)

type GuardRequest struct {
	SiteID *string `json:"site_id" binding:"omitempty,uuid"`
	Name   string  `json:"name" binding:"required"`
	Phone  string  `json:"phone"`
}

type UpdateGuardRequest struct {
	SiteID *string `json:"site_id" binding:"omitempty,uuid"`
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
}

type GuardResponse struct {
	Guard
	SiteName string `json:"site_name,omitempty"`
}

func (req GuardRequest) toEntity() (*Guard, error) {
	g := &Guard{
		ID:    uuid.New(),
		Name:  req.Name,
		Phone: req.Phone,
	}
	if req.SiteID != nil {
		id, err := uuid.Parse(*req.SiteID)
		if err != nil {
			return nil, apperror.InvalidField("Site Id")
		}
		g.SiteID = &id
	}
	return g, nil
}
