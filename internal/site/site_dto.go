package site

import (
	"time"

	"github.com/google/uuid"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/apperror"
)

type SiteRequest struct {
	Name             string  `json:"name" binding:"required"`
	Location         string  `json:"location"`
	Strength         int     `json:"strength"`
	RatePerGuard     float64 `json:"rate_per_guard"`
	AgreementStart   *string `json:"agreement_start"` // YYYY-MM-DD
	AgreementEnd     *string `json:"agreement_end"`
	AreaOfficerName  string  `json:"area_officer_name"`
	AreaOfficerPhone string  `json:"area_officer_phone"`
	CroName          string  `json:"cro_name"`
	CroPhone         string  `json:"cro_phone"`
	ClientID         *string `json:"client_id" binding:"omitempty,uuid"`
}

type UpdateSiteRequest struct {
	Name             *string  `json:"name"`
	Location         *string  `json:"location"`
	Strength         *int     `json:"strength"`
	RatePerGuard     *float64 `json:"rate_per_guard"`
	AgreementStart   *string  `json:"agreement_start"`
	AgreementEnd     *string  `json:"agreement_end"`
	AreaOfficerName  *string  `json:"area_officer_name"`
	AreaOfficerPhone *string  `json:"area_officer_phone"`
	CroName          *string  `json:"cro_name"`
	CroPhone         *string  `json:"cro_phone"`
	ClientID         *string  `json:"client_id" binding:"omitempty,uuid"`
}

type SiteResponse struct {
	Site
	ClientName string `json:"client_name,omitempty"`
}

func parseDate(raw string) (*time.Time, error) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, apperror.InvalidField("date")
	}
	return &t, nil
}

func (req SiteRequest) toEntity() (*Site, error) {
	s := &Site{
		ID:               uuid.New(),
		Name:             req.Name,
		Location:         req.Location,
		Strength:         req.Strength,
		RatePerGuard:     req.RatePerGuard,
		AreaOfficerName:  req.AreaOfficerName,
		AreaOfficerPhone: req.AreaOfficerPhone,
		CroName:          req.CroName,
		CroPhone:         req.CroPhone,
	}

	if req.AgreementStart != nil {
		t, err := parseDate(*req.AgreementStart)
		if err != nil {
			return nil, err
		}
		s.AgreementStart = t
	}
	if req.AgreementEnd != nil {
		t, err := parseDate(*req.AgreementEnd)
		if err != nil {
			return nil, err
		}
		s.AgreementEnd = t
	}
	if req.ClientID != nil {
		id, err := uuid.Parse(*req.ClientID)
		if err != nil {
			return nil, apperror.InvalidField("Client Id")
		}
		s.ClientID = &id
	}

	return s, nil
}

func (req UpdateSiteRequest) apply(s *Site) error {
	if req.Name != nil {
		s.Name = *req.Name
	}
	if req.Location != nil {
		s.Location = *req.Location
	}
	if req.Strength != nil {
		s.Strength = *req.Strength
	}
	if req.RatePerGuard != nil {
		s.RatePerGuard = *req.RatePerGuard
	}
	if req.AreaOfficerName != nil {
		s.AreaOfficerName = *req.AreaOfficerName
	}
	if req.AreaOfficerPhone != nil {
		s.AreaOfficerPhone = *req.AreaOfficerPhone
	}
	if req.CroName != nil {
		s.CroName = *req.CroName
	}
	if req.CroPhone != nil {
		s.CroPhone = *req.CroPhone
	}
	if req.AgreementStart != nil {
		t, err := parseDate(*req.AgreementStart)
		if err != nil {
			return err
		}
		s.AgreementStart = t
	}
	if req.AgreementEnd != nil {
		t, err := parseDate(*req.AgreementEnd)
		if err != nil {
			return err
		}
		s.AgreementEnd = t
	}
	if req.ClientID != nil {
		id, err := uuid.Parse(*req.ClientID)
		if err != nil {
			return apperror.InvalidField("Client Id")
		}
		s.ClientID = &id
	}
	return nil
}
