package attendance

import (
	"time"

	"github.com/google/uuid"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/apperror"
)

type AttendanceRequest struct {
	SiteID  string  `json:"site_id" binding:"required,uuid"`
	GuardID *string `json:"guard_id" binding:"omitempty,uuid"`
	Date    string  `json:"date" binding:"required"` // YYYY-MM-DD
	Status  string  `json:"status" binding:"omitempty,oneof=PRESENT ABSENT LEAVE"`
}

type UpdateAttendanceRequest struct {
	GuardID *string `json:"guard_id" binding:"omitempty,uuid"`
	Date    *string `json:"date"`
	Status  *string `json:"status" binding:"omitempty,oneof=PRESENT ABSENT LEAVE"`
}

type AttendanceResponse struct {
	Attendance
	GuardName string `json:"guard_name"`
	SiteName  string `json:"site_name,omitempty"`
}

func (req AttendanceRequest) toEntity() (*Attendance, error) {
	siteID, err := uuid.Parse(req.SiteID)
	if err != nil {
		return nil, apperror.InvalidField("Site Id")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperror.InvalidField("Date")
	}

	a := &Attendance{
		ID:     uuid.New(),
		SiteID: siteID,
		Date:   date,
		Status: req.Status,
	}
	if req.GuardID != nil {
		guardID, err := uuid.Parse(*req.GuardID)
		if err != nil {
			return nil, apperror.InvalidField("Guard Id")
		}
		a.GuardID = &guardID
	}
	return a, nil
}
