package training

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/apperror"
)

type TrainingRequest struct {
	SiteID          string `json:"site_id" binding:"required,uuid"`
	Date            string `json:"date" binding:"required"` // YYYY-MM-DD
	Topics          string `json:"topics"`
	AttendanceCount int    `json:"attendance_count" binding:"omitempty,min=0"`
}

// LatestTrainingResponse menambahkan topicsCovered turunan di atas entity.
type LatestTrainingResponse struct {
	TrainingReport
	TopicsCovered int `json:"topicsCovered"`
}

func (req TrainingRequest) toEntity() (*TrainingReport, error) {
	siteID, err := uuid.Parse(req.SiteID)
	if err != nil {
		return nil, apperror.InvalidField("Site Id")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperror.InvalidField("Date")
	}

	return &TrainingReport{
		ID:              uuid.New(),
		SiteID:          siteID,
		Date:            date,
		Topics:          req.Topics,
		AttendanceCount: req.AttendanceCount,
	}, nil
}

func splitTopics(topics string) []string {
	parts := strings.Split(topics, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
