package training

import (
	"time"

	"github.com/google/uuid"
)

// TrainingReport menyimpan topik pelatihan sebagai teks dipisah koma,
// mengikuti format data lama.
type TrainingReport struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SiteID          uuid.UUID `gorm:"column:site_id;type:uuid;not null;index" json:"site_id"`
	Date            time.Time `gorm:"type:date;not null;index" json:"date"`
	Topics          string    `gorm:"type:text" json:"topics"`
	AttendanceCount int       `gorm:"column:attendance_count" json:"attendance_count"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (TrainingReport) TableName() string {
	return "training_reports"
}

// TopicsCovered menghitung jumlah topik non-kosong dari string topics.
func (t TrainingReport) TopicsCovered() int {
	count := 0
	for _, part := range splitTopics(t.Topics) {
		if part != "" {
			count++
		}
	}
	return count
}
