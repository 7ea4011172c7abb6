package shift

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeDay     = "DAY"
	TypeEvening = "EVENING"
	TypeNight   = "NIGHT"
)

type Shift struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SiteID     uuid.UUID `gorm:"column:site_id;type:uuid;not null;index" json:"site_id"`
	Date       time.Time `gorm:"type:date;not null;index" json:"date"`
	ShiftType  string    `gorm:"column:shift_type;type:varchar(20);not null" json:"shift_type"`
	GuardCount int       `gorm:"column:guard_count;default:0" json:"guard_count"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (Shift) TableName() string {
	return "shifts"
}

// NormalizeType menerima MORNING dari data/client lama sebagai alias DAY.
func NormalizeType(t string) string {
	if t == "MORNING" {
		return TypeDay
	}
	return t
}
