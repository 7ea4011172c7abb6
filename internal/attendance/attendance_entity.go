package attendance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
	StatusLeave   = "LEAVE"
)

type Attendance struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SiteID    uuid.UUID  `gorm:"column:site_id;type:uuid;not null;index" json:"site_id"`
	GuardID   *uuid.UUID `gorm:"column:guard_id;type:uuid;index" json:"guard_id"`
	Date      time.Time  `gorm:"type:date;not null;index" json:"date"`
	Status    string     `gorm:"type:varchar(20);not null;default:'PRESENT'" json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// Status default PRESENT kalau kosong, sesuai perilaku lama.
func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPresent
	}
	return nil
}
