package complaint

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusOpen     = "OPEN"
	StatusResolved = "RESOLVED"
)

type Complaint struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SiteID        uuid.UUID `gorm:"column:site_id;type:uuid;not null;index" json:"site_id"`
	ClientID      uuid.UUID `gorm:"column:client_id;type:uuid;not null;index" json:"client_id"`
	ComplaintText string    `gorm:"column:complaint_text;type:text;not null" json:"complaint_text"`
	Status        string    `gorm:"type:varchar(20);not null;default:'OPEN'" json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (Complaint) TableName() string {
	return "complaints"
}
