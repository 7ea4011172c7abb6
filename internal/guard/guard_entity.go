package guard

import (
	"time"

	"github.com/google/uuid"
)

type Guard struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SiteID    *uuid.UUID `gorm:"column:site_id;type:uuid;index" json:"site_id"`
	Name      string     `gorm:"type:varchar(255);not null" json:"name"`
	Phone     string     `gorm:"type:varchar(50)" json:"phone"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (Guard) TableName() string {
	return "guards"
}
