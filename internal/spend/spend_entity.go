package spend

import (
	"time"

	"github.com/google/uuid"
)

type Spend struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SiteID      uuid.UUID `gorm:"column:site_id;type:uuid;not null;index" json:"site_id"`
	Amount      float64   `gorm:"type:decimal(14,2);not null" json:"amount"`
	Date        time.Time `gorm:"type:date;not null;index" json:"date"`
	Description string    `gorm:"type:varchar(255)" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Spend) TableName() string {
	return "spends"
}
