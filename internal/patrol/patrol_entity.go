package patrol

import (
	"time"

	"github.com/google/uuid"
)

// NightRound adalah catatan patroli malam per site. officer_id merujuk users,
// weak reference: officer yang dihapus tidak menghapus catatan patroli.
type NightRound struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SiteID    uuid.UUID  `gorm:"column:site_id;type:uuid;not null;index" json:"site_id"`
	Date      time.Time  `gorm:"type:date;not null;index" json:"date"`
	Findings  string     `gorm:"type:text" json:"findings"`
	OfficerID *uuid.UUID `gorm:"column:officer_id;type:uuid" json:"officer_id"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (NightRound) TableName() string {
	return "night_rounds"
}
