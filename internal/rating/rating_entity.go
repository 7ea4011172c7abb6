package rating

import (
	"time"

	"github.com/google/uuid"
)

// Rating adalah skor bulanan klien per site; month disimpan sebagai
// tanggal pertama bulan tersebut.
type Rating struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SiteID      uuid.UUID `gorm:"column:site_id;type:uuid;not null;index" json:"site_id"`
	ClientID    uuid.UUID `gorm:"column:client_id;type:uuid;not null;index" json:"client_id"`
	Month       time.Time `gorm:"type:date;not null;index" json:"month"`
	RatingValue int       `gorm:"column:rating_value;not null" json:"rating_value"`
	NPSScore    int       `gorm:"column:nps_score" json:"nps_score"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Rating) TableName() string {
	return "ratings"
}
