package site

import (
	"time"

	"github.com/google/uuid"
)

type Site struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name             string     `gorm:"type:varchar(255);not null" json:"name"`
	Location         string     `gorm:"type:varchar(255)" json:"location"`
	Strength         int        `gorm:"default:0" json:"strength"`
	RatePerGuard     float64    `gorm:"column:rate_per_guard;type:decimal(12,2)" json:"rate_per_guard"`
	AgreementStart   *time.Time `gorm:"type:date" json:"agreement_start"`
	AgreementEnd     *time.Time `gorm:"type:date" json:"agreement_end"`
	AreaOfficerName  string     `gorm:"type:varchar(255)" json:"area_officer_name"`
	AreaOfficerPhone string     `gorm:"type:varchar(50)" json:"area_officer_phone"`
	CroName          string     `gorm:"column:cro_name;type:varchar(255)" json:"cro_name"`
	CroPhone         string     `gorm:"column:cro_phone;type:varchar(50)" json:"cro_phone"`
	ClientID         *uuid.UUID `gorm:"column:client_id;type:uuid;index" json:"client_id"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func (Site) TableName() string {
	return "sites"
}
