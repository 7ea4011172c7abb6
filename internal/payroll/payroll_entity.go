package payroll

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending = "PENDING"
	StatusPaid    = "PAID"
)

// SalaryDisbursement dicatat per site per bulan; kolom month selalu
// tanggal pertama bulan tersebut.
type SalaryDisbursement struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SiteID    uuid.UUID  `gorm:"column:site_id;type:uuid;not null;index" json:"site_id"`
	Month     time.Time  `gorm:"type:date;not null;index" json:"month"`
	Status    string     `gorm:"type:varchar(20)" json:"status"`
	DatePaid  *time.Time `gorm:"column:date_paid;type:date" json:"date_paid"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (SalaryDisbursement) TableName() string {
	return "salary_disbursements"
}
