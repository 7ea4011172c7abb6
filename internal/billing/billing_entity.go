package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusOutstanding = "OUTSTANDING"
	StatusPaid        = "PAID"
)

type Bill struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Code       string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"code"`
	SiteID     uuid.UUID `gorm:"column:site_id;type:uuid;not null;index" json:"site_id"`
	Amount     float64   `gorm:"type:decimal(14,2);not null" json:"amount"`
	DueDate    time.Time `gorm:"column:due_date;type:date;not null;index" json:"due_date"`
	Status     string    `gorm:"type:varchar(20);not null;default:'OUTSTANDING'" json:"status"`
	InvoiceURL string    `gorm:"column:invoice_url;type:varchar(255)" json:"invoice_url"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (Bill) TableName() string {
	return "bills"
}

// BeforeCreate mengisi code dari id kalau kosong: "BILL-" + 8 hex pertama
// id (tanpa dash) dalam huruf besar. Unik mengikuti keunikan id.
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Code == "" {
		b.Code = CodeFor(b.ID)
	}
	if b.Status == "" {
		b.Status = StatusOutstanding
	}
	return nil
}

func CodeFor(id uuid.UUID) string {
	hex := strings.ReplaceAll(id.String(), "-", "")
	return fmt.Sprintf("BILL-%s", strings.ToUpper(hex[:8]))
}
