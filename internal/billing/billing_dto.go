package billing

import (
	"time"

	"github.com/google/uuid"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/apperror"
)

type BillRequest struct {
	Code       string  `json:"code" binding:"omitempty,min=4,max=64"`
	SiteID     string  `json:"site_id" binding:"required,uuid"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	DueDate    string  `json:"due_date" binding:"required"` // YYYY-MM-DD
	Status     string  `json:"status" binding:"omitempty,oneof=OUTSTANDING PAID"`
	InvoiceURL string  `json:"invoice_url" binding:"omitempty,url"`
}

type UpdateBillRequest struct {
	Amount     *float64 `json:"amount" binding:"omitempty,gt=0"`
	DueDate    *string  `json:"due_date"`
	Status     *string  `json:"status" binding:"omitempty,oneof=OUTSTANDING PAID"`
	InvoiceURL *string  `json:"invoice_url" binding:"omitempty,url"`
}

// SOAResponse adalah statement of account: semua bill site terurut jatuh
// tempo plus total yang masih outstanding.
type SOAResponse struct {
	Items       []Bill  `json:"items"`
	Outstanding float64 `json:"outstanding"`
}

func (req BillRequest) toEntity() (*Bill, error) {
	siteID, err := uuid.Parse(req.SiteID)
	if err != nil {
		return nil, apperror.InvalidField("Site Id")
	}

	due, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return nil, apperror.InvalidField("Due Date")
	}

	return &Bill{
		ID:         uuid.New(),
		Code:       req.Code,
		SiteID:     siteID,
		Amount:     req.Amount,
		DueDate:    due,
		Status:     req.Status,
		InvoiceURL: req.InvoiceURL,
	}, nil
}

func (req UpdateBillRequest) apply(b *Bill) error {
	if req.Amount != nil {
		b.Amount = *req.Amount
	}
	if req.DueDate != nil {
		due, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return apperror.InvalidField("Due Date")
		}
		b.DueDate = due
	}
	if req.Status != nil {
		b.Status = *req.Status
	}
	if req.InvoiceURL != nil {
		b.InvoiceURL = *req.InvoiceURL
	}
	return nil
}
