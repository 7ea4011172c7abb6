package events

import "time"

const BillingLifecycleTopic = "security.billing.lifecycle.v1"

type BillIssuedEvent struct {
	EventType  string    `json:"event_type"`
	BillID     string    `json:"bill_id"`
	Code       string    `json:"code"`
	SiteID     string    `json:"site_id"`
	Amount     float64   `json:"amount"`
	OccurredAt time.Time `json:"occurred_at"`
}
