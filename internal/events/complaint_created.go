package events

import "time"

const ComplaintLifecycleTopic = "security.complaint.lifecycle.v1"

type ComplaintCreatedEvent struct {
	EventType   string    `json:"event_type"`
	ComplaintID string    `json:"complaint_id"`
	SiteID      string    `json:"site_id"`
	ClientID    string    `json:"client_id"`
	OccurredAt  time.Time `json:"occurred_at"`
}
