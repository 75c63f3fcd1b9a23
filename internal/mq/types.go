package mq

import (
	"time"
)

// ClickMessage represents a click event on the wire. Immutable once
// emitted; delivery is at-most-once from the producer's perspective.
type ClickMessage struct {
	EventID   string    `json:"event_id"`
	ShortCode string    `json:"short_code"`
	ClientIP  string    `json:"client_ip"`
	UserAgent string    `json:"user_agent"`
	Referer   string    `json:"referer"`
	ClickedAt time.Time `json:"clicked_at"`
}
