package domain

import "time"

// EventType classifies an ad event. Only impressions and clicks exist.
type EventType string

const (
	EventImpression EventType = "impression"
	EventClick      EventType = "click"
)

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	return t == EventImpression || t == EventClick
}

// AdEvent is an immutable record of one impression or click on a verified
// site. Events are append-only: never updated, never deleted.
type AdEvent struct {
	ID        int64
	SiteID    int64
	Type      EventType
	CreatedAt time.Time
}

// SiteStats is a point-in-time snapshot of a site's accumulated events
// and the revenue estimated from them.
type SiteStats struct {
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Revenue     float64 `json:"revenue"`
}
