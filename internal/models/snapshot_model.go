package models

import "time"

// EngagementSnapshot is a read-only analytics record for one account on one
// day. Snapshots are supplied at load time and never mutated by the engine.
type EngagementSnapshot struct {
	AccountID        string    `json:"account_id"`
	Date             time.Time `json:"date"`
	Impressions      int       `json:"impressions"`
	Comments         int       `json:"comments"`
	Saves            int       `json:"saves"`
	Shares           int       `json:"shares"`
	ClickThroughRate float64   `json:"click_through_rate"`
}
