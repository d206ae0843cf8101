package models

import "time"

type PostStatus string

const (
	PostStatusDraft      PostStatus = "draft"
	PostStatusScheduled  PostStatus = "scheduled"
	PostStatusPublishing PostStatus = "publishing"
	PostStatusPublished  PostStatus = "published"
)

// statusPriority is the fixed ordering used as a secondary sort key when two
// posts share a timestamp: draft < scheduled < publishing < published.
var statusPriority = map[PostStatus]int{
	PostStatusDraft:      0,
	PostStatusScheduled:  1,
	PostStatusPublishing: 2,
	PostStatusPublished:  3,
}

// KnownStatus reports whether s is one of the four lifecycle statuses.
func KnownStatus(s PostStatus) bool {
	_, ok := statusPriority[s]
	return ok
}

// StatusPriority returns the tie-break rank of s. Unknown statuses sort last.
func StatusPriority(s PostStatus) int {
	if p, ok := statusPriority[s]; ok {
		return p
	}
	return len(statusPriority)
}

// Performance holds the simulated projections attached to a post at
// scheduling time. The engine never updates them afterwards.
type Performance struct {
	ProjectedReach  int `json:"projected_reach"`
	ProjectedClicks int `json:"projected_clicks"`
	ProjectedSaves  int `json:"projected_saves"`
}

type ScheduledPost struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	AccountIDs  []string    `json:"account_ids"`
	Category    string      `json:"category"`
	Topic       string      `json:"topic"`
	ScheduledAt time.Time   `json:"scheduled_at"`
	Caption     string      `json:"caption"`
	Hashtags    []string    `json:"hashtags"`
	ImagePrompt string      `json:"image_prompt"`
	Status      PostStatus  `json:"status"`
	Performance Performance `json:"performance"`
}
