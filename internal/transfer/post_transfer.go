package transfer

import "github.com/maheshrc27/postdeck/internal/models"

type PostScheduling struct {
	Idea        models.ContentIdea `json:"idea"`
	AccountIDs  []string           `json:"account_ids"`
	ScheduledAt string             `json:"scheduled_at"`
}

type StatusUpdate struct {
	PostID string `json:"post_id"`
	Status string `json:"status"`
}

type PostReschedule struct {
	PostID      string `json:"post_id"`
	ScheduledAt string `json:"scheduled_at"`
}

type VoiceUpdate struct {
	Voice string `json:"voice"`
}
