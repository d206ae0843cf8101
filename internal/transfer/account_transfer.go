package transfer

type AccountCreation struct {
	Name           string   `json:"name"`
	Handle         string   `json:"handle"`
	Platform       string   `json:"platform"`
	AvatarURL      string   `json:"avatar_url"`
	Audience       int      `json:"audience"`
	EngagementRate float64  `json:"engagement_rate"`
	BestPostTime   string   `json:"best_post_time"`
	Categories     []string `json:"categories"`
}

type IdeaGeneration struct {
	TopicID    string   `json:"topic_id"`
	Platforms  []string `json:"platforms"`
	BrandVoice string   `json:"brand_voice"`
}
