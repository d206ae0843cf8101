package models

// Platform identifies which social network an account belongs to.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformPinterest Platform = "pinterest"
)

// KnownPlatform reports whether p is one of the supported platforms.
func KnownPlatform(p Platform) bool {
	switch p {
	case PlatformInstagram, PlatformFacebook, PlatformPinterest:
		return true
	}
	return false
}

type Account struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Handle         string   `json:"handle"`
	Platform       Platform `json:"platform"`
	AvatarURL      string   `json:"avatar_url"`
	Connected      bool     `json:"connected"`
	Audience       int      `json:"audience"`
	EngagementRate float64  `json:"engagement_rate"`
	BestPostTime   string   `json:"best_post_time"`
	Categories     []string `json:"categories"`
}
