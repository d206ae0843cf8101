package models

// Topic is a reusable content seed grouped by category. Topics are static
// reference data: loaded once, never mutated.
type Topic struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Seasonal    bool   `json:"seasonal,omitempty"`
}

// ContentIdea is an ephemeral generated draft. It is never stored in any
// collection; it lives only between generation and a schedule call.
type ContentIdea struct {
	ID           string   `json:"id"`
	Category     string   `json:"category"`
	Topic        string   `json:"topic"`
	Caption      string   `json:"caption"`
	Hashtags     []string `json:"hashtags"`
	ImagePrompt  string   `json:"image_prompt"`
	CallToAction string   `json:"call_to_action"`
	Angle        string   `json:"angle"`
}
