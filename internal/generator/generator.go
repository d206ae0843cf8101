package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/maheshrc27/postdeck/internal/models"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// ErrNoPlatforms is returned when Generate is called with an empty platform
// set. The caller must resolve at least one target platform first.
var ErrNoPlatforms = errors.New("at least one target platform is required")

var angles = []struct {
	Label string
	Hook  string
}{
	{"behind the scenes", "Pull back the curtain:"},
	{"community spotlight", "Made for the regulars:"},
	{"quick tip", "One small thing that changes everything:"},
	{"seasonal moment", "Right on time for the season:"},
	{"origin story", "Here is where it all starts:"},
}

var callToActions = map[models.Platform][]string{
	models.PlatformInstagram: {
		"Double-tap if this is your vibe and tag who you're bringing.",
		"Save this one for your next visit.",
	},
	models.PlatformFacebook: {
		"Tell us in the comments — we read every single one.",
		"Share this with someone who needs it today.",
	},
	models.PlatformPinterest: {
		"Pin this to your inspiration board.",
		"Save the idea now, try it this weekend.",
	},
}

var platformTags = map[models.Platform][]string{
	models.PlatformInstagram: {"#instadaily", "#reels", "#shopsmall"},
	models.PlatformFacebook:  {"#community", "#local"},
	models.PlatformPinterest: {"#pinspiration", "#ideas", "#diy"},
}

// Generate synthesizes a ContentIdea from a resolved topic, the target
// platform mix, and the brand voice text. It is a pure function of its
// inputs and the supplied random source; it never touches shared state.
func Generate(topic models.Topic, platforms []models.Platform, brandVoice string, rng *rand.Rand) (*models.ContentIdea, error) {
	if len(platforms) == 0 {
		return nil, ErrNoPlatforms
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("generating idea id: %w", err)
	}

	angle := angles[rng.Intn(len(angles))]
	cta := pickCallToAction(platforms, rng)

	var caption strings.Builder
	caption.WriteString(angle.Hook)
	caption.WriteString(" ")
	caption.WriteString(topic.Description)
	if brandVoice != "" {
		caption.WriteString(" Told the way only we tell it: ")
		caption.WriteString(brandVoice)
		caption.WriteString(".")
	}
	caption.WriteString(" ")
	caption.WriteString(cta)

	return &models.ContentIdea{
		ID:           id,
		Category:     topic.Category,
		Topic:        topic.Label,
		Caption:      caption.String(),
		Hashtags:     buildHashtags(topic, platforms),
		ImagePrompt:  buildImagePrompt(topic, angle.Label),
		CallToAction: cta,
		Angle:        angle.Label,
	}, nil
}

func pickCallToAction(platforms []models.Platform, rng *rand.Rand) string {
	ctas := callToActions[platforms[rng.Intn(len(platforms))]]
	if len(ctas) == 0 {
		ctas = callToActions[models.PlatformInstagram]
	}
	return ctas[rng.Intn(len(ctas))]
}

// buildHashtags assembles a tag stack sized for the platform mix: the
// image-centric platforms carry richer stacks than link-centric ones.
func buildHashtags(topic models.Topic, platforms []models.Platform) []string {
	seen := make(map[string]struct{})
	var tags []string
	add := func(tag string) {
		if tag == "" {
			return
		}
		if _, ok := seen[tag]; ok {
			return
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	add(hashtagify(topic.Label))
	add(hashtagify(topic.Category))
	if topic.Seasonal {
		add("#seasonal")
	}
	for _, p := range platforms {
		for _, tag := range platformTags[p] {
			add(tag)
		}
	}

	limit := 5
	for _, p := range platforms {
		if p == models.PlatformInstagram || p == models.PlatformPinterest {
			limit = 9
			break
		}
	}
	if len(tags) > limit {
		tags = tags[:limit]
	}
	return tags
}

func buildImagePrompt(topic models.Topic, angle string) string {
	return fmt.Sprintf(
		"Warm, natural-light photo for a %s post: %s. Composition leans into a %s angle, shallow depth of field, no text overlay.",
		strings.ToLower(topic.Category), topic.Description, angle,
	)
}

// hashtagify collapses a label into a single lowercase hashtag.
func hashtagify(label string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(label) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "#" + b.String()
}
