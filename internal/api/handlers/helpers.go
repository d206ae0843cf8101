package handlers

import (
	"fmt"
	"time"

	"github.com/maheshrc27/postdeck/internal/models"
)

// scheduleLayout is the minute-precision form the composer submits.
const scheduleLayout = "2006-01-02T15:04"

func parseScheduledAt(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(scheduleLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid scheduled time format: %w", err)
	}
	return t, nil
}

func parsePlatforms(values []string) ([]models.Platform, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("no platforms selected")
	}
	platforms := make([]models.Platform, 0, len(values))
	for _, v := range values {
		p := models.Platform(v)
		if !models.KnownPlatform(p) {
			return nil, fmt.Errorf("unknown platform %q", v)
		}
		platforms = append(platforms, p)
	}
	return platforms, nil
}
