// Package seed carries the built-in demo dataset used when the persistence
// adapter has no stored state yet. Topics and engagement snapshots are static
// reference data and are always sourced from here.
package seed

import (
	"time"

	"github.com/maheshrc27/postdeck/internal/models"
	"github.com/maheshrc27/postdeck/internal/scheduler"
)

const BrandVoice = "slow-crafted specialty coffee brand voice, friendly mentor tone, community-first and sustainably-minded"

func Accounts() []models.Account {
	return []models.Account{
		{
			ID:             "acc-emberline-ig",
			Name:           "Emberline Coffee",
			Handle:         "@emberline.coffee",
			Platform:       models.PlatformInstagram,
			AvatarURL:      "/avatars/emberline-ig.png",
			Connected:      true,
			Audience:       24800,
			EngagementRate: 4.7,
			BestPostTime:   "08:30",
			Categories:     []string{"Product Highlights", "Behind the Scenes"},
		},
		{
			ID:             "acc-emberline-fb",
			Name:           "Emberline Coffee Roasters",
			Handle:         "emberlinecoffee",
			Platform:       models.PlatformFacebook,
			AvatarURL:      "/avatars/emberline-fb.png",
			Connected:      true,
			Audience:       11350,
			EngagementRate: 2.3,
			BestPostTime:   "12:15",
			Categories:     []string{"Community", "Product Highlights"},
		},
		{
			ID:             "acc-emberline-pin",
			Name:           "Emberline Brew Guides",
			Handle:         "emberlinebrews",
			Platform:       models.PlatformPinterest,
			AvatarURL:      "/avatars/emberline-pin.png",
			Connected:      false,
			Audience:       8900,
			EngagementRate: 6.1,
			BestPostTime:   "19:45",
			Categories:     []string{"Brewing Education", "Seasonal"},
		},
	}
}

func Topics() []models.Topic {
	return []models.Topic{
		{
			ID:          "topic-single-origin",
			Category:    "Product Highlights",
			Label:       "Single-Origin Spotlight",
			Description: "introduce this month's single-origin lot, its farm, and the flavor notes to expect",
		},
		{
			ID:          "topic-new-blend",
			Category:    "Product Highlights",
			Label:       "New Blend Launch",
			Description: "tease the upcoming house blend and what makes its roast profile different",
		},
		{
			ID:          "topic-roastery-tour",
			Category:    "Behind the Scenes",
			Label:       "Roastery Morning",
			Description: "walk through the first roast of the day, from green beans to first crack",
		},
		{
			ID:          "topic-team-intro",
			Category:    "Behind the Scenes",
			Label:       "Meet the Roaster",
			Description: "introduce one person on the team and the cup they reach for every morning",
		},
		{
			ID:          "topic-customer-corner",
			Category:    "Community",
			Label:       "Customer Corner",
			Description: "celebrate a regular's go-to order and the story behind it",
		},
		{
			ID:          "topic-local-partners",
			Category:    "Community",
			Label:       "Local Partner Feature",
			Description: "spotlight the bakery down the street whose pastries share our counter",
		},
		{
			ID:          "topic-pourover-basics",
			Category:    "Brewing Education",
			Label:       "Pour-Over Basics",
			Description: "break down water temperature, grind size, and bloom for a cleaner cup at home",
		},
		{
			ID:          "topic-cold-brew-ratio",
			Category:    "Brewing Education",
			Label:       "Cold Brew Ratios",
			Description: "share the 1:8 overnight ratio and how to adjust strength without bitterness",
		},
		{
			ID:          "topic-autumn-menu",
			Category:    "Seasonal",
			Label:       "Autumn Menu Reveal",
			Description: "reveal the maple cortado and spiced cascara soda joining the fall menu",
			Seasonal:    true,
		},
		{
			ID:          "topic-holiday-gifting",
			Category:    "Seasonal",
			Label:       "Holiday Gift Sets",
			Description: "preview the gift boxes pairing beans with hand-thrown ceramic mugs",
			Seasonal:    true,
		},
	}
}

func Snapshots() []models.EngagementSnapshot {
	day := func(offset int) time.Time {
		return time.Now().AddDate(0, 0, -offset).Truncate(24 * time.Hour)
	}
	return []models.EngagementSnapshot{
		{AccountID: "acc-emberline-ig", Date: day(1), Impressions: 18420, Comments: 214, Saves: 390, Shares: 128, ClickThroughRate: 2.9},
		{AccountID: "acc-emberline-ig", Date: day(2), Impressions: 16080, Comments: 189, Saves: 344, Shares: 97, ClickThroughRate: 2.4},
		{AccountID: "acc-emberline-ig", Date: day(3), Impressions: 21930, Comments: 260, Saves: 455, Shares: 173, ClickThroughRate: 3.3},
		{AccountID: "acc-emberline-fb", Date: day(1), Impressions: 7260, Comments: 84, Saves: 61, Shares: 140, ClickThroughRate: 1.8},
		{AccountID: "acc-emberline-fb", Date: day(2), Impressions: 6890, Comments: 71, Saves: 48, Shares: 122, ClickThroughRate: 1.6},
		{AccountID: "acc-emberline-pin", Date: day(1), Impressions: 12740, Comments: 19, Saves: 820, Shares: 64, ClickThroughRate: 4.1},
		{AccountID: "acc-emberline-pin", Date: day(3), Impressions: 11310, Comments: 12, Saves: 735, Shares: 51, ClickThroughRate: 3.8},
	}
}

func Posts() []models.ScheduledPost {
	return []models.ScheduledPost{
		{
			ID:          "post-welcome-autumn",
			Title:       "Autumn Menu Reveal Boost",
			AccountIDs:  []string{"acc-emberline-ig", "acc-emberline-fb"},
			Category:    "Seasonal",
			Topic:       "Autumn Menu Reveal",
			ScheduledAt: time.Now().Add(26 * time.Hour).Truncate(time.Minute),
			Caption:     "Right on time for the season: the maple cortado and spiced cascara soda join the menu this week. Save this one for your next visit.",
			Hashtags:    []string{"#autumnmenureveal", "#seasonal", "#instadaily", "#shopsmall"},
			ImagePrompt: "Warm, natural-light photo for a seasonal post: a maple cortado on a walnut counter beside fallen leaves, shallow depth of field, no text overlay.",
			Status:      models.PostStatusScheduled,
			Performance: models.Performance{ProjectedReach: 10400, ProjectedClicks: 610, ProjectedSaves: 385},
		},
		{
			ID:          "post-pourover-guide",
			Title:       "Pour-Over Basics Boost",
			AccountIDs:  []string{"acc-emberline-pin"},
			Category:    "Brewing Education",
			Topic:       "Pour-Over Basics",
			ScheduledAt: time.Now().Add(3 * 24 * time.Hour).Truncate(time.Minute),
			Caption:     "One small thing that changes everything: bloom your grounds for 30 seconds before the main pour. Pin this to your inspiration board.",
			Hashtags:    []string{"#pouroverbasics", "#brewingeducation", "#pinspiration", "#ideas"},
			ImagePrompt: "Warm, natural-light photo for a brewing education post: water spiraling from a gooseneck kettle into a ceramic dripper, shallow depth of field, no text overlay.",
			Status:      models.PostStatusDraft,
			Performance: models.Performance{ProjectedReach: 8150, ProjectedClicks: 495, ProjectedSaves: 540},
		},
	}
}

// Default assembles the full initial state for a first boot.
func Default() scheduler.InitialState {
	return scheduler.InitialState{
		Accounts:   Accounts(),
		Topics:     Topics(),
		Snapshots:  Snapshots(),
		Posts:      Posts(),
		BrandVoice: BrandVoice,
	}
}
