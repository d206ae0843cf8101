package scheduler

import (
	"math/rand"
	"testing"
	"time"

	"github.com/maheshrc27/postdeck/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T, init InitialState) *Store {
	t.Helper()
	return New(init,
		WithClock(func() time.Time { return testNow }),
		WithRand(rand.New(rand.NewSource(1))),
	)
}

func testInitialState() InitialState {
	return InitialState{
		Accounts: []models.Account{
			{ID: "a1", Name: "Emberline IG", Handle: "@emberline", Platform: models.PlatformInstagram, Connected: true},
			{ID: "a2", Name: "Emberline FB", Handle: "emberline", Platform: models.PlatformFacebook, Connected: true},
		},
		Topics: []models.Topic{
			{ID: "t1", Category: "Product Highlights", Label: "Single-Origin Spotlight", Description: "introduce this month's lot"},
			{ID: "t2", Category: "Seasonal", Label: "Autumn Menu Reveal", Description: "reveal the fall menu", Seasonal: true},
		},
		Snapshots: []models.EngagementSnapshot{
			{AccountID: "a1", Date: testNow.AddDate(0, 0, -1), Impressions: 1000},
		},
		BrandVoice: "friendly",
	}
}

func testIdea() models.ContentIdea {
	return models.ContentIdea{
		ID:          "idea-1",
		Category:    "Product Highlights",
		Topic:       "Single-Origin Spotlight",
		Caption:     "A caption",
		Hashtags:    []string{"#coffee"},
		ImagePrompt: "A prompt",
	}
}

func TestAddAccount(t *testing.T) {
	s := newTestStore(t, testInitialState())

	id, err := s.AddAccount(models.Account{
		Name:      "Emberline Pins",
		Handle:    "emberlinebrews",
		Platform:  models.PlatformPinterest,
		Connected: false, // must be forced to true
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	accounts := s.Accounts()
	require.Len(t, accounts, 3)
	added := accounts[2]
	assert.Equal(t, id, added.ID)
	assert.True(t, added.Connected)
	assert.Equal(t, models.PlatformPinterest, added.Platform)
}

func TestRemoveAccountCascades(t *testing.T) {
	s := newTestStore(t, testInitialState())

	post, err := s.SchedulePost(testIdea(), []string{"a1", "a2"}, testNow.Add(time.Hour))
	require.NoError(t, err)
	require.Equal(t, []string{"a1", "a2"}, post.AccountIDs)

	require.True(t, s.RemoveAccount("a1"))

	for _, a := range s.Accounts() {
		assert.NotEqual(t, "a1", a.ID)
	}
	for _, p := range s.Posts() {
		assert.NotContains(t, p.AccountIDs, "a1")
	}
}

func TestRemoveAccountUnknownIsNoOp(t *testing.T) {
	s := newTestStore(t, testInitialState())

	var notifications int
	s.Subscribe(func(State) { notifications++ })

	assert.False(t, s.RemoveAccount("missing"))
	assert.Len(t, s.Accounts(), 2)
	assert.Zero(t, notifications)
}

func TestToggleConnectionTwiceRestores(t *testing.T) {
	s := newTestStore(t, testInitialState())

	before := s.Accounts()[0].Connected
	require.True(t, s.ToggleConnection("a1"))
	assert.Equal(t, !before, s.Accounts()[0].Connected)
	require.True(t, s.ToggleConnection("a1"))
	assert.Equal(t, before, s.Accounts()[0].Connected)

	assert.False(t, s.ToggleConnection("missing"))
}

func TestGenerateIdea(t *testing.T) {
	s := newTestStore(t, testInitialState())

	idea, err := s.GenerateIdea("t1", []models.Platform{models.PlatformInstagram, models.PlatformFacebook}, "friendly")
	require.NoError(t, err)
	require.NotNil(t, idea)

	assert.Equal(t, "Product Highlights", idea.Category)
	assert.Equal(t, "Single-Origin Spotlight", idea.Topic)
	assert.NotEmpty(t, idea.Caption)
	assert.NotEmpty(t, idea.Hashtags)
	assert.NotEmpty(t, idea.ImagePrompt)
}

func TestGenerateIdeaUnknownTopic(t *testing.T) {
	s := newTestStore(t, testInitialState())

	idea, err := s.GenerateIdea("missing", []models.Platform{models.PlatformInstagram}, "")
	require.NoError(t, err)
	assert.Nil(t, idea)

	// Nothing was touched.
	assert.Len(t, s.Accounts(), 2)
	assert.Len(t, s.Topics(), 2)
	assert.Empty(t, s.Posts())
}

func TestGenerateIdeaEmptyPlatforms(t *testing.T) {
	s := newTestStore(t, testInitialState())

	idea, err := s.GenerateIdea("t1", nil, "")
	assert.Error(t, err)
	assert.Nil(t, idea)
}

func TestSchedulePost(t *testing.T) {
	s := newTestStore(t, testInitialState())

	at := testNow.Add(2 * time.Hour)
	post, err := s.SchedulePost(testIdea(), []string{"a1"}, at)
	require.NoError(t, err)

	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "Single-Origin Spotlight Boost", post.Title)
	assert.Equal(t, models.PostStatusScheduled, post.Status)
	assert.True(t, post.ScheduledAt.Equal(at))

	perf := post.Performance
	assert.GreaterOrEqual(t, perf.ProjectedReach, 7200)
	assert.Less(t, perf.ProjectedReach, 13400)
	assert.GreaterOrEqual(t, perf.ProjectedClicks, 450)
	assert.Less(t, perf.ProjectedClicks, 870)
	assert.GreaterOrEqual(t, perf.ProjectedSaves, 240)
	assert.Less(t, perf.ProjectedSaves, 600)
}

func TestSchedulePostClampsPastTimestamp(t *testing.T) {
	s := newTestStore(t, testInitialState())

	post, err := s.SchedulePost(testIdea(), []string{"a1"}, testNow.Add(-5*time.Minute))
	require.NoError(t, err)

	assert.True(t, post.ScheduledAt.Equal(testNow.Add(30*time.Minute)),
		"past timestamp must be advanced to now+30m, got %v", post.ScheduledAt)
}

func TestSchedulePostKeepsExactNow(t *testing.T) {
	s := newTestStore(t, testInitialState())

	// Only strictly-earlier timestamps are clamped.
	post, err := s.SchedulePost(testIdea(), []string{"a1"}, testNow)
	require.NoError(t, err)
	assert.True(t, post.ScheduledAt.Equal(testNow))
}

func TestPostsStaySorted(t *testing.T) {
	s := newTestStore(t, testInitialState())

	offsets := []time.Duration{5 * time.Hour, time.Hour, 9 * time.Hour, 2 * time.Hour, 7 * time.Hour}
	ids := make([]string, 0, len(offsets))
	for _, off := range offsets {
		post, err := s.SchedulePost(testIdea(), []string{"a1"}, testNow.Add(off))
		require.NoError(t, err)
		ids = append(ids, post.ID)
	}
	assertSorted(t, s.Posts())

	updated := s.ReschedulePost(ids[2], testNow.Add(30*time.Minute))
	require.NotNil(t, updated)
	assertSorted(t, s.Posts())
	assert.Equal(t, updated.ID, s.Posts()[0].ID)

	updated = s.ReschedulePost(ids[0], testNow.Add(24*time.Hour))
	require.NotNil(t, updated)
	assertSorted(t, s.Posts())
	assert.Equal(t, updated.ID, s.Posts()[len(offsets)-1].ID)
}

func assertSorted(t *testing.T, posts []models.ScheduledPost) {
	t.Helper()
	for i := 1; i < len(posts); i++ {
		assert.False(t, posts[i].ScheduledAt.Before(posts[i-1].ScheduledAt),
			"posts out of order at index %d", i)
	}
}

func TestReschedulePost(t *testing.T) {
	s := newTestStore(t, testInitialState())

	post, err := s.SchedulePost(testIdea(), []string{"a1"}, testNow.Add(time.Hour))
	require.NoError(t, err)

	updated := s.ReschedulePost(post.ID, testNow.Add(-time.Hour))
	require.NotNil(t, updated)
	assert.True(t, updated.ScheduledAt.Equal(testNow.Add(30*time.Minute)))

	assert.Nil(t, s.ReschedulePost("missing", testNow.Add(time.Hour)))
}

func TestMarkPostStatus(t *testing.T) {
	s := newTestStore(t, testInitialState())

	post, err := s.SchedulePost(testIdea(), []string{"a1"}, testNow.Add(time.Hour))
	require.NoError(t, err)

	found, err := s.MarkPostStatus(post.ID, models.PostStatusPublishing)
	require.NoError(t, err)
	require.True(t, found)

	got := s.Posts()[0]
	assert.Equal(t, models.PostStatusPublishing, got.Status)
	assert.True(t, got.ScheduledAt.Equal(post.ScheduledAt), "status change must not touch the timestamp")

	found, err = s.MarkPostStatus("missing", models.PostStatusPublished)
	require.NoError(t, err)
	assert.False(t, found)

	_, err = s.MarkPostStatus(post.ID, "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSetBrandVoice(t *testing.T) {
	s := newTestStore(t, testInitialState())

	s.SetBrandVoice("bold and direct")
	assert.Equal(t, "bold and direct", s.BrandVoice())
}

func TestNotifyOncePerMutation(t *testing.T) {
	s := newTestStore(t, testInitialState())

	var states []State
	s.Subscribe(func(st State) { states = append(states, st) })

	id, err := s.AddAccount(models.Account{Name: "n", Handle: "h", Platform: models.PlatformInstagram})
	require.NoError(t, err)
	require.Len(t, states, 1)

	s.ToggleConnection(id)
	require.Len(t, states, 2)

	s.SetBrandVoice("new voice")
	require.Len(t, states, 3)
	assert.Equal(t, "new voice", states[2].BrandVoice)
	assert.Len(t, states[2].Accounts, 3)

	// Reads and no-ops stay silent.
	s.Accounts()
	s.Posts()
	s.ToggleConnection("missing")
	s.RemoveAccount("missing")
	_, _ = s.MarkPostStatus("missing", models.PostStatusDraft)
	assert.Len(t, states, 3)
}

func TestTopicsByCategory(t *testing.T) {
	s := newTestStore(t, testInitialState())

	grouped := s.TopicsByCategory()
	require.Len(t, grouped, 2)
	require.Len(t, grouped["Product Highlights"], 1)
	assert.Equal(t, "t1", grouped["Product Highlights"][0].ID)
}

func TestReadsReturnCopies(t *testing.T) {
	s := newTestStore(t, testInitialState())

	_, err := s.SchedulePost(testIdea(), []string{"a1"}, testNow.Add(time.Hour))
	require.NoError(t, err)

	posts := s.Posts()
	posts[0].AccountIDs[0] = "tampered"
	posts[0].Status = models.PostStatusPublished

	fresh := s.Posts()
	assert.Equal(t, "a1", fresh[0].AccountIDs[0])
	assert.Equal(t, models.PostStatusScheduled, fresh[0].Status)

	accounts := s.Accounts()
	accounts[0].Name = "tampered"
	assert.Equal(t, "Emberline IG", s.Accounts()[0].Name)
}

// Mirrors the full dashboard flow: generate, schedule in the past, advance
// status, then disconnect an account.
func TestEndToEndScenario(t *testing.T) {
	s := newTestStore(t, testInitialState())

	idea, err := s.GenerateIdea("t1", []models.Platform{models.PlatformInstagram, models.PlatformFacebook}, "friendly")
	require.NoError(t, err)
	require.NotNil(t, idea)
	assert.Equal(t, "Product Highlights", idea.Category)

	post, err := s.SchedulePost(*idea, []string{"a1", "a2"}, testNow.Add(-5*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusScheduled, post.Status)
	assert.True(t, post.ScheduledAt.Equal(testNow.Add(30*time.Minute)))
	require.Len(t, s.Posts(), 1)
	assert.Equal(t, post.ID, s.Posts()[0].ID)

	found, err := s.MarkPostStatus(post.ID, models.PostStatusPublishing)
	require.NoError(t, err)
	require.True(t, found)
	got := s.Posts()[0]
	assert.Equal(t, models.PostStatusPublishing, got.Status)
	assert.True(t, got.ScheduledAt.Equal(post.ScheduledAt))

	require.True(t, s.RemoveAccount("a1"))
	assert.Equal(t, []string{"a2"}, s.Posts()[0].AccountIDs)
	require.Len(t, s.Accounts(), 1)
	assert.Equal(t, "a2", s.Accounts()[0].ID)
}

func TestComparePostsTieBreak(t *testing.T) {
	at := testNow.Add(time.Hour)
	draft := models.ScheduledPost{ID: "d", ScheduledAt: at, Status: models.PostStatusDraft}
	published := models.ScheduledPost{ID: "p", ScheduledAt: at, Status: models.PostStatusPublished}

	assert.Negative(t, ComparePosts(draft, published))
	assert.Positive(t, ComparePosts(published, draft))
	assert.Zero(t, ComparePosts(draft, draft))

	earlier := models.ScheduledPost{ID: "e", ScheduledAt: at.Add(-time.Minute), Status: models.PostStatusPublished}
	assert.Negative(t, ComparePosts(earlier, draft))
}
