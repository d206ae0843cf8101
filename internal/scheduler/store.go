package scheduler

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/maheshrc27/postdeck/internal/generator"
	"github.com/maheshrc27/postdeck/internal/models"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// ErrInvalidStatus is returned when a status outside the four-value
// lifecycle enum is supplied to MarkPostStatus.
var ErrInvalidStatus = errors.New("unknown post status")

// futureGrace is how far past-dated schedule requests are pushed forward.
const futureGrace = 30 * time.Minute

// Projection ranges for simulated post performance.
const (
	reachBase  = 7200
	reachSpan  = 6200
	clicksBase = 450
	clicksSpan = 420
	savesBase  = 240
	savesSpan  = 360
)

// State is the persisted subset of the store: the collections the
// persistence adapter loads at boot and writes through on every change.
// Topics and engagement snapshots are static reference data and stay out.
type State struct {
	Accounts   []models.Account       `json:"accounts"`
	BrandVoice string                 `json:"brand_voice"`
	Posts      []models.ScheduledPost `json:"posts"`
}

// InitialState seeds a new store. Accounts, BrandVoice and Posts usually come
// from the persistence adapter; Topics and Snapshots from the seed dataset.
type InitialState struct {
	Accounts   []models.Account
	Topics     []models.Topic
	Snapshots  []models.EngagementSnapshot
	Posts      []models.ScheduledPost
	BrandVoice string
}

// Store owns the canonical scheduling state. All mutation goes through its
// methods; a single mutex guards the collections so observers see either the
// pre- or post-mutation state, never a partial one. Reads return copies.
type Store struct {
	mu sync.Mutex

	accounts         []models.Account
	topics           []models.Topic
	topicsByCategory map[string][]models.Topic
	snapshots        []models.EngagementSnapshot
	posts            []models.ScheduledPost
	brandVoice       string

	now func() time.Time
	rng *rand.Rand

	subscribers []func(State)
}

type Option func(*Store)

// WithClock overrides the store's time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithRand overrides the random source used for performance projections and
// generator phrasing, so tests can pin it down.
func WithRand(rng *rand.Rand) Option {
	return func(s *Store) { s.rng = rng }
}

func New(init InitialState, opts ...Option) *Store {
	s := &Store{
		accounts:   cloneAccounts(init.Accounts),
		topics:     append([]models.Topic(nil), init.Topics...),
		snapshots:  append([]models.EngagementSnapshot(nil), init.Snapshots...),
		posts:      clonePosts(init.Posts),
		brandVoice: init.BrandVoice,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s.topicsByCategory = make(map[string][]models.Topic)
	for _, t := range s.topics {
		s.topicsByCategory[t.Category] = append(s.topicsByCategory[t.Category], t)
	}
	s.sortPosts()
	return s
}

// Subscribe registers fn to receive the persisted state after every
// successful mutation. Silent no-ops do not notify. Subscribers run on the
// mutating goroutine, after the lock is released.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// AddAccount appends a new account with a fresh id and connected forced to
// true, and returns the assigned id.
func (s *Store) AddAccount(account models.Account) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generating account id: %w", err)
	}

	s.mu.Lock()
	account.ID = id
	account.Connected = true
	account.Categories = append([]string(nil), account.Categories...)
	s.accounts = append(s.accounts, account)
	state := s.persistedState()
	s.mu.Unlock()

	s.notify(state)
	return id, nil
}

// RemoveAccount deletes the account and strips its id from every post's
// account list. Unknown ids are a silent no-op.
func (s *Store) RemoveAccount(accountID string) bool {
	s.mu.Lock()
	idx := s.accountIndex(accountID)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.accounts = append(s.accounts[:idx], s.accounts[idx+1:]...)
	for i := range s.posts {
		ids := s.posts[i].AccountIDs[:0]
		for _, id := range s.posts[i].AccountIDs {
			if id != accountID {
				ids = append(ids, id)
			}
		}
		s.posts[i].AccountIDs = ids
	}
	state := s.persistedState()
	s.mu.Unlock()

	s.notify(state)
	return true
}

// ToggleConnection flips the connected flag on the matching account.
// Unknown ids are a silent no-op.
func (s *Store) ToggleConnection(accountID string) bool {
	s.mu.Lock()
	idx := s.accountIndex(accountID)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.accounts[idx].Connected = !s.accounts[idx].Connected
	state := s.persistedState()
	s.mu.Unlock()

	s.notify(state)
	return true
}

// GenerateIdea resolves the topic and delegates to the idea generator.
// An unknown topic id yields (nil, nil) so callers can distinguish "nothing
// to generate" from a generation failure. No collection is touched.
func (s *Store) GenerateIdea(topicID string, platforms []models.Platform, brandVoice string) (*models.ContentIdea, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var topic *models.Topic
	for i := range s.topics {
		if s.topics[i].ID == topicID {
			topic = &s.topics[i]
			break
		}
	}
	if topic == nil {
		return nil, nil
	}
	return generator.Generate(*topic, platforms, brandVoice, s.rng)
}

// SchedulePost commits a generated idea to the schedule. The requested
// timestamp is clamped to the future, projections are drawn, and the posts
// collection is re-sorted. The returned post carries the applied timestamp so
// callers can observe when normalization fired.
func (s *Store) SchedulePost(idea models.ContentIdea, accountIDs []string, requestedAt time.Time) (*models.ScheduledPost, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("generating post id: %w", err)
	}

	s.mu.Lock()
	post := models.ScheduledPost{
		ID:          id,
		Title:       idea.Topic + " Boost",
		AccountIDs:  append([]string(nil), accountIDs...),
		Category:    idea.Category,
		Topic:       idea.Topic,
		ScheduledAt: s.clampToFuture(requestedAt),
		Caption:     idea.Caption,
		Hashtags:    append([]string(nil), idea.Hashtags...),
		ImagePrompt: idea.ImagePrompt,
		Status:      models.PostStatusScheduled,
		Performance: models.Performance{
			ProjectedReach:  reachBase + s.rng.Intn(reachSpan),
			ProjectedClicks: clicksBase + s.rng.Intn(clicksSpan),
			ProjectedSaves:  savesBase + s.rng.Intn(savesSpan),
		},
	}
	s.posts = append(s.posts, post)
	s.sortPosts()
	created := clonePost(post)
	state := s.persistedState()
	s.mu.Unlock()

	s.notify(state)
	return &created, nil
}

// MarkPostStatus sets the status field only; timestamp and ordering are
// untouched. Any of the four lifecycle values is accepted regardless of the
// current state. Returns false without notifying when the post is unknown.
func (s *Store) MarkPostStatus(postID string, status models.PostStatus) (bool, error) {
	if !models.KnownStatus(status) {
		return false, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	s.mu.Lock()
	idx := s.postIndex(postID)
	if idx < 0 {
		s.mu.Unlock()
		return false, nil
	}
	s.posts[idx].Status = status
	state := s.persistedState()
	s.mu.Unlock()

	s.notify(state)
	return true, nil
}

// ReschedulePost replaces the post's timestamp (clamped to the future) and
// re-sorts the collection. Returns the updated post, or nil when the id is
// unknown.
func (s *Store) ReschedulePost(postID string, newAt time.Time) *models.ScheduledPost {
	s.mu.Lock()
	idx := s.postIndex(postID)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	s.posts[idx].ScheduledAt = s.clampToFuture(newAt)
	s.sortPosts()

	idx = s.postIndex(postID)
	updated := clonePost(s.posts[idx])
	state := s.persistedState()
	s.mu.Unlock()

	s.notify(state)
	return &updated
}

// SetBrandVoice replaces the brand-voice text wholesale.
func (s *Store) SetBrandVoice(voice string) {
	s.mu.Lock()
	s.brandVoice = voice
	state := s.persistedState()
	s.mu.Unlock()

	s.notify(state)
}

func (s *Store) Accounts() []models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAccounts(s.accounts)
}

func (s *Store) Topics() []models.Topic {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Topic(nil), s.topics...)
}

// TopicsByCategory returns the static category-to-topics grouping, built once
// at construction.
func (s *Store) TopicsByCategory() map[string][]models.Topic {
	s.mu.Lock()
	defer s.mu.Unlock()
	grouped := make(map[string][]models.Topic, len(s.topicsByCategory))
	for category, topics := range s.topicsByCategory {
		grouped[category] = append([]models.Topic(nil), topics...)
	}
	return grouped
}

func (s *Store) Snapshots() []models.EngagementSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.EngagementSnapshot(nil), s.snapshots...)
}

func (s *Store) Posts() []models.ScheduledPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePosts(s.posts)
}

func (s *Store) BrandVoice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.brandVoice
}

// clampToFuture advances timestamps that are already in the past. A post must
// never be created "due" before the moment it is scheduled.
func (s *Store) clampToFuture(t time.Time) time.Time {
	now := s.now()
	if t.Before(now) {
		return now.Add(futureGrace)
	}
	return t
}

func (s *Store) sortPosts() {
	sort.SliceStable(s.posts, func(i, j int) bool {
		return ComparePosts(s.posts[i], s.posts[j]) < 0
	})
}

// ComparePosts orders posts ascending by scheduled time, breaking ties by
// status priority. The store guarantees the timestamp order; the tie-break
// keeps calendar grouping stable for presentation consumers.
func ComparePosts(a, b models.ScheduledPost) int {
	if a.ScheduledAt.Before(b.ScheduledAt) {
		return -1
	}
	if b.ScheduledAt.Before(a.ScheduledAt) {
		return 1
	}
	return models.StatusPriority(a.Status) - models.StatusPriority(b.Status)
}

func (s *Store) accountIndex(id string) int {
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) postIndex(id string) int {
	for i := range s.posts {
		if s.posts[i].ID == id {
			return i
		}
	}
	return -1
}

// persistedState must be called with the lock held.
func (s *Store) persistedState() State {
	return State{
		Accounts:   cloneAccounts(s.accounts),
		BrandVoice: s.brandVoice,
		Posts:      clonePosts(s.posts),
	}
}

func (s *Store) notify(state State) {
	s.mu.Lock()
	subs := append([]func(State){}, s.subscribers...)
	s.mu.Unlock()

	for _, fn := range subs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("state subscriber panicked", "panic", r)
				}
			}()
			fn(state)
		}()
	}
}

func cloneAccounts(accounts []models.Account) []models.Account {
	out := make([]models.Account, len(accounts))
	for i, a := range accounts {
		a.Categories = append([]string(nil), a.Categories...)
		out[i] = a
	}
	return out
}

func clonePost(p models.ScheduledPost) models.ScheduledPost {
	p.AccountIDs = append([]string(nil), p.AccountIDs...)
	p.Hashtags = append([]string(nil), p.Hashtags...)
	return p
}

func clonePosts(posts []models.ScheduledPost) []models.ScheduledPost {
	out := make([]models.ScheduledPost, len(posts))
	for i, p := range posts {
		out[i] = clonePost(p)
	}
	return out
}
