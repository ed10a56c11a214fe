package article

import (
	"log"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"newsflow/internal/apperr"
	"newsflow/internal/i18n"
)

type ChangeKind string

const (
	Created ChangeKind = "created"
	Updated ChangeKind = "updated"
	Deleted ChangeKind = "deleted"
)

type Change struct {
	Kind    ChangeKind `json:"kind"`
	Article Article    `json:"article"`
	At      time.Time  `json:"at"`
}

// Listener is notified after every successful mutation, one change at a time
// and in mutation order. It may read the store but must not mutate it.
type Listener interface {
	ArticleChanged(c Change)
}

type Option func(*Store)

func WithSeed(articles []Article) Option {
	return func(s *Store) {
		s.articles = slices.Clone(articles)
	}
}

func WithAnalytics(points []AnalyticsPoint) Option {
	return func(s *Store) {
		s.analytics = slices.Clone(points)
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func WithIDFunc(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

// WithRand makes placeholder images and generated analytics deterministic.
func WithRand(r *rand.Rand) Option {
	return func(s *Store) {
		s.intN = r.IntN
	}
}

func WithListener(l Listener) Option {
	return func(s *Store) {
		s.listeners = append(s.listeners, l)
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// Store owns the article collection and the analytics window. Every read
// returns copies, so callers can never reach into the collection.
type Store struct {
	mu        sync.RWMutex
	notifyMu  sync.Mutex
	articles  []Article
	analytics []AnalyticsPoint

	now       func() time.Time
	newID     func() string
	intN      func(int) int
	listeners []Listener
	logger    *log.Logger
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		now:   time.Now,
		newID: uuid.NewString,
		intN:  rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	return s
}

// NewSeededStore returns a store holding the mock articles and a random
// seven day analytics window for the localizer's language, unless the
// options already supplied them.
func NewSeededStore(loc *i18n.Localizer, opts ...Option) *Store {
	s := NewStore(opts...)
	now := s.now()
	if s.articles == nil {
		s.articles = SeedArticles(loc.Language(), now)
	}
	if s.analytics == nil {
		s.analytics = GenerateAnalytics(loc, now, s.intN)
	}
	return s
}

// Query filters by category (AllCategories or "" disables it), then by a
// case-insensitive substring of title or excerpt, and orders the result by
// CreatedAt, newest first. Equal timestamps keep store order.
func (s *Store) Query(search, category string) []Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(search)
	out := make([]Article, 0, len(s.articles))
	for _, a := range s.articles {
		if category != "" && category != AllCategories && string(a.Category) != category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(a.Title), needle) &&
			!strings.Contains(strings.ToLower(a.Excerpt), needle) {
			continue
		}
		out = append(out, a)
	}

	slices.SortStableFunc(out, func(a, b Article) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out
}

func (s *Store) GetByID(id string) (Article, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return Article{}, false
	}
	return s.articles[i], true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.articles)
}

// Save creates an article when p.ID is empty and merges p over the existing
// record otherwise. An ID that matches nothing is rejected rather than used
// to create a record with a caller-chosen id.
func (s *Store) Save(p Patch) (Article, error) {
	if err := validatePatch(p); err != nil {
		return Article{}, err
	}

	s.mu.Lock()
	change, err := s.save(p)
	if err != nil {
		s.mu.Unlock()
		return Article{}, err
	}
	s.release(change)
	return change.Article, nil
}

// save requires s.mu held for writing.
func (s *Store) save(p Patch) (Change, error) {
	if p.ID != "" {
		i := s.indexOf(p.ID)
		if i < 0 {
			return Change{}, apperr.NewValidation("update target not found")
		}
		p.apply(&s.articles[i])
		s.logger.Printf("updated article %s", p.ID)
		return Change{Kind: Updated, Article: s.articles[i], At: s.now()}, nil
	}

	a := s.newArticle(p)
	s.articles = slices.Insert(s.articles, 0, a)
	s.logger.Printf("created article %s", a.ID)
	return Change{Kind: Created, Article: a, At: a.CreatedAt}, nil
}

func (s *Store) newArticle(p Patch) Article {
	id := s.newID()
	for s.indexOf(id) >= 0 {
		id = s.newID()
	}

	a := Article{
		ID:        id,
		Title:     DefaultTitle,
		Category:  DefaultCategory,
		Author:    DefaultAuthor,
		ImageURL:  PlaceholderImageURL(s.intN(100)),
		CreatedAt: s.now(),
		Status:    StatusDraft,
	}
	p.apply(&a)

	// empty strings fall back like absent ones
	if a.Title == "" {
		a.Title = DefaultTitle
	}
	if a.Author == "" {
		a.Author = DefaultAuthor
	}
	if a.ImageURL == "" {
		a.ImageURL = PlaceholderImageURL(s.intN(100))
	}
	return a
}

// Delete removes the article if present. Unknown ids are a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	removed := s.articles[i]
	s.articles = slices.Delete(s.articles, i, i+1)
	s.logger.Printf("deleted article %s", id)
	s.release(Change{Kind: Deleted, Article: removed, At: s.now()})
}

// Analytics returns the trailing window, oldest first.
func (s *Store) Analytics() []AnalyticsPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.analytics)
}

// CategoryStats counts live articles per category in order of first
// appearance. Categories without articles are omitted.
func (s *Store) CategoryStats() []CategoryStat {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := make([]CategoryStat, 0, len(Categories))
	pos := make(map[Category]int, len(Categories))
	for _, a := range s.articles {
		i, ok := pos[a.Category]
		if !ok {
			i = len(stats)
			pos[a.Category] = i
			stats = append(stats, CategoryStat{Name: string(a.Category)})
		}
		stats[i].Value++
	}
	return stats
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.articles, func(a Article) bool { return a.ID == id })
}

// release hands the write lock over to the notify lock, so listeners see
// changes in mutation order while readers are already unblocked. Called with
// s.mu held for writing; returns with both locks released.
func (s *Store) release(c Change) {
	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	for _, l := range s.listeners {
		l.ArticleChanged(c)
	}
}
