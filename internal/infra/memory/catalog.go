package memory

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"time"

	"hackquest-service/internal/domain"

	"golang.org/x/sync/singleflight"
)

// CatalogLoader fetches catalog content from a backing store (Postgres, or a
// static seed for demos and tests).
type CatalogLoader interface {
	LoadQuiz(ctx context.Context, quizID string) (domain.Quiz, error)
	ListQuizzes(ctx context.Context) ([]domain.Quiz, error)
	LoadHackathon(ctx context.Context, hackathonID string) (domain.Hackathon, error)
	ListHackathons(ctx context.Context) ([]domain.Hackathon, error)
}

// Catalog caches catalog content with TTL to avoid repeated backing-store
// hits. The catalog is read-only at runtime, so staleness only matters when
// content is republished.
type Catalog struct {
	loader CatalogLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu    sync.RWMutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	value     interface{}
	expiresAt time.Time
}

func NewCatalog(loader CatalogLoader, ttl time.Duration) *Catalog {
	return &Catalog{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[string]cacheEntry),
	}
}

func (c *Catalog) GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error) {
	v, err := c.cached(ctx, "quiz:"+quizID, func() (interface{}, error) {
		return c.loader.LoadQuiz(ctx, quizID)
	})
	if err != nil {
		return domain.Quiz{}, err
	}
	return v.(domain.Quiz), nil
}

func (c *Catalog) ListQuizzes(ctx context.Context) ([]domain.Quiz, error) {
	v, err := c.cached(ctx, "quizzes", func() (interface{}, error) {
		return c.loader.ListQuizzes(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Quiz), nil
}

func (c *Catalog) GetHackathon(ctx context.Context, hackathonID string) (domain.Hackathon, error) {
	v, err := c.cached(ctx, "hackathon:"+hackathonID, func() (interface{}, error) {
		return c.loader.LoadHackathon(ctx, hackathonID)
	})
	if err != nil {
		return domain.Hackathon{}, err
	}
	return v.(domain.Hackathon), nil
}

func (c *Catalog) ListHackathons(ctx context.Context) ([]domain.Hackathon, error) {
	v, err := c.cached(ctx, "hackathons", func() (interface{}, error) {
		return c.loader.ListHackathons(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Hackathon), nil
}

// cached serves key from the cache, collapsing concurrent misses for the
// same key into a single loader call.
func (c *Catalog) cached(_ context.Context, key string, load func() (interface{}, error)) (interface{}, error) {
	now := c.clock()

	c.mu.RLock()
	if entry, ok := c.cache[key]; ok && entry.expiresAt.After(now) {
		c.mu.RUnlock()
		return entry.value, nil
	}
	c.mu.RUnlock()

	v, err, _ := c.sf.Do(key, func() (interface{}, error) {
		now := c.clock()
		c.mu.RLock()
		if entry, ok := c.cache[key]; ok && entry.expiresAt.After(now) {
			c.mu.RUnlock()
			return entry.value, nil
		}
		c.mu.RUnlock()

		value, err := load()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.cache[key] = cacheEntry{value: value, expiresAt: now.Add(c.ttlWithJitter())}
		c.mu.Unlock()
		return value, nil
	})
	return v, err
}

func (c *Catalog) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	// up to 10% jitter to spread expirations
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}

// StaticCatalogLoader serves catalog content from in-memory maps (demo and
// test seed). Every quiz is validated up front.
type StaticCatalogLoader struct {
	quizzes    map[string]domain.Quiz
	hackathons map[string]domain.Hackathon
}

func NewStaticCatalogLoader(quizzes []domain.Quiz, hackathons []domain.Hackathon) (*StaticCatalogLoader, error) {
	l := &StaticCatalogLoader{
		quizzes:    make(map[string]domain.Quiz, len(quizzes)),
		hackathons: make(map[string]domain.Hackathon, len(hackathons)),
	}
	for _, quiz := range quizzes {
		if err := quiz.Validate(); err != nil {
			return nil, err
		}
		l.quizzes[quiz.ID] = quiz
	}
	for _, h := range hackathons {
		l.hackathons[h.ID] = h
	}
	return l, nil
}

func (l *StaticCatalogLoader) LoadQuiz(_ context.Context, quizID string) (domain.Quiz, error) {
	if quiz, ok := l.quizzes[quizID]; ok {
		return quiz, nil
	}
	return domain.Quiz{}, domain.ErrQuizNotFound
}

func (l *StaticCatalogLoader) ListQuizzes(_ context.Context) ([]domain.Quiz, error) {
	out := make([]domain.Quiz, 0, len(l.quizzes))
	for _, quiz := range l.quizzes {
		out = append(out, quiz)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (l *StaticCatalogLoader) LoadHackathon(_ context.Context, hackathonID string) (domain.Hackathon, error) {
	if h, ok := l.hackathons[hackathonID]; ok {
		return h, nil
	}
	return domain.Hackathon{}, domain.ErrHackathonNotFound
}

func (l *StaticCatalogLoader) ListHackathons(_ context.Context) ([]domain.Hackathon, error) {
	out := make([]domain.Hackathon, 0, len(l.hackathons))
	for _, h := range l.hackathons {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
