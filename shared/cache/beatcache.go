package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/dakotahermes/brollbot22/internal/models"
)

// BeatCache memoizes script decompositions with a bounded time-to-live.
// Expired entries are evicted on lookup and by a background janitor.
type BeatCache struct {
	store *gocache.Cache
}

func New(ttl time.Duration) *BeatCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &BeatCache{store: gocache.New(ttl, 2*ttl)}
}

func (c *BeatCache) Get(key string) ([]models.SceneBeat, bool) {
	v, ok := c.store.Get(key)
	if !ok {
		return nil, false
	}
	beats, ok := v.([]models.SceneBeat)
	return beats, ok
}

func (c *BeatCache) Set(key string, beats []models.SceneBeat) {
	c.store.SetDefault(key, beats)
}
