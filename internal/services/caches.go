package services

import (
	"fmt"
	"sync"

	"budget-tracker/internal/cache"
	"budget-tracker/internal/config"
	"budget-tracker/internal/models"

	"github.com/google/uuid"
)

const categoriesKey = "categories"

// Caches holds the read caches shared by the services. Cached values are
// shared between requests and must be treated as read-only.
type Caches struct {
	Categories cache.Cache[[]models.Category]
	Stats      cache.Cache[*models.MonthlyStats]
	Dashboard  cache.Cache[*models.Dashboard]

	metrics MetricsRecorderInterface

	// Invalidations bump a generation. A read records the generation before it
	// touches storage and its result is only stored if no write happened since.
	mu           sync.Mutex
	userGens     map[uuid.UUID]uint64
	catalogueGen uint64
}

// Generation identifies the cache state a read started from
type Generation struct {
	user      uint64
	catalogue uint64
}

// NewCaches builds the caches described by cfg and registers them with manager.
// A disabled cache config yields no-op caches.
func NewCaches(cfg config.CacheConfig, manager *cache.Manager, metrics MetricsRecorderInterface) *Caches {
	if !cfg.Enabled {
		return NewNoopCaches(metrics)
	}

	categories := cache.NewLRUCache[[]models.Category](1, cfg.TTL)
	stats := cache.NewLRUCache[*models.MonthlyStats](cfg.MaxEntries, cfg.TTL)
	dashboard := cache.NewLRUCache[*models.Dashboard](cfg.MaxEntries, cfg.TTL)

	if manager != nil {
		manager.Register(categories)
		manager.Register(stats)
		manager.Register(dashboard)
	}

	return &Caches{
		Categories: categories,
		Stats:      stats,
		Dashboard:  dashboard,
		metrics:    metrics,
		userGens:   make(map[uuid.UUID]uint64),
	}
}

// NewNoopCaches returns caches that never hold anything
func NewNoopCaches(metrics MetricsRecorderInterface) *Caches {
	return &Caches{
		Categories: cache.Noop[[]models.Category]{},
		Stats:      cache.Noop[*models.MonthlyStats]{},
		Dashboard:  cache.Noop[*models.Dashboard]{},
		metrics:    metrics,
		userGens:   make(map[uuid.UUID]uint64),
	}
}

func statsKey(userID uuid.UUID, year, month int) string {
	return fmt.Sprintf("stats:%s:%04d-%02d", userID, year, month)
}

func dashboardKey(userID uuid.UUID, year, month int) string {
	return fmt.Sprintf("dashboard:%s:%04d-%02d", userID, year, month)
}

// Generation returns the current generation for userID. A nil userID only
// tracks the category catalogue.
func (c *Caches) Generation(userID *uuid.UUID) Generation {
	c.mu.Lock()
	defer c.mu.Unlock()

	gen := Generation{catalogue: c.catalogueGen}
	if userID != nil {
		gen.user = c.userGens[*userID]
	}
	return gen
}

// InvalidateUser drops every stats and dashboard entry of one user
func (c *Caches) InvalidateUser(userID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.userGens[userID]++
	c.Stats.DeletePrefix(fmt.Sprintf("stats:%s:", userID))
	c.Dashboard.DeletePrefix(fmt.Sprintf("dashboard:%s:", userID))
}

// InvalidateCategories drops the category list and every dashboard, since all
// dashboards embed the list
func (c *Caches) InvalidateCategories() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.catalogueGen++
	c.Categories.Delete(categoriesKey)
	c.Dashboard.DeletePrefix("dashboard:")
}

// StoreCategories caches the catalogue unless it changed after gen was taken
func (c *Caches) StoreCategories(gen Generation, categories []models.Category) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen.catalogue != c.catalogueGen {
		return false
	}
	c.Categories.Set(categoriesKey, categories)
	return true
}

// StoreStats caches one month of stats unless the user wrote after gen was taken
func (c *Caches) StoreStats(userID uuid.UUID, gen Generation, year, month int, stats *models.MonthlyStats) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen.user != c.userGens[userID] {
		return false
	}
	c.Stats.Set(statsKey(userID, year, month), stats)
	return true
}

// StoreDashboard caches a dashboard unless the user or the catalogue changed
// after gen was taken
func (c *Caches) StoreDashboard(userID uuid.UUID, gen Generation, year, month int, dashboard *models.Dashboard) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen.user != c.userGens[userID] || gen.catalogue != c.catalogueGen {
		return false
	}
	c.Dashboard.Set(dashboardKey(userID, year, month), dashboard)
	return true
}

func lookup[T any](c *Caches, store cache.Cache[T], name, key string) (T, bool) {
	value, ok := store.Get(key)
	if c.metrics != nil {
		metric := MetricCacheMiss
		if ok {
			metric = MetricCacheHit
		}
		c.metrics.IncrementCounter(metric, map[string]string{"cache": name})
	}
	return value, ok
}
