package services

import (
	"testing"
	"time"

	"budget-tracker/internal/config"
	"budget-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestCaches() *Caches {
	return NewCaches(config.CacheConfig{Enabled: true, TTL: time.Minute, MaxEntries: 8}, nil, nil)
}

func TestCaches_StoreStatsRespectsGeneration(t *testing.T) {
	caches := newTestCaches()
	userID, other := uuid.New(), uuid.New()

	stale := caches.Generation(&userID)
	caches.InvalidateUser(userID)

	assert.False(t, caches.StoreStats(userID, stale, 2025, 3, models.EmptyMonthlyStats(2025, 3)))
	_, ok := caches.Stats.Get(statsKey(userID, 2025, 3))
	assert.False(t, ok)

	assert.True(t, caches.StoreStats(userID, caches.Generation(&userID), 2025, 3, models.EmptyMonthlyStats(2025, 3)))
	_, ok = caches.Stats.Get(statsKey(userID, 2025, 3))
	assert.True(t, ok)

	otherGen := caches.Generation(&other)
	caches.InvalidateUser(userID)
	assert.True(t, caches.StoreStats(other, otherGen, 2025, 3, models.EmptyMonthlyStats(2025, 3)), "writes by one user do not affect another")
}

func TestCaches_CatalogueChangeBlocksStaleStores(t *testing.T) {
	caches := newTestCaches()
	userID := uuid.New()

	gen := caches.Generation(&userID)
	caches.InvalidateCategories()

	assert.False(t, caches.StoreCategories(gen, []models.Category{}))
	assert.False(t, caches.StoreDashboard(userID, gen, 2025, 3, &models.Dashboard{}))
	assert.True(t, caches.StoreStats(userID, gen, 2025, 3, models.EmptyMonthlyStats(2025, 3)), "stats do not embed the catalogue")

	fresh := caches.Generation(&userID)
	assert.True(t, caches.StoreCategories(fresh, []models.Category{}))
	assert.True(t, caches.StoreDashboard(userID, fresh, 2025, 3, &models.Dashboard{}))
}

func TestCaches_NoopStoresNothing(t *testing.T) {
	caches := NewNoopCaches(nil)
	userID := uuid.New()

	caches.StoreStats(userID, caches.Generation(&userID), 2025, 3, models.EmptyMonthlyStats(2025, 3))
	_, ok := caches.Stats.Get(statsKey(userID, 2025, 3))
	assert.False(t, ok)
}
