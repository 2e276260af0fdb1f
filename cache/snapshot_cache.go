package snapshot_cache

import (
	"sync"
	"time"

	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/models"
)

// TTL matches the original dashboard's 5-minute revalidation interval.
const TTL = 5 * time.Minute

// ── Snapshot cache ───────────────────────────────────────────────────────────
// One process-wide entry holding the last Airtable snapshot. Every
// aggregation endpoint reads through this; the refresh endpoint invalidates.

type entry struct {
	data      *models.DashboardData
	fetchedAt time.Time
}

var (
	mu    sync.RWMutex
	cache *entry
)

func Get() (*models.DashboardData, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if cache != nil && time.Since(cache.fetchedAt) < TTL {
		return cache.data, true
	}
	return nil, false
}

func Set(data *models.DashboardData) {
	mu.Lock()
	defer mu.Unlock()
	cache = &entry{data: data, fetchedAt: time.Now()}
}

// Previous returns the last stored snapshot even when expired; the alert
// detector compares against it on refresh.
func Previous() (*models.DashboardData, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if cache != nil {
		return cache.data, true
	}
	return nil, false
}

func Invalidate() {
	mu.Lock()
	cache = nil
	mu.Unlock()
}
