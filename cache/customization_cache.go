package customization_cache

import (
	"sync"
	"time"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
)

const TTL = 5 * time.Minute

// ── Singleton customization cache ────────────────────────────────────────────
// The settings record is read on every page load; the admin screen saves it
// rarely. Reads come from here, saves call Invalidate.

type entry struct {
	settings  models.Customization
	fetchedAt time.Time
}

var (
	mu     sync.RWMutex
	cached *entry
)

func Get() (models.Customization, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if cached != nil && time.Since(cached.fetchedAt) < TTL {
		return cached.settings, true
	}
	return models.Customization{}, false
}

func Set(settings models.Customization) {
	mu.Lock()
	defer mu.Unlock()
	cached = &entry{settings: settings, fetchedAt: time.Now()}
}

// Invalidate drops the cached record (call on every admin save).
func Invalidate() {
	mu.Lock()
	cached = nil
	mu.Unlock()
}
