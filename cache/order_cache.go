package order_cache

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/martpe-org/martpeApp-sub003/models"
)

const TTL = 2 * time.Minute

// ── Order history cache ──────────────────────────────────────────────────────
// Keyed per user+page+size. Invalidated wholesale for a user when an order
// mutates (cancel), so the next list fetch goes upstream.

type entry struct {
	data      models.OrderListResponse
	fetchedAt time.Time
}

var (
	mu      sync.RWMutex
	entries = map[string]*entry{}
)

func key(userID string, page, size int) string {
	return userID + ":" + strconv.Itoa(page) + ":" + strconv.Itoa(size)
}

func Get(userID string, page, size int) (models.OrderListResponse, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := entries[key(userID, page, size)]
	if ok && time.Since(e.fetchedAt) < TTL {
		return e.data, true
	}
	return models.OrderListResponse{}, false
}

func Set(userID string, page, size int, data models.OrderListResponse) {
	mu.Lock()
	defer mu.Unlock()
	entries[key(userID, page, size)] = &entry{data: data, fetchedAt: time.Now()}
}

// Invalidate drops every cached page for the user.
func Invalidate(userID string) {
	mu.Lock()
	defer mu.Unlock()
	for k := range entries {
		if strings.HasPrefix(k, userID+":") {
			delete(entries, k)
		}
	}
}
