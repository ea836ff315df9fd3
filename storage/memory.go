package storage

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/martpe-org/martpeApp-sub003/models"
)

// Memory is a map-backed bridge for tests and redis-less development. It
// stores marshaled JSON so loads exercise the same decode path as the real
// backends.
type Memory struct {
	mu sync.RWMutex
	m  map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{m: make(map[string][]byte)}
}

func (s *Memory) SaveCart(_ context.Context, userID string, carts []models.Cart) error {
	b, err := json.Marshal(Sanitize(carts))
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.m[cartKey(userID)] = b
	s.mu.Unlock()
	return nil
}

func (s *Memory) LoadCart(_ context.Context, userID string) ([]models.Cart, error) {
	s.mu.RLock()
	b, ok := s.m[cartKey(userID)]
	s.mu.RUnlock()
	if !ok {
		return []models.Cart{}, nil
	}
	var carts []models.Cart
	if err := json.Unmarshal(b, &carts); err != nil {
		return []models.Cart{}, nil
	}
	return Sanitize(carts), nil
}
