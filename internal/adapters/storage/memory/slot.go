package memory

import (
	"context"
	"strings"
	"sync"

	"vet-patient-tracker/internal/ports/slots"
)

// Slot guarda los valores en un map; se pierde al reiniciar (modo dev/tests).
type Slot struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewSlot() *Slot {
	return &Slot{values: make(map[string][]byte)}
}

func (s *Slot) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[strings.TrimSpace(key)]
	if !ok {
		return nil, slots.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *Slot) Put(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[strings.TrimSpace(key)] = append([]byte(nil), value...)
	return nil
}
