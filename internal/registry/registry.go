// Package registry keeps serve-session comparison results in memory.
// Results live only as long as the process; nothing is persisted.
package registry

import (
	"sync"

	"github.com/google/uuid"

	"bodeview/internal/compare"
)

// Store is a mutex-guarded registry of finished comparison runs.
type Store struct {
	mu         sync.RWMutex
	gains      map[uuid.UUID]*compare.GainResult
	rejections map[uuid.UUID]*compare.RejectionResult
}

// NewStore creates an empty registry.
func NewStore() *Store {
	return &Store{
		gains:      make(map[uuid.UUID]*compare.GainResult),
		rejections: make(map[uuid.UUID]*compare.RejectionResult),
	}
}

// PutGain records a gain comparison result under its ID.
func (s *Store) PutGain(res *compare.GainResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gains[res.ID] = res
}

// Gain returns the gain comparison with the given ID.
func (s *Store) Gain(id uuid.UUID) (*compare.GainResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.gains[id]
	return res, ok
}

// PutRejection records a CMRR comparison result under its ID.
func (s *Store) PutRejection(res *compare.RejectionResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejections[res.ID] = res
}

// Rejection returns the CMRR comparison with the given ID.
func (s *Store) Rejection(id uuid.UUID) (*compare.RejectionResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.rejections[id]
	return res, ok
}
