package models

import (
	"sync"
	"time"

	"github.com/fitdash/fitfile"
	"github.com/google/uuid"
)

// DataStore keeps parsed activities in memory for the current process.
// Nothing is persisted; every upload is recomputed from scratch.
type DataStore struct {
	mu         sync.RWMutex
	activities map[string]*Activity
	recent     []string
}

var Store = NewDataStore()

func NewDataStore() *DataStore {
	return &DataStore{activities: make(map[string]*Activity)}
}

// Put stores a parsed series under a fresh id and returns the activity.
func (s *DataStore) Put(name string, series fitfile.Series, summary fitfile.Summary, hist fitfile.Histogram) *Activity {
	act := &Activity{
		ID:        uuid.NewString(),
		Name:      name,
		LoadedAt:  time.Now(),
		Series:    series,
		Summary:   summary,
		Histogram: hist,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.activities[act.ID] = act
	s.recent = append([]string{act.ID}, s.recent...)
	return act
}

// Get returns the activity for the id, or false when unknown.
func (s *DataStore) Get(id string) (*Activity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	act, ok := s.activities[id]
	return act, ok
}

// Recent lists the most recently loaded activities, newest first.
func (s *DataStore) Recent(limit int) []*Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.recent) {
		limit = len(s.recent)
	}
	out := make([]*Activity, 0, limit)
	for _, id := range s.recent[:limit] {
		if act, ok := s.activities[id]; ok {
			out = append(out, act)
		}
	}
	return out
}
