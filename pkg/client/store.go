package client

import "sync"

// Store is the injectable state container holding the evaluations a client
// tracks. All mutations funnel through the store's mutex, so the poller's
// updates and the user's own submissions never race.
type Store struct {
	mu          sync.RWMutex
	evaluations []Evaluation
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add inserts a new evaluation at the front of the list, newest first.
func (s *Store) Add(evaluation Evaluation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evaluations = append([]Evaluation{evaluation}, s.evaluations...)
}

// Update applies a mutation to the evaluation with the given id. It reports
// whether the id was found.
func (s *Store) Update(id string, apply func(*Evaluation)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.evaluations {
		if s.evaluations[i].ID == id {
			apply(&s.evaluations[i])
			return true
		}
	}

	return false
}

// Get returns a copy of the evaluation with the given id.
func (s *Store) Get(id string) (Evaluation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, evaluation := range s.evaluations {
		if evaluation.ID == id {
			return evaluation, true
		}
	}

	return Evaluation{}, false
}

// List returns a copy of all tracked evaluations, newest first.
func (s *Store) List() []Evaluation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Evaluation, len(s.evaluations))
	copy(out, s.evaluations)
	return out
}

// Processing returns the ids of evaluations still awaiting a terminal state.
func (s *Store) Processing() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []string
	for _, evaluation := range s.evaluations {
		if evaluation.Status == StatusProcessing {
			ids = append(ids, evaluation.ID)
		}
	}

	return ids
}

// Reset drops all tracked evaluations (logout / teardown lifecycle).
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evaluations = nil
}
