// Package session holds per-player, per-game mutable state: an in-progress
// blackjack hand or a pending rock-paper-scissors challenge.
package session

import (
	"sync"

	"gamehall/models"
)

// State is the tagged session variant for one (player, game) pair. Nil
// fields mean no state; clearing a field resets that game's session.
type State struct {
	Hand      *models.Hand
	Challenge *models.PendingChallenge
}

// Empty reports whether the session carries no state.
func (s *State) Empty() bool {
	return s.Hand == nil && s.Challenge == nil
}

type key struct {
	playerID string
	game     models.GameKind
}

type entry struct {
	mu    sync.Mutex
	state State
}

// Store keys session state by (player, game). Commands for the same pair
// are serialized through a per-entry lock; different pairs proceed fully in
// parallel.
type Store struct {
	mu      sync.Mutex
	entries map[key]*entry
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{entries: make(map[key]*entry)}
}

func (s *Store) entryFor(playerID string, game models.GameKind) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key{playerID: playerID, game: game}
	e, ok := s.entries[k]
	if !ok {
		e = &entry{}
		s.entries[k] = e
	}
	return e
}

// WithSession runs fn with exclusive access to the player's session state
// for the given game, creating an empty session on first use. Mutations fn
// makes to the state are retained. Two rapid commands from the same player
// for the same game never observe each other's partial updates.
func (s *Store) WithSession(playerID string, game models.GameKind, fn func(*State) error) error {
	e := s.entryFor(playerID, game)
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(&e.state)
}

// Clear drops all session state for the (player, game) pair.
func (s *Store) Clear(playerID string, game models.GameKind) {
	e := s.entryFor(playerID, game)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = State{}
}
