package ledger

import (
	"context"
	"sort"
	"sync"
	"time"

	"gamehall/models"
)

// MemoryStore is the in-memory Store used when no database is configured.
// A single mutex serializes read-modify-write cycles so concurrent credits
// and debits never lose updates, and leaderboard readers get a snapshot
// copy rather than live map state.
type MemoryStore struct {
	mu             sync.RWMutex
	entries        map[string]*models.LedgerEntry
	order          []string // player IDs in first-seen order, for stable ties
	initialBalance int64
}

// NewMemoryStore creates an empty in-memory ledger store. New entries start
// at initialBalance before their first delta is applied.
func NewMemoryStore(initialBalance int64) *MemoryStore {
	return &MemoryStore{
		entries:        make(map[string]*models.LedgerEntry),
		initialBalance: initialBalance,
	}
}

func (s *MemoryStore) GetBalance(ctx context.Context, playerID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if entry, ok := s.entries[playerID]; ok {
		return entry.Balance, nil
	}
	return s.initialBalance, nil
}

func (s *MemoryStore) AdjustBalance(ctx context.Context, player models.Player, delta int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[player.ID]
	if !ok {
		entry = &models.LedgerEntry{
			PlayerID:  player.ID,
			Name:      player.Name,
			Balance:   s.initialBalance,
			CreatedAt: time.Now(),
		}
		s.entries[player.ID] = entry
		s.order = append(s.order, player.ID)
	}
	if player.Name != "" {
		entry.Name = player.Name
	}
	entry.Balance += delta
	return entry.Balance, nil
}

func (s *MemoryStore) Leaderboard(ctx context.Context) ([]*models.LedgerEntry, error) {
	s.mu.RLock()
	snapshot := make([]*models.LedgerEntry, 0, len(s.order))
	for _, id := range s.order {
		copied := *s.entries[id]
		snapshot = append(snapshot, &copied)
	}
	s.mu.RUnlock()

	sort.SliceStable(snapshot, func(i, j int) bool {
		return snapshot[i].Balance > snapshot[j].Balance
	})
	return snapshot, nil
}
