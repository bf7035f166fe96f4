package repository

import (
	"context"
	"sync"
	"testing"

	"gamehall/models"
	"gamehall/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerRepository_GetBalance(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}
	testDB := testutil.SetupTestDatabase(t)
	repo := NewLedgerRepository(testDB.DB, 0)
	ctx := context.Background()

	t.Run("unseen player reads zero", func(t *testing.T) {
		balance, err := repo.GetBalance(ctx, "nobody")
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)
	})

	t.Run("read does not materialize a row", func(t *testing.T) {
		_, err := repo.GetBalance(ctx, "ghost")
		require.NoError(t, err)

		entries, err := repo.Leaderboard(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestLedgerRepository_AdjustBalance(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}
	testDB := testutil.SetupTestDatabase(t)
	repo := NewLedgerRepository(testDB.DB, 0)
	ctx := context.Background()
	alice := models.Player{ID: "1001", Name: "alice"}

	t.Run("creates entry on first adjustment", func(t *testing.T) {
		balance, err := repo.AdjustBalance(ctx, alice, 20)
		require.NoError(t, err)
		assert.Equal(t, int64(20), balance)
	})

	t.Run("accumulates deltas", func(t *testing.T) {
		balance, err := repo.AdjustBalance(ctx, alice, -5)
		require.NoError(t, err)
		assert.Equal(t, int64(15), balance)
	})

	t.Run("balance may go negative", func(t *testing.T) {
		balance, err := repo.AdjustBalance(ctx, alice, -100)
		require.NoError(t, err)
		assert.Equal(t, int64(-85), balance)
	})

	t.Run("concurrent adjustments never lose updates", func(t *testing.T) {
		bob := models.Player{ID: "1002", Name: "bob"}
		const workers = 10
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.AdjustBalance(ctx, bob, 1)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		balance, err := repo.GetBalance(ctx, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(workers), balance)
	})
}

func TestLedgerRepository_Leaderboard(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}
	testDB := testutil.SetupTestDatabase(t)
	repo := NewLedgerRepository(testDB.DB, 0)
	ctx := context.Background()

	_, err := repo.AdjustBalance(ctx, models.Player{ID: "1", Name: "low"}, 10)
	require.NoError(t, err)
	_, err = repo.AdjustBalance(ctx, models.Player{ID: "2", Name: "high"}, 100)
	require.NoError(t, err)
	_, err = repo.AdjustBalance(ctx, models.Player{ID: "3", Name: "mid"}, 50)
	require.NoError(t, err)

	entries, err := repo.Leaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "high", entries[0].Name)
	assert.Equal(t, "mid", entries[1].Name)
	assert.Equal(t, "low", entries[2].Name)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].Balance, entries[i].Balance)
	}
}
