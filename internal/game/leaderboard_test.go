package game

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lufiasha/botdiscord/internal/domain"
)

func seedPlayers(t *testing.T, svc *service, repo *FakeRepository, xp ...int) {
	t.Helper()
	ctx := context.Background()
	for i, v := range xp {
		id := fmt.Sprintf("u%d", i+1)
		_, err := svc.ensurePlayer(ctx, id, fmt.Sprintf("Игрок-%d", i+1))
		require.NoError(t, err)
		v := v
		level := domain.LevelForXP(v)
		require.NoError(t, repo.UpdatePlayer(ctx, id, domain.PlayerPatch{XP: &v, Level: &level}))
	}
}

func TestLeaderboard(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		svc, _ := newTestService(t, &scriptedRand{}, Config{})
		msg, err := svc.Leaderboard(ctx)
		require.NoError(t, err)
		assert.Equal(t, MsgLeaderboardEmpty, msg)
	})

	t.Run("caps at five and orders by xp", func(t *testing.T) {
		svc, repo := newTestService(t, &scriptedRand{}, Config{})
		seedPlayers(t, svc, repo, 10, 500, 250, 40, 999, 120, 3)

		entries, err := svc.TopPlayers(ctx)
		require.NoError(t, err)
		require.Len(t, entries, domain.LeaderboardLimit)

		for i := 1; i < len(entries); i++ {
			assert.GreaterOrEqual(t, entries[i-1].XP, entries[i].XP)
			assert.Equal(t, i+1, entries[i].Rank)
		}
		assert.Equal(t, "Игрок-5", entries[0].Username)
		assert.Equal(t, 999, entries[0].XP)
	})

	t.Run("ties break by user id", func(t *testing.T) {
		svc, repo := newTestService(t, &scriptedRand{}, Config{})
		seedPlayers(t, svc, repo, 100, 100, 100)

		entries, err := svc.TopPlayers(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "Игрок-1", entries[0].Username)
		assert.Equal(t, "Игрок-2", entries[1].Username)
		assert.Equal(t, "Игрок-3", entries[2].Username)
	})

	t.Run("reading twice changes nothing", func(t *testing.T) {
		svc, repo := newTestService(t, &scriptedRand{}, Config{})
		seedPlayers(t, svc, repo, 50, 70)

		first, err := svc.Leaderboard(ctx)
		require.NoError(t, err)
		second, err := svc.Leaderboard(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, 0, repo.LockCalls)
	})
}

func TestInventory(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves display names", func(t *testing.T) {
		svc, repo := newTestService(t, &scriptedRand{}, Config{})
		_, err := svc.ensurePlayer(ctx, "u1", "Лу")
		require.NoError(t, err)
		require.NoError(t, repo.AddItem(ctx, "u1", "iron_sword", 2))
		require.NoError(t, repo.AddItem(ctx, "u1", "calming_tea", 1))

		entries, err := svc.Inventory(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, InventoryEntry{Name: "Успокаивающий чай", Quantity: 1}, entries[0])
		assert.Equal(t, InventoryEntry{Name: "Железный меч", Quantity: 2}, entries[1])
	})

	t.Run("empty user id is rejected", func(t *testing.T) {
		svc, _ := newTestService(t, &scriptedRand{}, Config{})
		_, err := svc.Inventory(ctx, "")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
