package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lufiasha/botdiscord/internal/domain"
)

func TestHunt(t *testing.T) {
	ctx := context.Background()

	t.Run("grants the mob's xp and gold", func(t *testing.T) {
		// Mob 0 (Тень в углу, 10/5), drop roll misses.
		rng := &scriptedRand{ints: []int{0}, floats: []float64{0.99}}
		svc, repo := newTestService(t, rng, Config{})

		msg, err := svc.Hunt(ctx, "u1", "Лу")
		require.NoError(t, err)

		assert.Contains(t, msg, "Тень в углу")
		assert.Contains(t, msg, "+10 опыта")
		assert.Contains(t, msg, "+5 золота")

		p := repo.Players["u1"]
		assert.Equal(t, 10, p.XP)
		assert.Equal(t, 5, p.Gold)
		assert.Empty(t, repo.Inventory["u1"])
	})

	t.Run("successful drop roll adds the item", func(t *testing.T) {
		// Mob 1 (Шёпот за стеной), drop hits, drop index 1 -> loot_box.
		rng := &scriptedRand{ints: []int{1, 1}, floats: []float64{0.1}}
		svc, repo := newTestService(t, rng, Config{})

		msg, err := svc.Hunt(ctx, "u1", "Лу")
		require.NoError(t, err)

		assert.Contains(t, msg, "Добыча")
		assert.Contains(t, msg, "Сундук воспоминаний")
		assert.Equal(t, 1, repo.Inventory["u1"][domain.ItemLootBox])
	})

	t.Run("crossing an xp threshold raises the level", func(t *testing.T) {
		rng := &scriptedRand{ints: []int{2}, floats: []float64{0.99}}
		svc, repo := newTestService(t, rng, Config{})

		_, err := svc.ensurePlayer(ctx, "u1", "Лу")
		require.NoError(t, err)
		xp := 90
		require.NoError(t, repo.UpdatePlayer(ctx, "u1", domain.PlayerPatch{XP: &xp}))

		// Mob 2 grants 25 xp: 90 -> 115, level 2.
		msg, err := svc.Hunt(ctx, "u1", "Лу")
		require.NoError(t, err)

		assert.Contains(t, msg, "Новый уровень: 2")
		assert.Equal(t, 2, repo.Players["u1"].Level)
		assert.Equal(t, 115, repo.Players["u1"].XP)
	})

	t.Run("runs under the per-player lock", func(t *testing.T) {
		rng := &scriptedRand{ints: []int{0}, floats: []float64{0.99}}
		svc, repo := newTestService(t, rng, Config{})

		_, err := svc.Hunt(ctx, "u1", "Лу")
		require.NoError(t, err)
		assert.Equal(t, 1, repo.LockCalls)
	})
}
