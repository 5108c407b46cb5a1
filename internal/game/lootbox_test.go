package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lufiasha/botdiscord/internal/domain"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("no boxes", func(t *testing.T) {
		svc, repo := newTestService(t, &scriptedRand{}, Config{})

		msg, err := svc.Open(ctx, "u1", "Лу")
		require.NoError(t, err)
		assert.Equal(t, MsgNoLootBoxes, msg)
		assert.Empty(t, repo.Inventory["u1"])
	})

	t.Run("consumes one box and grants a pool item", func(t *testing.T) {
		// Pool index 1 -> mirror_shield.
		rng := &scriptedRand{ints: []int{1}}
		svc, repo := newTestService(t, rng, Config{})

		_, err := svc.ensurePlayer(ctx, "u1", "Лу")
		require.NoError(t, err)
		require.NoError(t, repo.AddItem(ctx, "u1", domain.ItemLootBox, 2))

		msg, err := svc.Open(ctx, "u1", "Лу")
		require.NoError(t, err)

		assert.Contains(t, msg, "Зеркальный щит")
		assert.Equal(t, 1, repo.Inventory["u1"][domain.ItemLootBox])
		assert.Equal(t, 1, repo.Inventory["u1"]["mirror_shield"])
	})

	t.Run("reward always comes from the pool", func(t *testing.T) {
		pool := map[string]bool{
			"iron_sword": true, "mirror_shield": true, "shadow_blade": true,
			"calming_tea": true, "memory_shard": true,
		}

		for i := 0; i < 5; i++ {
			rng := &scriptedRand{ints: []int{i}}
			svc, repo := newTestService(t, rng, Config{})

			_, err := svc.ensurePlayer(ctx, "u1", "Лу")
			require.NoError(t, err)
			require.NoError(t, repo.AddItem(ctx, "u1", domain.ItemLootBox, 1))

			_, err = svc.Open(ctx, "u1", "Лу")
			require.NoError(t, err)

			for id, qty := range repo.Inventory["u1"] {
				if id == domain.ItemLootBox {
					assert.Equal(t, 0, qty)
					continue
				}
				assert.True(t, pool[id], "reward %q is outside the pool", id)
			}
		}
	})

	t.Run("last box empties the stack", func(t *testing.T) {
		rng := &scriptedRand{ints: []int{0, 0}}
		svc, repo := newTestService(t, rng, Config{})

		_, err := svc.ensurePlayer(ctx, "u1", "Лу")
		require.NoError(t, err)
		require.NoError(t, repo.AddItem(ctx, "u1", domain.ItemLootBox, 1))

		_, err = svc.Open(ctx, "u1", "Лу")
		require.NoError(t, err)

		msg, err := svc.Open(ctx, "u1", "Лу")
		require.NoError(t, err)
		assert.Equal(t, MsgNoLootBoxes, msg)
	})
}
