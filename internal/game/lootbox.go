package game

import (
	"context"
	"fmt"

	"github.com/lufiasha/botdiscord/internal/domain"
	"github.com/lufiasha/botdiscord/internal/repository"
)

// Open consumes one loot box and grants a random item from the reward pool.
func (s *service) Open(ctx context.Context, userID, username string) (string, error) {
	if _, err := s.ensurePlayer(ctx, userID, username); err != nil {
		return "", err
	}

	pool := s.catalog.RewardPool()
	if len(pool) == 0 {
		return "", fmt.Errorf("reward pool is empty")
	}

	var msg string
	err := s.repo.WithPlayerLock(ctx, userID, func(ctx context.Context, tx repository.PlayerTx) error {
		count, err := tx.GetItemCount(ctx, userID, domain.ItemLootBox)
		if err != nil {
			return err
		}
		if count < 1 {
			msg = MsgNoLootBoxes
			return nil
		}

		rewardID := pool[s.rng.Intn(len(pool))]
		reward, ok := s.catalog.Item(rewardID)
		if !ok {
			return fmt.Errorf("reward %q is not in the catalog", rewardID)
		}

		if err := tx.AddItem(ctx, userID, domain.ItemLootBox, -1); err != nil {
			return err
		}
		if err := tx.AddItem(ctx, userID, reward.ID, 1); err != nil {
			return err
		}

		msg = fmt.Sprintf("🎁 Из Сундука воспоминаний выпало: %s!", reward.Name)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("open failed: %w", err)
	}
	return msg, nil
}
