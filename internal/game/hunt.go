package game

import (
	"context"
	"fmt"

	"github.com/lufiasha/botdiscord/internal/domain"
	"github.com/lufiasha/botdiscord/internal/repository"
)

func (s *service) Hunt(ctx context.Context, userID, username string) (string, error) {
	if _, err := s.ensurePlayer(ctx, userID, username); err != nil {
		return "", err
	}

	mobs := s.catalog.Mobs()
	mob := mobs[s.rng.Intn(len(mobs))]
	drop := s.rollDrop(mob.Drops, s.cfg.HuntDropChance)

	var leveledTo int
	err := s.repo.WithPlayerLock(ctx, userID, func(ctx context.Context, tx repository.PlayerTx) error {
		player, err := tx.GetPlayer(ctx, userID)
		if err != nil {
			return err
		}

		xp := player.XP + mob.XP
		gold := player.Gold + mob.Gold
		patch := domain.PlayerPatch{XP: &xp, Gold: &gold}
		if level := domain.LevelForXP(xp); level != player.Level {
			patch.Level = &level
			leveledTo = level
		}
		if err := tx.UpdatePlayer(ctx, userID, patch); err != nil {
			return err
		}

		if drop != nil {
			if err := tx.AddItem(ctx, userID, drop.ID, 1); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("hunt failed: %w", err)
	}

	msg := fmt.Sprintf("⚔️ Ты одолел: %s! +%d опыта, +%d золота.", mob.Name, mob.XP, mob.Gold)
	if drop != nil {
		msg += fmt.Sprintf("\n🎁 Добыча: %s", drop.Name)
	}
	if leveledTo > 0 {
		msg += fmt.Sprintf("\n📈 Новый уровень: %d!", leveledTo)
	}
	return msg, nil
}

// rollDrop rolls the drop chance and, on success, picks one item uniformly
// from the drop table. Consumes at most one Float64 and one Intn call.
func (s *service) rollDrop(drops []string, chance float64) *domain.Item {
	if len(drops) == 0 {
		return nil
	}
	if s.rng.Float64() >= chance {
		return nil
	}
	id := drops[s.rng.Intn(len(drops))]
	if item, ok := s.catalog.Item(id); ok {
		return &item
	}
	return nil
}
