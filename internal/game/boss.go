package game

import (
	"context"
	"fmt"

	"github.com/lufiasha/botdiscord/internal/cooldown"
	"github.com/lufiasha/botdiscord/internal/domain"
	"github.com/lufiasha/botdiscord/internal/repository"
)

func (s *service) Boss(ctx context.Context, userID, username string) (string, error) {
	if _, err := s.ensurePlayer(ctx, userID, username); err != nil {
		return "", err
	}

	// Eligibility and the cooldown read the player row, so the whole fight
	// runs under the per-player lock.
	var msg string
	err := s.repo.WithPlayerLock(ctx, userID, func(ctx context.Context, tx repository.PlayerTx) error {
		player, err := tx.GetPlayer(ctx, userID)
		if err != nil {
			return err
		}

		boss, ok := s.catalog.HardestEligibleBoss(player.Level)
		if !ok {
			msg = MsgBossNotReady
			return nil
		}

		gate := cooldown.Gate{Window: boss.Cooldown()}
		if closed, remaining := gate.Check(player.LastBossFight, s.now()); closed {
			msg = fmt.Sprintf("⏳ %s ещё помнит тебя. Возвращайся через %d мин.",
				boss.Name, cooldown.RemainingMinutes(remaining))
			return nil
		}

		drop := s.rollDrop(boss.Drops, s.cfg.BossDropChance)

		xp := player.XP + boss.XP
		gold := player.Gold + boss.Gold
		fought := s.now()
		patch := domain.PlayerPatch{XP: &xp, Gold: &gold, LastBossFight: &fought}
		leveledTo := 0
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

		msg = fmt.Sprintf("💀 %s повержен! +%d опыта, +%d золота.", boss.Name, boss.XP, boss.Gold)
		if drop != nil {
			msg += fmt.Sprintf("\n🎁 Трофей: %s", drop.Name)
		}
		if leveledTo > 0 {
			msg += fmt.Sprintf("\n📈 Новый уровень: %d!", leveledTo)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("boss fight failed: %w", err)
	}
	return msg, nil
}
