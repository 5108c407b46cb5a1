package game

import (
	"context"
	"fmt"

	"github.com/lufiasha/botdiscord/internal/cooldown"
	"github.com/lufiasha/botdiscord/internal/domain"
	"github.com/lufiasha/botdiscord/internal/repository"
)

func (s *service) Meditate(ctx context.Context, userID, username string) (string, error) {
	if _, err := s.ensurePlayer(ctx, userID, username); err != nil {
		return "", err
	}

	gate := cooldown.Gate{Window: s.cfg.MeditateCooldown}

	var msg string
	err := s.repo.WithPlayerLock(ctx, userID, func(ctx context.Context, tx repository.PlayerTx) error {
		player, err := tx.GetPlayer(ctx, userID)
		if err != nil {
			return err
		}

		if closed, remaining := gate.Check(player.LastMeditation, s.now()); closed {
			msg = fmt.Sprintf("🧘 Разум ещё спокоен. Следующая медитация через %d мин.",
				cooldown.RemainingMinutes(remaining))
			return nil
		}

		gold := player.Gold + s.cfg.MeditateReward
		meditated := s.now()
		patch := domain.PlayerPatch{Gold: &gold, LastMeditation: &meditated}
		if err := tx.UpdatePlayer(ctx, userID, patch); err != nil {
			return err
		}

		msg = fmt.Sprintf("🧘 Ты погрузился в тишину. +%d золота.", s.cfg.MeditateReward)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("meditation failed: %w", err)
	}
	return msg, nil
}
