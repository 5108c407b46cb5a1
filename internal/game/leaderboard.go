package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/lufiasha/botdiscord/internal/domain"
)

func (s *service) TopPlayers(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	players, err := s.repo.TopPlayersByXP(ctx, domain.LeaderboardLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top players: %w", err)
	}

	entries := make([]domain.LeaderboardEntry, 0, len(players))
	for i, p := range players {
		entries = append(entries, domain.LeaderboardEntry{
			Rank:     i + 1,
			Username: p.Username,
			Level:    p.Level,
			XP:       p.XP,
		})
	}
	return entries, nil
}

func (s *service) Leaderboard(ctx context.Context) (string, error) {
	entries, err := s.TopPlayers(ctx)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return MsgLeaderboardEmpty, nil
	}

	var b strings.Builder
	b.WriteString("🏆 Хроники подвала:")
	for _, e := range entries {
		fmt.Fprintf(&b, "\n%d. %s — ур. %d, %d опыта", e.Rank, e.Username, e.Level, e.XP)
	}
	return b.String(), nil
}

func (s *service) Inventory(ctx context.Context, userID string) ([]InventoryEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: empty user id", domain.ErrInvalidInput)
	}

	items, err := s.repo.GetInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}

	entries := make([]InventoryEntry, 0, len(items))
	for _, it := range items {
		name := it.ItemID
		if item, ok := s.catalog.Item(it.ItemID); ok {
			name = item.Name
		}
		entries = append(entries, InventoryEntry{Name: name, Quantity: it.Quantity})
	}
	return entries, nil
}
