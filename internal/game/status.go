package game

import (
	"context"
	"fmt"

	"github.com/lufiasha/botdiscord/internal/stats"
)

func (s *service) Status(ctx context.Context, userID, username string) (string, error) {
	player, err := s.ensurePlayer(ctx, userID, username)
	if err != nil {
		return "", err
	}

	equipment, err := s.repo.GetEquipment(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to get equipment: %w", err)
	}

	combat := stats.Resolve(player, equipment, s.catalog)

	weapon := s.slotName(equipment.Weapon)
	armor := s.slotName(equipment.Armor)

	return fmt.Sprintf(
		"🌀 %s — уровень %d\n🧠 Рассудок: %d/%d\n✨ Опыт: %d\n💰 Золото: %d\n⚔️ Атака: %d | 🛡️ Защита: %d\n🗡️ Оружие: %s | 🥋 Броня: %s",
		player.Username, player.Level,
		player.Sanity, player.MaxSanity,
		player.XP, player.Gold,
		combat.Attack, combat.Defense,
		weapon, armor,
	), nil
}

// slotName resolves an equipped item id to its display name, "—" for an
// empty slot.
func (s *service) slotName(itemID string) string {
	if itemID == "" {
		return "—"
	}
	if item, ok := s.catalog.Item(itemID); ok {
		return item.Name
	}
	return itemID
}
