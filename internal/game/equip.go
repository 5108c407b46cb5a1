package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/lufiasha/botdiscord/internal/domain"
	"github.com/lufiasha/botdiscord/internal/repository"
)

// Equip puts an item into its slot. The item may be named by id or by
// display name. Ownership is not checked, matching the original rules.
func (s *service) Equip(ctx context.Context, userID, username, itemName string) (string, error) {
	if _, err := s.ensurePlayer(ctx, userID, username); err != nil {
		return "", err
	}

	if strings.TrimSpace(itemName) == "" {
		return MsgEquipUsage, nil
	}

	item, ok := s.catalog.Resolve(itemName)
	if !ok {
		return MsgUnknownItem, nil
	}
	if !item.Type.IsEquippable() {
		return MsgNotEquippable, nil
	}
	slot := domain.SlotForItemType(item.Type)

	err := s.repo.WithPlayerLock(ctx, userID, func(ctx context.Context, tx repository.PlayerTx) error {
		return tx.SetEquipmentSlot(ctx, userID, slot, item.ID)
	})
	if err != nil {
		return "", fmt.Errorf("equip failed: %w", err)
	}

	return fmt.Sprintf("✅ Экипировано: %s (%s).", item.Name, slotLabel(slot)), nil
}

func slotLabel(slot string) string {
	switch slot {
	case domain.SlotWeapon:
		return "оружие"
	case domain.SlotArmor:
		return "броня"
	default:
		return slot
	}
}
