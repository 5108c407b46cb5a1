// Package stats derives effective combat stats from a player's level and
// equipped items.
package stats

import "github.com/lufiasha/botdiscord/internal/domain"

// MinStat is the floor applied to each axis.
const MinStat = 1

// LevelBonusDivisor controls how fast the level bonus grows: both axes
// gain +1 per five levels.
const LevelBonusDivisor = 5

// ItemLookup resolves an item id to its catalog entry.
type ItemLookup interface {
	Item(id string) (domain.Item, bool)
}

// Resolve computes attack/defense for a player given their equipment.
// Missing or unknown equipped items contribute nothing.
func Resolve(player *domain.Player, equipment *domain.Equipment, items ItemLookup) domain.CombatStats {
	base := player.Level / LevelBonusDivisor
	attack := base
	defense := base

	if equipment != nil {
		if equipment.Weapon != "" {
			if item, ok := items.Item(equipment.Weapon); ok {
				attack += item.Attack
			}
		}
		if equipment.Armor != "" {
			if item, ok := items.Item(equipment.Armor); ok {
				defense += item.Defense
			}
		}
	}

	if attack < MinStat {
		attack = MinStat
	}
	if defense < MinStat {
		defense = MinStat
	}

	return domain.CombatStats{Attack: attack, Defense: defense}
}
