package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lufiasha/botdiscord/internal/domain"
)

type fakeLookup map[string]domain.Item

func (f fakeLookup) Item(id string) (domain.Item, bool) {
	item, ok := f[id]
	return item, ok
}

func TestResolve(t *testing.T) {
	items := fakeLookup{
		"iron_sword":    {ID: "iron_sword", Type: domain.ItemTypeWeapon, Attack: 5},
		"mirror_shield": {ID: "mirror_shield", Type: domain.ItemTypeArmor, Defense: 7},
	}

	tests := []struct {
		name      string
		level     int
		equipment *domain.Equipment
		want      domain.CombatStats
	}{
		{
			name:      "bare level 1 floors at minimum",
			level:     1,
			equipment: &domain.Equipment{},
			want:      domain.CombatStats{Attack: 1, Defense: 1},
		},
		{
			name:      "nil equipment",
			level:     1,
			equipment: nil,
			want:      domain.CombatStats{Attack: 1, Defense: 1},
		},
		{
			name:      "level bonus every five levels",
			level:     10,
			equipment: &domain.Equipment{},
			want:      domain.CombatStats{Attack: 2, Defense: 2},
		},
		{
			name:      "weapon adds attack only",
			level:     1,
			equipment: &domain.Equipment{Weapon: "iron_sword"},
			want:      domain.CombatStats{Attack: 5, Defense: 1},
		},
		{
			name:      "full kit",
			level:     7,
			equipment: &domain.Equipment{Weapon: "iron_sword", Armor: "mirror_shield"},
			want:      domain.CombatStats{Attack: 6, Defense: 8},
		},
		{
			name:      "unknown equipped item contributes nothing",
			level:     1,
			equipment: &domain.Equipment{Weapon: "ghost_item"},
			want:      domain.CombatStats{Attack: 1, Defense: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := &domain.Player{Level: tt.level}
			assert.Equal(t, tt.want, Resolve(player, tt.equipment, items))
		})
	}
}
