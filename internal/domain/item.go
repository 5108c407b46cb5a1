package domain

import "time"

// ItemType categorizes catalog items. Only weapons and armor can occupy
// an equipment slot.
type ItemType string

const (
	ItemTypeWeapon     ItemType = "weapon"
	ItemTypeArmor      ItemType = "armor"
	ItemTypeConsumable ItemType = "consumable"
	ItemTypeBox        ItemType = "box"
)

// IsEquippable reports whether items of this type fit an equipment slot.
func (t ItemType) IsEquippable() bool {
	return t == ItemTypeWeapon || t == ItemTypeArmor
}

// Item is an immutable catalog entry. Attack is meaningful for weapons,
// Defense for armor, Effect for consumables; the rest stay zero-valued.
type Item struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Type    ItemType `json:"type"`
	Attack  int      `json:"attack,omitempty"`
	Defense int      `json:"defense,omitempty"`
	Effect  string   `json:"effect,omitempty"`
}

// Mob is an immutable catalog entry for a huntable creature.
type Mob struct {
	Name  string   `json:"name"`
	XP    int      `json:"xp"`
	Gold  int      `json:"gold"`
	Drops []string `json:"drops"`
}

// Boss extends the mob shape with a level requirement and a per-boss
// cooldown between fights.
type Boss struct {
	Mob
	LevelReq    int `json:"level_req"`
	CooldownMin int `json:"cooldown_min"`
}

// Cooldown returns the boss fight cooldown as a duration.
func (b Boss) Cooldown() time.Duration {
	return time.Duration(b.CooldownMin) * time.Minute
}
