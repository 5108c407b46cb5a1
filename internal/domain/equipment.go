package domain

// Equipment holds a player's two mutually exclusive slots. An empty
// string means the slot is vacant; otherwise it is an item id whose type
// matches the slot.
type Equipment struct {
	UserID string `json:"user_id"`
	Weapon string `json:"weapon,omitempty"`
	Armor  string `json:"armor,omitempty"`
}

// Equipment slot names, matching the item types allowed in them.
const (
	SlotWeapon = "weapon"
	SlotArmor  = "armor"
)

// SlotForItemType maps an equippable item type to its slot name.
// Returns "" for non-equippable types.
func SlotForItemType(t ItemType) string {
	switch t {
	case ItemTypeWeapon:
		return SlotWeapon
	case ItemTypeArmor:
		return SlotArmor
	default:
		return ""
	}
}
