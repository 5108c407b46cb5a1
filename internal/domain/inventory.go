package domain

// InventoryItem is one per-(player, item) counter. Counts are never
// negative; a row with quantity 0 is logically absent.
type InventoryItem struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}
