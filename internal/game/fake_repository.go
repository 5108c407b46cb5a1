package game

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/lufiasha/botdiscord/internal/domain"
	"github.com/lufiasha/botdiscord/internal/repository"
)

// FakeRepository is an in-memory repository.Player for tests.
type FakeRepository struct {
	Players   map[string]*domain.Player
	Equipment map[string]*domain.Equipment
	Inventory map[string]map[string]int

	// LockCalls counts WithPlayerLock invocations.
	LockCalls int

	// FailWith, when set, is returned by every method.
	FailWith error

	now func() time.Time
}

// NewFakeRepository creates an empty fake store.
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		Players:   make(map[string]*domain.Player),
		Equipment: make(map[string]*domain.Equipment),
		Inventory: make(map[string]map[string]int),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (f *FakeRepository) EnsurePlayer(ctx context.Context, userID, username string) (*domain.Player, error) {
	if f.FailWith != nil {
		return nil, f.FailWith
	}
	if p, ok := f.Players[userID]; ok {
		p.Username = username
		cp := *p
		return &cp, nil
	}
	now := f.now()
	p := &domain.Player{
		UserID:    userID,
		Username:  username,
		Level:     domain.MinLevel,
		XP:        0,
		Gold:      0,
		Sanity:    domain.DefaultSanity,
		MaxSanity: domain.DefaultMaxSanity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.Players[userID] = p
	f.Equipment[userID] = &domain.Equipment{UserID: userID}
	cp := *p
	return &cp, nil
}

func (f *FakeRepository) GetPlayer(ctx context.Context, userID string) (*domain.Player, error) {
	if f.FailWith != nil {
		return nil, f.FailWith
	}
	p, ok := f.Players[userID]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *FakeRepository) UpdatePlayer(ctx context.Context, userID string, patch domain.PlayerPatch) error {
	if f.FailWith != nil {
		return f.FailWith
	}
	p, ok := f.Players[userID]
	if !ok {
		return domain.ErrPlayerNotFound
	}
	if patch.Username != nil {
		p.Username = *patch.Username
	}
	if patch.Level != nil {
		p.Level = *patch.Level
	}
	if patch.XP != nil {
		p.XP = *patch.XP
	}
	if patch.Gold != nil {
		p.Gold = *patch.Gold
	}
	if patch.Sanity != nil {
		p.Sanity = *patch.Sanity
	}
	if patch.MaxSanity != nil {
		p.MaxSanity = *patch.MaxSanity
	}
	if patch.LastMeditation != nil {
		t := *patch.LastMeditation
		p.LastMeditation = &t
	}
	if patch.LastBossFight != nil {
		t := *patch.LastBossFight
		p.LastBossFight = &t
	}
	p.UpdatedAt = f.now()
	return nil
}

func (f *FakeRepository) GetEquipment(ctx context.Context, userID string) (*domain.Equipment, error) {
	if f.FailWith != nil {
		return nil, f.FailWith
	}
	eq, ok := f.Equipment[userID]
	if !ok {
		return &domain.Equipment{UserID: userID}, nil
	}
	cp := *eq
	return &cp, nil
}

func (f *FakeRepository) SetEquipmentSlot(ctx context.Context, userID, slot, itemID string) error {
	if f.FailWith != nil {
		return f.FailWith
	}
	eq, ok := f.Equipment[userID]
	if !ok {
		eq = &domain.Equipment{UserID: userID}
		f.Equipment[userID] = eq
	}
	switch slot {
	case domain.SlotWeapon:
		eq.Weapon = itemID
	case domain.SlotArmor:
		eq.Armor = itemID
	default:
		return fmt.Errorf("%w: unknown slot %q", domain.ErrInvalidInput, slot)
	}
	return nil
}

func (f *FakeRepository) GetInventory(ctx context.Context, userID string) ([]domain.InventoryItem, error) {
	if f.FailWith != nil {
		return nil, f.FailWith
	}
	items := make([]domain.InventoryItem, 0, len(f.Inventory[userID]))
	for id, qty := range f.Inventory[userID] {
		if qty > 0 {
			items = append(items, domain.InventoryItem{ItemID: id, Quantity: qty})
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ItemID < items[j].ItemID })
	return items, nil
}

func (f *FakeRepository) GetItemCount(ctx context.Context, userID, itemID string) (int, error) {
	if f.FailWith != nil {
		return 0, f.FailWith
	}
	return f.Inventory[userID][itemID], nil
}

func (f *FakeRepository) AddItem(ctx context.Context, userID, itemID string, delta int) error {
	if f.FailWith != nil {
		return f.FailWith
	}
	if f.Inventory[userID] == nil {
		f.Inventory[userID] = make(map[string]int)
	}
	next := f.Inventory[userID][itemID] + delta
	if next < 0 {
		return domain.ErrInsufficientQuantity
	}
	f.Inventory[userID][itemID] = next
	return nil
}

func (f *FakeRepository) TopPlayersByXP(ctx context.Context, limit int) ([]domain.Player, error) {
	if f.FailWith != nil {
		return nil, f.FailWith
	}
	players := make([]domain.Player, 0, len(f.Players))
	for _, p := range f.Players {
		players = append(players, *p)
	}
	sort.Slice(players, func(i, j int) bool {
		if players[i].XP != players[j].XP {
			return players[i].XP > players[j].XP
		}
		return players[i].UserID < players[j].UserID
	})
	if len(players) > limit {
		players = players[:limit]
	}
	return players, nil
}

// WithPlayerLock runs fn against the store itself. On error the previous
// state is restored, mirroring the transaction rollback of the real store.
func (f *FakeRepository) WithPlayerLock(ctx context.Context, userID string, fn func(ctx context.Context, tx repository.PlayerTx) error) error {
	if f.FailWith != nil {
		return f.FailWith
	}
	f.LockCalls++

	players := f.snapshotPlayers()
	equipment := f.snapshotEquipment()
	inventory := f.snapshotInventory()

	if err := fn(ctx, f); err != nil {
		f.Players = players
		f.Equipment = equipment
		f.Inventory = inventory
		return err
	}
	return nil
}

func (f *FakeRepository) snapshotPlayers() map[string]*domain.Player {
	out := make(map[string]*domain.Player, len(f.Players))
	for id, p := range f.Players {
		cp := *p
		out[id] = &cp
	}
	return out
}

func (f *FakeRepository) snapshotEquipment() map[string]*domain.Equipment {
	out := make(map[string]*domain.Equipment, len(f.Equipment))
	for id, eq := range f.Equipment {
		cp := *eq
		out[id] = &cp
	}
	return out
}

func (f *FakeRepository) snapshotInventory() map[string]map[string]int {
	out := make(map[string]map[string]int, len(f.Inventory))
	for id, items := range f.Inventory {
		cp := make(map[string]int, len(items))
		for item, qty := range items {
			cp[item] = qty
		}
		out[id] = cp
	}
	return out
}
