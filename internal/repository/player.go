// Package repository defines the persistence interfaces the progression
// engine depends on. Implementations live in internal/database/postgres.
package repository

import (
	"context"

	"github.com/lufiasha/botdiscord/internal/domain"
)

// Player defines the player store: point lookups, partial updates and
// per-(user, item) inventory counters keyed by user id.
type Player interface {
	// EnsurePlayer creates the player (and their empty equipment record)
	// with defaults if absent, refreshes the username otherwise, and
	// returns the current row. Idempotent.
	EnsurePlayer(ctx context.Context, userID, username string) (*domain.Player, error)

	GetPlayer(ctx context.Context, userID string) (*domain.Player, error)
	UpdatePlayer(ctx context.Context, userID string, patch domain.PlayerPatch) error

	GetEquipment(ctx context.Context, userID string) (*domain.Equipment, error)
	SetEquipmentSlot(ctx context.Context, userID, slot, itemID string) error

	GetInventory(ctx context.Context, userID string) ([]domain.InventoryItem, error)
	GetItemCount(ctx context.Context, userID, itemID string) (int, error)
	// AddItem atomically increments a counter, creating it if absent.
	// A negative delta that would drive the count below zero fails with
	// domain.ErrInsufficientQuantity and changes nothing.
	AddItem(ctx context.Context, userID, itemID string, delta int) error

	TopPlayersByXP(ctx context.Context, limit int) ([]domain.Player, error)

	// WithPlayerLock runs fn under a per-user mutual exclusion scope so
	// one action's read-modify-write completes before the next begins.
	// fn's writes are applied atomically: if fn returns an error nothing
	// is persisted.
	WithPlayerLock(ctx context.Context, userID string, fn func(ctx context.Context, tx PlayerTx) error) error
}

// PlayerTx is the slice of the store available inside a per-user locked
// scope.
type PlayerTx interface {
	GetPlayer(ctx context.Context, userID string) (*domain.Player, error)
	UpdatePlayer(ctx context.Context, userID string, patch domain.PlayerPatch) error
	GetEquipment(ctx context.Context, userID string) (*domain.Equipment, error)
	SetEquipmentSlot(ctx context.Context, userID, slot, itemID string) error
	GetItemCount(ctx context.Context, userID, itemID string) (int, error)
	AddItem(ctx context.Context, userID, itemID string, delta int) error
}
