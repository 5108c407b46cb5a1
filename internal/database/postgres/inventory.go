package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lufiasha/botdiscord/internal/domain"
)

func (q queries) GetInventory(ctx context.Context, userID string) ([]domain.InventoryItem, error) {
	rows, err := q.db.Query(ctx, SQLSelectInventory, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		var item domain.InventoryItem
		if err := rows.Scan(&item.ItemID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan inventory row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inventory rows: %w", err)
	}
	return items, nil
}

func (q queries) GetItemCount(ctx context.Context, userID, itemID string) (int, error) {
	var count int
	err := q.db.QueryRow(ctx, SQLSelectItemCount, userID, itemID).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get item count: %w", err)
	}
	return count, nil
}

// AddItem atomically adjusts a per-(user, item) counter. Increments
// create the row if absent; decrements that would go below zero fail
// with domain.ErrInsufficientQuantity and leave the row untouched.
func (q queries) AddItem(ctx context.Context, userID, itemID string, delta int) error {
	if delta == 0 {
		return nil
	}

	if delta > 0 {
		if _, err := q.db.Exec(ctx, SQLIncrementItem, userID, itemID, delta); err != nil {
			return fmt.Errorf("failed to increment item: %w", err)
		}
		return nil
	}

	tag, err := q.db.Exec(ctx, SQLDecrementItem, userID, itemID, delta)
	if err != nil {
		return fmt.Errorf("failed to decrement item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientQuantity
	}
	return nil
}
