// Package postgres implements the player store on PostgreSQL via pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lufiasha/botdiscord/internal/domain"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx so the same
// query methods serve plain calls and locked transaction scopes.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PlayerRepository implements repository.Player for PostgreSQL.
type PlayerRepository struct {
	db *pgxpool.Pool
	queries
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db, queries: queries{db: db}}
}

// queries holds the store operations shared between the pool-backed
// repository and the transaction scope.
type queries struct {
	db querier
}

// EnsurePlayer creates the player with defaults (plus the paired empty
// equipment row) if absent, and refreshes the username otherwise.
func (r *PlayerRepository) EnsurePlayer(ctx context.Context, userID, username string) (*domain.Player, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	player, err := scanPlayer(tx.QueryRow(ctx, SQLUpsertPlayer, userID, username))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert player: %w", err)
	}

	if _, err := tx.Exec(ctx, SQLEnsureEquipment, userID); err != nil {
		return nil, fmt.Errorf("failed to ensure equipment: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return player, nil
}

func (q queries) GetPlayer(ctx context.Context, userID string) (*domain.Player, error) {
	player, err := scanPlayer(q.db.QueryRow(ctx, SQLSelectPlayer, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

func (q queries) UpdatePlayer(ctx context.Context, userID string, patch domain.PlayerPatch) error {
	if patch.IsZero() {
		return nil
	}

	sets, args := buildPlayerPatch(patch)
	args = append(args, userID)
	query := fmt.Sprintf("UPDATE players SET %s, updated_at = NOW() WHERE user_id = $%d",
		strings.Join(sets, ", "), len(args))

	tag, err := q.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

func (q queries) GetEquipment(ctx context.Context, userID string) (*domain.Equipment, error) {
	var eq domain.Equipment
	err := q.db.QueryRow(ctx, SQLSelectEquipment, userID).Scan(&eq.UserID, &eq.Weapon, &eq.Armor)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}
	return &eq, nil
}

func (q queries) SetEquipmentSlot(ctx context.Context, userID, slot, itemID string) error {
	// Slot maps to a column name, so it must come from the fixed set.
	var query string
	switch slot {
	case domain.SlotWeapon:
		query = "UPDATE equipment SET weapon = $2, updated_at = NOW() WHERE user_id = $1"
	case domain.SlotArmor:
		query = "UPDATE equipment SET armor = $2, updated_at = NOW() WHERE user_id = $1"
	default:
		return fmt.Errorf("%w: unknown equipment slot %q", domain.ErrInvalidInput, slot)
	}

	tag, err := q.db.Exec(ctx, query, userID, itemID)
	if err != nil {
		return fmt.Errorf("failed to set equipment slot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

// TopPlayersByXP returns players ranked by xp descending, ties broken by
// user id for a stable order.
func (q queries) TopPlayersByXP(ctx context.Context, limit int) ([]domain.Player, error) {
	rows, err := q.db.Query(ctx, SQLTopPlayersByXP, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		players = append(players, *player)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leaderboard rows: %w", err)
	}
	return players, nil
}

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var p domain.Player
	err := row.Scan(&p.UserID, &p.Username, &p.Level, &p.XP, &p.Gold,
		&p.Sanity, &p.MaxSanity, &p.LastMeditation, &p.LastBossFight,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
