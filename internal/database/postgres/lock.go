package postgres

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/lufiasha/botdiscord/internal/logger"
	"github.com/lufiasha/botdiscord/internal/repository"
)

// WithPlayerLock runs fn inside a transaction holding a per-user advisory
// lock, so two actions for the same user serialize while actions for
// different users proceed in parallel. Advisory locks work even before
// any row for the user exists. The lock releases on commit or rollback.
func (r *PlayerRepository) WithPlayerLock(ctx context.Context, userID string, fn func(ctx context.Context, tx repository.PlayerTx) error) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	lockKey := hashPlayerID(userID)
	if _, err := tx.Exec(ctx, SQLAdvisoryLock, lockKey); err != nil {
		return fmt.Errorf("failed to acquire player lock: %w", err)
	}

	if err := fn(ctx, playerTx{queries{db: tx}}); err != nil {
		// Rollback via defer; nothing from fn is persisted.
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Debug("Player action committed", "user_id", userID)
	return nil
}

// playerTx exposes the locked transaction scope as repository.PlayerTx.
type playerTx struct {
	queries
}

// hashPlayerID creates a consistent positive int64 advisory lock key
// from a user id.
func hashPlayerID(userID string) int64 {
	h := sha256.Sum256([]byte(LockNamespace + HashSeparator + userID))
	return int64(binary.BigEndian.Uint64(h[:8]) & HashMaskPositiveInt64)
}
