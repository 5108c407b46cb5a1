package postgres

// SQL statements for the player store.
const (
	SQLUpsertPlayer = `
		INSERT INTO players (user_id, username)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET username = EXCLUDED.username, updated_at = NOW()
		RETURNING user_id, username, level, xp, gold, sanity, max_sanity,
		          last_meditation, last_boss_fight, created_at, updated_at
	`

	SQLEnsureEquipment = `
		INSERT INTO equipment (user_id) VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`

	SQLSelectPlayer = `
		SELECT user_id, username, level, xp, gold, sanity, max_sanity,
		       last_meditation, last_boss_fight, created_at, updated_at
		FROM players
		WHERE user_id = $1
	`

	SQLSelectEquipment = `
		SELECT user_id, COALESCE(weapon, ''), COALESCE(armor, '')
		FROM equipment
		WHERE user_id = $1
	`

	SQLSelectInventory = `
		SELECT item_id, quantity
		FROM inventory
		WHERE user_id = $1 AND quantity > 0
		ORDER BY item_id
	`

	SQLSelectItemCount = `
		SELECT quantity FROM inventory
		WHERE user_id = $1 AND item_id = $2
	`

	SQLIncrementItem = `
		INSERT INTO inventory (user_id, item_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, item_id) DO UPDATE
		SET quantity = inventory.quantity + EXCLUDED.quantity
	`

	SQLDecrementItem = `
		UPDATE inventory
		SET quantity = quantity + $3
		WHERE user_id = $1 AND item_id = $2 AND quantity + $3 >= 0
	`

	SQLTopPlayersByXP = `
		SELECT user_id, username, level, xp, gold, sanity, max_sanity,
		       last_meditation, last_boss_fight, created_at, updated_at
		FROM players
		ORDER BY xp DESC, user_id ASC
		LIMIT $1
	`

	SQLAdvisoryLock = `SELECT pg_advisory_xact_lock($1)`
)

// HashSeparator joins the lock key namespace and user id before hashing.
const HashSeparator = ":"

// HashMaskPositiveInt64 clears the sign bit so lock keys stay positive.
const HashMaskPositiveInt64 = uint64(0x7FFFFFFFFFFFFFFF)

// LockNamespace scopes advisory lock keys to player actions.
const LockNamespace = "player"
