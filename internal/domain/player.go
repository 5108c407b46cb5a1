package domain

import "time"

// Player represents the persistent progression state of one user.
// UserID is the platform-assigned identifier and never changes; Username
// is a display name refreshed on every interaction.
type Player struct {
	UserID         string     `json:"user_id"`
	Username       string     `json:"username"`
	Level          int        `json:"level"`
	XP             int        `json:"xp"`
	Gold           int        `json:"gold"`
	Sanity         int        `json:"sanity"`
	MaxSanity      int        `json:"max_sanity"`
	LastMeditation *time.Time `json:"last_meditation,omitempty"`
	LastBossFight  *time.Time `json:"last_boss_fight,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// PlayerPatch is a partial update to a player row. Nil fields are left
// untouched; the store stamps updated_at on every applied patch.
type PlayerPatch struct {
	Username       *string
	Level          *int
	XP             *int
	Gold           *int
	Sanity         *int
	MaxSanity      *int
	LastMeditation *time.Time
	LastBossFight  *time.Time
}

// IsZero reports whether the patch carries no changes.
func (p PlayerPatch) IsZero() bool {
	return p.Username == nil && p.Level == nil && p.XP == nil && p.Gold == nil &&
		p.Sanity == nil && p.MaxSanity == nil && p.LastMeditation == nil && p.LastBossFight == nil
}

// LevelForXP derives the player level from accumulated experience.
// Levels rise every XPPerLevel experience and never drop below MinLevel.
func LevelForXP(xp int) int {
	if xp < 0 {
		return MinLevel
	}
	return xp/XPPerLevel + MinLevel
}

// ClampSanity bounds sanity into [0, maxSanity].
func ClampSanity(sanity, maxSanity int) int {
	if sanity < 0 {
		return 0
	}
	if sanity > maxSanity {
		return maxSanity
	}
	return sanity
}
