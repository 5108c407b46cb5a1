package postgres

import (
	"fmt"

	"github.com/lufiasha/botdiscord/internal/domain"
)

// buildPlayerPatch translates a partial player patch into SET clauses
// and positional arguments. Clause order is fixed so the generated SQL
// is deterministic.
func buildPlayerPatch(patch domain.PlayerPatch) ([]string, []any) {
	var sets []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Username != nil {
		add("username", *patch.Username)
	}
	if patch.Level != nil {
		add("level", *patch.Level)
	}
	if patch.XP != nil {
		add("xp", *patch.XP)
	}
	if patch.Gold != nil {
		add("gold", *patch.Gold)
	}
	if patch.Sanity != nil {
		add("sanity", *patch.Sanity)
	}
	if patch.MaxSanity != nil {
		add("max_sanity", *patch.MaxSanity)
	}
	if patch.LastMeditation != nil {
		add("last_meditation", *patch.LastMeditation)
	}
	if patch.LastBossFight != nil {
		add("last_boss_fight", *patch.LastBossFight)
	}

	return sets, args
}
