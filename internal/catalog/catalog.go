// Package catalog holds the immutable game data: items, mobs, bosses and
// the loot box reward pool. A Catalog is built once at startup and is safe
// for concurrent reads; nothing mutates it afterwards.
package catalog

import (
	"sort"
	"strings"

	"github.com/lufiasha/botdiscord/internal/domain"
)

// Catalog is the process-wide read-only lookup table set.
type Catalog struct {
	items      map[string]domain.Item
	byName     map[string]domain.Item // normalized display name -> item
	mobs       []domain.Mob
	bosses     []domain.Boss // sorted by LevelReq ascending
	rewardPool []string
}

// New builds a catalog from raw definitions and validates cross references.
func New(items []domain.Item, mobs []domain.Mob, bosses []domain.Boss, rewardPool []string) (*Catalog, error) {
	c := &Catalog{
		items:      make(map[string]domain.Item, len(items)),
		byName:     make(map[string]domain.Item, len(items)),
		mobs:       make([]domain.Mob, len(mobs)),
		bosses:     make([]domain.Boss, len(bosses)),
		rewardPool: make([]string, len(rewardPool)),
	}

	for _, item := range items {
		c.items[item.ID] = item
		c.byName[Normalize(item.Name)] = item
	}
	copy(c.mobs, mobs)
	copy(c.bosses, bosses)
	copy(c.rewardPool, rewardPool)

	sort.SliceStable(c.bosses, func(i, j int) bool {
		return c.bosses[i].LevelReq < c.bosses[j].LevelReq
	})

	if err := c.validate(items); err != nil {
		return nil, err
	}
	return c, nil
}

// Item looks up an item by its catalog id.
func (c *Catalog) Item(id string) (domain.Item, bool) {
	item, ok := c.items[id]
	return item, ok
}

// Resolve maps free text to an item: first as a normalized id, then as a
// normalized display name ("Железный меч" -> iron_sword).
func (c *Catalog) Resolve(name string) (domain.Item, bool) {
	norm := Normalize(name)
	if item, ok := c.items[norm]; ok {
		return item, true
	}
	item, ok := c.byName[norm]
	return item, ok
}

// Mobs returns the huntable mob table. Callers must not modify it.
func (c *Catalog) Mobs() []domain.Mob {
	return c.mobs
}

// Bosses returns all bosses ordered by level requirement. Callers must
// not modify it.
func (c *Catalog) Bosses() []domain.Boss {
	return c.bosses
}

// HardestEligibleBoss returns the boss with the highest level requirement
// the given level qualifies for. The bool is false when no boss is
// eligible.
func (c *Catalog) HardestEligibleBoss(level int) (domain.Boss, bool) {
	var best domain.Boss
	found := false
	for _, b := range c.bosses {
		if b.LevelReq <= level {
			best = b
			found = true
		}
	}
	return best, found
}

// RewardPool returns the loot box reward pool item ids. Callers must not
// modify it.
func (c *Catalog) RewardPool() []string {
	return c.rewardPool
}

// Normalize lowercases a free-text item reference and replaces spaces
// with underscores, matching catalog id conventions.
func Normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}
