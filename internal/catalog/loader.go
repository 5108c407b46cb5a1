package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/lufiasha/botdiscord/internal/domain"
)

// Sentinel errors for catalog loading and validation.
var (
	ErrInvalidConfig  = errors.New("invalid catalog configuration")
	ErrDuplicateItem  = errors.New("duplicate item id")
	ErrUnknownDropRef = errors.New("drop references unknown item")
)

// Config is the JSON shape of configs/catalog.json.
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items      []domain.Item `json:"items"`
	Mobs       []domain.Mob  `json:"mobs"`
	Bosses     []domain.Boss `json:"bosses"`
	RewardPool []string      `json:"reward_pool"`
}

// Load reads a catalog JSON file and builds the validated lookup tables.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return New(config.Items, config.Mobs, config.Bosses, config.RewardPool)
}

// validate checks item uniqueness, type attributes and drop references.
// The raw item slice is passed separately because the map has already
// deduplicated ids.
func (c *Catalog) validate(items []domain.Item) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: no items defined", ErrInvalidConfig)
	}
	// Hunt picks a mob unconditionally, so an empty mob table would make
	// the action impossible.
	if len(c.mobs) == 0 {
		return fmt.Errorf("%w: no mobs defined", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(items))
	for i, item := range items {
		if item.ID == "" {
			return fmt.Errorf("%w: item at index %d has empty id", ErrInvalidConfig, i)
		}
		if seen[item.ID] {
			return fmt.Errorf("%w: '%s'", ErrDuplicateItem, item.ID)
		}
		seen[item.ID] = true

		if item.Name == "" {
			return fmt.Errorf("%w: item '%s' has empty name", ErrInvalidConfig, item.ID)
		}
		switch item.Type {
		case domain.ItemTypeWeapon:
			if item.Attack <= 0 {
				return fmt.Errorf("%w: weapon '%s' has no attack", ErrInvalidConfig, item.ID)
			}
		case domain.ItemTypeArmor:
			if item.Defense <= 0 {
				return fmt.Errorf("%w: armor '%s' has no defense", ErrInvalidConfig, item.ID)
			}
		case domain.ItemTypeConsumable, domain.ItemTypeBox:
		default:
			return fmt.Errorf("%w: item '%s' has unknown type '%s'", ErrInvalidConfig, item.ID, item.Type)
		}
	}

	for _, mob := range c.mobs {
		if mob.Name == "" {
			return fmt.Errorf("%w: mob with empty name", ErrInvalidConfig)
		}
		if mob.XP < 0 || mob.Gold < 0 {
			return fmt.Errorf("%w: mob '%s' has negative rewards", ErrInvalidConfig, mob.Name)
		}
		if err := c.checkDrops(mob.Name, mob.Drops); err != nil {
			return err
		}
	}

	for _, boss := range c.bosses {
		if boss.Name == "" {
			return fmt.Errorf("%w: boss with empty name", ErrInvalidConfig)
		}
		if boss.LevelReq < domain.MinLevel {
			return fmt.Errorf("%w: boss '%s' has level_req below %d", ErrInvalidConfig, boss.Name, domain.MinLevel)
		}
		if boss.CooldownMin < 0 {
			return fmt.Errorf("%w: boss '%s' has negative cooldown", ErrInvalidConfig, boss.Name)
		}
		if err := c.checkDrops(boss.Name, boss.Drops); err != nil {
			return err
		}
	}

	if err := c.checkDrops("reward_pool", c.rewardPool); err != nil {
		return err
	}

	return nil
}

func (c *Catalog) checkDrops(owner string, drops []string) error {
	for _, id := range drops {
		if _, ok := c.items[id]; !ok {
			return fmt.Errorf("%w: '%s' in '%s'", ErrUnknownDropRef, id, owner)
		}
	}
	return nil
}
