package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/lufiasha/botdiscord/internal/catalog"
	"github.com/lufiasha/botdiscord/internal/domain"
	"github.com/lufiasha/botdiscord/internal/logger"
	"github.com/lufiasha/botdiscord/internal/metrics"
	"github.com/lufiasha/botdiscord/internal/random"
	"github.com/lufiasha/botdiscord/internal/repository"
)

// Command is a single player-issued command, decoupled from the transport
// that delivered it.
type Command struct {
	Name     string
	UserID   string
	Username string
	Arg      string
}

// InventoryEntry is an inventory line resolved to a display name.
type InventoryEntry struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Service runs the game progression logic.
type Service interface {
	// Handle dispatches a command by name and returns the player-facing reply.
	Handle(ctx context.Context, cmd Command) (string, error)

	Status(ctx context.Context, userID, username string) (string, error)
	Hunt(ctx context.Context, userID, username string) (string, error)
	Boss(ctx context.Context, userID, username string) (string, error)
	Meditate(ctx context.Context, userID, username string) (string, error)
	Equip(ctx context.Context, userID, username, itemName string) (string, error)
	Open(ctx context.Context, userID, username string) (string, error)
	Leaderboard(ctx context.Context) (string, error)

	// TopPlayers and Inventory back the read-only HTTP API.
	TopPlayers(ctx context.Context) ([]domain.LeaderboardEntry, error)
	Inventory(ctx context.Context, userID string) ([]InventoryEntry, error)
}

// Config tunes the progression rules. Zero values fall back to the
// domain defaults.
type Config struct {
	BossDropChance   float64
	HuntDropChance   float64
	MeditateCooldown time.Duration
	MeditateReward   int
	CacheSize        int
	CacheTTL         time.Duration
}

func (c *Config) applyDefaults() {
	if c.BossDropChance == 0 {
		c.BossDropChance = domain.DefaultBossDropChance
	}
	if c.HuntDropChance == 0 {
		c.HuntDropChance = domain.HuntDropChance
	}
	if c.MeditateCooldown == 0 {
		c.MeditateCooldown = domain.MeditateCooldown
	}
	if c.MeditateReward == 0 {
		c.MeditateReward = domain.MeditateGoldReward
	}
	if c.CacheSize == 0 {
		c.CacheSize = defaultCacheSize
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = defaultCacheTTL
	}
}

const (
	defaultCacheSize = 1024
	defaultCacheTTL  = 5 * time.Minute
)

type service struct {
	repo    repository.Player
	catalog *catalog.Catalog
	rng     random.Source
	cfg     Config

	// now is replaceable in tests. Always UTC.
	now func() time.Time

	// seen caches user_id -> username for players whose row is known to
	// exist, skipping the upsert on repeat commands.
	seen *expirable.LRU[string, string]
}

// NewService creates the game service.
func NewService(repo repository.Player, cat *catalog.Catalog, rng random.Source, cfg Config) Service {
	cfg.applyDefaults()
	return &service{
		repo:    repo,
		catalog: cat,
		rng:     rng,
		cfg:     cfg,
		now:     func() time.Time { return time.Now().UTC() },
		seen:    expirable.NewLRU[string, string](cfg.CacheSize, nil, cfg.CacheTTL),
	}
}

func (s *service) Handle(ctx context.Context, cmd Command) (msg string, err error) {
	log := logger.FromContext(ctx)
	start := time.Now()
	defer func() {
		status := metrics.StatusOK
		if err != nil {
			status = metrics.StatusError
		}
		metrics.CommandsTotal.WithLabelValues(cmd.Name, status).Inc()
		metrics.CommandDuration.WithLabelValues(cmd.Name).Observe(time.Since(start).Seconds())
	}()

	log.Info("handling command", "command", cmd.Name, "user_id", cmd.UserID)

	switch cmd.Name {
	case domain.CommandStatus:
		return s.Status(ctx, cmd.UserID, cmd.Username)
	case domain.CommandHunt:
		return s.Hunt(ctx, cmd.UserID, cmd.Username)
	case domain.CommandBoss:
		return s.Boss(ctx, cmd.UserID, cmd.Username)
	case domain.CommandMeditate:
		return s.Meditate(ctx, cmd.UserID, cmd.Username)
	case domain.CommandEquip:
		return s.Equip(ctx, cmd.UserID, cmd.Username, cmd.Arg)
	case domain.CommandOpen:
		return s.Open(ctx, cmd.UserID, cmd.Username)
	case domain.CommandLeaderboard:
		return s.Leaderboard(ctx)
	case domain.CommandHelp:
		return MsgHelp, nil
	default:
		log.Warn("unknown command", "command", cmd.Name)
		return MsgUnknownCommand, nil
	}
}

// ensurePlayer returns the player row, creating it on first contact.
func (s *service) ensurePlayer(ctx context.Context, userID, username string) (*domain.Player, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: empty user id", domain.ErrInvalidInput)
	}

	if cached, ok := s.seen.Get(userID); ok && cached == username {
		player, err := s.repo.GetPlayer(ctx, userID)
		if err == nil {
			return player, nil
		}
		if !errors.Is(err, domain.ErrPlayerNotFound) {
			return nil, fmt.Errorf("failed to get player: %w", err)
		}
		// Row disappeared under the cache, recreate below.
	}

	player, err := s.repo.EnsurePlayer(ctx, userID, username)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure player: %w", err)
	}
	s.seen.Add(userID, username)
	return player, nil
}
