package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults for optional settings.
const (
	DefaultPort            = 8080
	DefaultBossDropChance  = 0.6
	DefaultPlayerCacheSize = 1000
	DefaultPlayerCacheTTL  = 5 * time.Minute
	DefaultCatalogPath     = "configs/catalog.json"
)

// Config holds the application configuration
type Config struct {
	Port      int
	LogLevel  string
	LogFormat string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// DiscordPublicKey is the hex-encoded ed25519 key Discord signs
	// interaction webhooks with.
	DiscordPublicKey string

	CatalogPath string

	// BossDropChance is the probability of a drop after a boss fight.
	// Observed values vary between deployments, so it stays tunable.
	BossDropChance float64

	PlayerCacheSize int
	PlayerCacheTTL  time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:         getEnv("LOG_LEVEL", "INFO"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", "postgres"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBName:           getEnv("DB_NAME", "echobot"),
		DiscordPublicKey: getEnv("DISCORD_PUBLIC_KEY", ""),
		CatalogPath:      getEnv("CATALOG_PATH", DefaultCatalogPath),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	chance, err := parseChance(getEnv("BOSS_DROP_CHANCE", ""))
	if err != nil {
		return nil, err
	}
	cfg.BossDropChance = chance

	cacheSize, err := strconv.Atoi(getEnv("PLAYER_CACHE_SIZE", strconv.Itoa(DefaultPlayerCacheSize)))
	if err != nil || cacheSize <= 0 {
		return nil, fmt.Errorf("invalid PLAYER_CACHE_SIZE value")
	}
	cfg.PlayerCacheSize = cacheSize

	cfg.PlayerCacheTTL = DefaultPlayerCacheTTL
	if val := getEnv("PLAYER_CACHE_TTL", ""); val != "" {
		ttl, err := time.ParseDuration(val)
		if err != nil || ttl <= 0 {
			return nil, fmt.Errorf("invalid PLAYER_CACHE_TTL value: %q", val)
		}
		cfg.PlayerCacheTTL = ttl
	}

	if cfg.DiscordPublicKey == "" {
		return nil, fmt.Errorf("DISCORD_PUBLIC_KEY environment variable must be set")
	}

	return cfg, nil
}

func parseChance(val string) (float64, error) {
	if val == "" {
		return DefaultBossDropChance, nil
	}
	chance, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid BOSS_DROP_CHANCE value: %w", err)
	}
	if chance < 0 || chance > 1 {
		return 0, fmt.Errorf("BOSS_DROP_CHANCE must be within [0, 1], got %v", chance)
	}
	return chance, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
