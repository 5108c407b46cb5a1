package domain

import "time"

// Command names accepted from the transport layer.
const (
	CommandStatus      = "status"
	CommandHunt        = "hunt"
	CommandBoss        = "boss"
	CommandEquip       = "equip"
	CommandMeditate    = "meditate"
	CommandOpen        = "open"
	CommandLeaderboard = "leaderboard"
	CommandHelp        = "help"
)

// New-player defaults.
const (
	MinLevel         = 1
	DefaultSanity    = 100
	DefaultMaxSanity = 100
	XPPerLevel       = 100
)

// Progression tuning.
const (
	HuntDropChance        = 0.30
	DefaultBossDropChance = 0.6
	MeditateGoldReward    = 5
	MeditateCooldown      = 60 * time.Minute
	LeaderboardLimit      = 5
)

// ItemLootBox is the catalog id of the openable loot box.
const ItemLootBox = "loot_box"
