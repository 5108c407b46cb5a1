package domain

// CombatStats is the resolved attack/defense pair derived from level and
// equipped items. Both axes are floored at 1.
type CombatStats struct {
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
}

// LeaderboardEntry is one row of the xp ranking.
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Level    int    `json:"level"`
	XP       int    `json:"xp"`
}
