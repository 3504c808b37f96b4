package constants

// Persisted keys
const (
	// HighScoreKey holds the persisted high score
	HighScoreKey = "snake_highscore"

	// HistoryKey holds the play history table
	HistoryKey = "snake_history"
)

// Default paths
const (
	DefaultDataFile  = "snake.json"
	DefaultAssetsDir = "assets"
	HeadSpriteFile   = "snake_head.png"
	FoodSpriteFile   = "apple.png"

	// TopScoresLimit is the default leaderboard length
	TopScoresLimit = 10

	// RecentGamesShown is the number of own games listed after a game over
	RecentGamesShown = 5
)
