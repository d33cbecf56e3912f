package constants

// SessionState represents the current state of the duel TUI
type SessionState int

// DuelMode represents the comparison mode for duel rounds
type DuelMode string

// HabitKind represents the kind of habit being tracked
type HabitKind string

const (
	AppName           = "ranklit"
	DefaultConfigPath = "~/.config/ranklit/ranklit.db"
	Version           = "v0.3.0"

	// DefaultKeyringUser is the keyring account used for the database connection string
	DefaultKeyringUser = "database-connection"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Rating bounds
	RatingMin     = 0.0
	RatingMax     = 3000.0
	RatingDefault = 1200.0

	// DefaultKFactor is the maximum per-duel rating adjustment
	DefaultKFactor = 32.0

	// Duel round sizing
	MinItemsPerRound = 2
	MaxItemsPerRound = 4

	// Duel Mode constants
	DuelModeSingleWinner DuelMode = "single-winner"
	DuelModeFullRanking  DuelMode = "full-ranking"

	// Habit Kind constants
	HabitKindBinary       HabitKind = "binary"
	HabitKindQuantitative HabitKind = "quantitative"

	// Analytics windows
	MaxLookbackDays       = 365
	DefaultPatternDays    = 60
	DefaultAnalysisWindow = 30
	DefaultPredictionDays = 7

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "ranklit-"
	BackupFileSuffix = ".db"

	// Session States
	StatePicking SessionState = iota
	StateOrdering
	StateResults
)

// Milestones are the streak lengths worth announcing, in ascending order.
var Milestones = []int{3, 7, 30, 100, 365}
