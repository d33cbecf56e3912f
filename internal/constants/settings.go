package constants

const (
	// Duel Settings
	SettingDuelMode      = "duel_mode"
	SettingItemsPerRound = "items_per_round"
	SettingHideScores    = "hide_scores"
	SettingKFactor       = "k_factor"

	// Decay Settings
	SettingNewItemMultiplier     = "new_item_multiplier"
	SettingMultiplierAfter7Days  = "multiplier_after_7_days"
	SettingMultiplierAfter30Days = "multiplier_after_30_days"
	SettingDecayThreshold7       = "decay_threshold_7"
	SettingDecayThreshold30      = "decay_threshold_30"

	// General Settings
	SettingTimezone = "timezone"

	// Default Settings Values
	DefaultDuelMode              = DuelModeSingleWinner
	DefaultItemsPerRound         = 2
	DefaultHideScores            = true
	DefaultNewItemMultiplier     = 2.0
	DefaultMultiplierAfter7Days  = 1.25
	DefaultMultiplierAfter30Days = 1.5
	DefaultDecayThreshold7       = 7
	DefaultDecayThreshold30      = 30
	DefaultTimezone              = "Local" // Use system local timezone by default
)
