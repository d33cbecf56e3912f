package settings

import (
	"fmt"

	"github.com/awender/ranklit/internal/cli"
	"github.com/awender/ranklit/internal/constants"
	"github.com/awender/ranklit/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	DuelMode              *string  `help:"Comparison mode: single-winner or full-ranking."`
	ItemsPerRound         *int     `help:"Number of items shown per duel round (2-4)."`
	HideScores            *bool    `help:"Hide ratings during duels."`
	KFactor               *float64 `help:"Maximum per-duel rating adjustment."`
	NewItemMultiplier     *float64 `help:"Rating delta multiplier for never-selected items."`
	MultiplierAfter7Days  *float64 `help:"Rating delta multiplier after the first staleness threshold."`
	MultiplierAfter30Days *float64 `help:"Rating delta multiplier after the second staleness threshold."`
	DecayThreshold7       *int     `help:"First staleness threshold in days."`
	DecayThreshold30      *int     `help:"Second staleness threshold in days."`
	Timezone              *string  `help:"IANA timezone name, or 'Local' for the system timezone."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Duel Mode:                %s\n", settings.DuelMode)
		fmt.Printf("  Items Per Round:          %d\n", settings.ItemsPerRound)
		fmt.Printf("  Hide Scores:              %v\n", settings.HideScores)
		fmt.Printf("  Timezone:                 %s\n", settings.Timezone)
		fmt.Println("\nRating Settings:")
		fmt.Printf("  K-Factor:                 %g\n", settings.KFactor)
		fmt.Printf("  New Item Multiplier:      %g\n", settings.NewItemMultiplier)
		fmt.Printf("  Multiplier After 7 Days:  %g\n", settings.MultiplierAfter7Days)
		fmt.Printf("  Multiplier After 30 Days: %g\n", settings.MultiplierAfter30Days)
		fmt.Printf("  Decay Threshold 7:        %d days\n", settings.DecayThreshold7)
		fmt.Printf("  Decay Threshold 30:       %d days\n", settings.DecayThreshold30)
		return nil
	}

	updated := false
	if c.DuelMode != nil {
		mode := constants.DuelMode(*c.DuelMode)
		if mode != constants.DuelModeSingleWinner && mode != constants.DuelModeFullRanking {
			return fmt.Errorf("invalid duel mode %q (expected %s or %s)",
				*c.DuelMode, constants.DuelModeSingleWinner, constants.DuelModeFullRanking)
		}
		settings.DuelMode = mode
		updated = true
	}
	if c.ItemsPerRound != nil {
		if *c.ItemsPerRound < constants.MinItemsPerRound || *c.ItemsPerRound > constants.MaxItemsPerRound {
			return fmt.Errorf("items per round must be between %d and %d",
				constants.MinItemsPerRound, constants.MaxItemsPerRound)
		}
		settings.ItemsPerRound = *c.ItemsPerRound
		updated = true
	}
	if c.HideScores != nil {
		settings.HideScores = *c.HideScores
		updated = true
	}
	if c.KFactor != nil {
		if *c.KFactor <= 0 {
			return fmt.Errorf("k-factor must be positive")
		}
		settings.KFactor = *c.KFactor
		updated = true
	}
	if c.NewItemMultiplier != nil {
		if *c.NewItemMultiplier <= 0 {
			return fmt.Errorf("new item multiplier must be positive")
		}
		settings.NewItemMultiplier = *c.NewItemMultiplier
		updated = true
	}
	if c.MultiplierAfter7Days != nil {
		if *c.MultiplierAfter7Days <= 0 {
			return fmt.Errorf("multiplier after 7 days must be positive")
		}
		settings.MultiplierAfter7Days = *c.MultiplierAfter7Days
		updated = true
	}
	if c.MultiplierAfter30Days != nil {
		if *c.MultiplierAfter30Days <= 0 {
			return fmt.Errorf("multiplier after 30 days must be positive")
		}
		settings.MultiplierAfter30Days = *c.MultiplierAfter30Days
		updated = true
	}
	if c.DecayThreshold7 != nil {
		if *c.DecayThreshold7 < 1 {
			return fmt.Errorf("decay threshold must be at least 1 day")
		}
		settings.DecayThreshold7 = *c.DecayThreshold7
		updated = true
	}
	if c.DecayThreshold30 != nil {
		if *c.DecayThreshold30 < 1 {
			return fmt.Errorf("decay threshold must be at least 1 day")
		}
		settings.DecayThreshold30 = *c.DecayThreshold30
		updated = true
	}
	if c.Timezone != nil {
		if _, err := utils.LoadLocation(*c.Timezone); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", *c.Timezone, err)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}

	if settings.DecayThreshold7 >= settings.DecayThreshold30 {
		return fmt.Errorf("decay threshold 7 (%d) must be below decay threshold 30 (%d)",
			settings.DecayThreshold7, settings.DecayThreshold30)
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
