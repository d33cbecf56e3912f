package habits

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/awender/ranklit/internal/cli"
	"github.com/awender/ranklit/internal/constants"
	"github.com/awender/ranklit/internal/models"
	"github.com/awender/ranklit/internal/utils"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a new habit."`
	List    HabitListCmd    `cmd:"" help:"List habits."`
	Mark    HabitMarkCmd    `cmd:"" help:"Toggle a binary habit for a day."`
	Log     HabitLogCmd     `cmd:"" help:"Log an amount for a quantitative habit."`
	Today   HabitTodayCmd   `cmd:"" help:"Show today's habit status."`
	History HabitHistoryCmd `cmd:"" help:"Show habit history (ASCII grid)."`
	Stats   HabitStatsCmd   `cmd:"" help:"Show streak, progress and pattern statistics."`
	Archive HabitArchiveCmd `cmd:"" help:"Archive a habit."`
	Delete  HabitDeleteCmd  `cmd:"" help:"Delete a habit (soft delete)."`
	Restore HabitRestoreCmd `cmd:"" help:"Restore a deleted habit."`
}

type HabitAddCmd struct {
	Name   string   `arg:"" optional:"" help:"Habit name. Prompted when omitted."`
	Kind   string   `short:"k" help:"Habit kind (binary|quantitative)." enum:"binary,quantitative," default:""`
	Target *float64 `short:"t" help:"Daily target for quantitative habits."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	name := c.Name
	kind := c.Kind
	target := c.Target

	// Prompt for anything not given on the command line
	if name == "" || kind == "" {
		var targetStr string
		fields := []huh.Field{}
		if name == "" {
			fields = append(fields, huh.NewInput().
				Title("Habit name").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}))
		}
		if kind == "" {
			fields = append(fields, huh.NewSelect[string]().
				Title("Habit kind").
				Options(
					huh.NewOption("Binary (done / not done)", string(constants.HabitKindBinary)),
					huh.NewOption("Quantitative (numeric amount)", string(constants.HabitKindQuantitative)),
				).
				Value(&kind))
			fields = append(fields, huh.NewInput().
				Title("Daily target (quantitative only, leave empty otherwise)").
				Value(&targetStr).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					var v float64
					if _, err := fmt.Sscanf(s, "%g", &v); err != nil || v <= 0 {
						return fmt.Errorf("target must be a positive number")
					}
					return nil
				}))
		}

		form := huh.NewForm(huh.NewGroup(fields...))
		if err := form.Run(); err != nil {
			return err
		}
		if targetStr != "" {
			var v float64
			if _, err := fmt.Sscanf(targetStr, "%g", &v); err == nil {
				target = &v
			}
		}
	}

	name = strings.TrimSpace(name)
	if kind == string(constants.HabitKindQuantitative) && (target == nil || *target <= 0) {
		return fmt.Errorf("quantitative habits require a positive --target")
	}
	if kind != string(constants.HabitKindQuantitative) {
		target = nil
	}

	if _, err := ctx.Store.GetHabitByName(name); err == nil {
		return fmt.Errorf("habit with name %q already exists", name)
	}

	habit := models.Habit{
		ID:          uuid.New().String(),
		Name:        name,
		Kind:        constants.HabitKind(kind),
		TargetValue: target,
		CreatedAt:   time.Now(),
	}

	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s)\n", name, kind)
	return nil
}

type HabitListCmd struct {
	Archived bool `help:"Include archived habits."`
	Deleted  bool `help:"Include deleted habits."`
	ShowIDs  bool `help:"Show habit IDs." name:"show-ids"`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(c.Archived, c.Deleted)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range habits {
		status := ""
		if habit.DeletedAt != nil {
			status = " [DELETED]"
		} else if habit.ArchivedAt != nil {
			status = " [ARCHIVED]"
		}

		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", habit.ID)
		}

		kindStr := string(habit.Kind)
		if habit.Kind == constants.HabitKindQuantitative && habit.TargetValue != nil {
			kindStr = fmt.Sprintf("%s, target %g/day", habit.Kind, *habit.TargetValue)
		}
		fmt.Printf("%s%s%s (%s)\n", habit.Name, idStr, status, kindStr)
	}

	return nil
}

type HabitMarkCmd struct {
	Habit string `arg:"" help:"Habit ID or name."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Note  string `help:"Optional note for this entry." default:""`
}

func (c *HabitMarkCmd) Run(ctx *cli.Context) error {
	habit, err := cli.ResolveHabit(ctx.Store, c.Habit)
	if err != nil {
		return err
	}
	if habit.Kind == constants.HabitKindQuantitative {
		return fmt.Errorf("habit %q is quantitative, use 'ranklit habit log' instead", habit.Name)
	}

	day, err := resolveDay(ctx, c.Date)
	if err != nil {
		return err
	}

	// Toggle: an existing done entry is removed, otherwise a new one is added
	existing, err := ctx.Store.GetHabitEntry(habit.ID, day)
	if err == nil && existing.Value.Done {
		if err := ctx.Store.DeleteHabitEntry(existing.ID); err != nil {
			return err
		}
		fmt.Printf("Unmarked habit %q for %s\n", habit.Name, day)
		return nil
	}

	entry := models.HabitEntry{
		ID:        uuid.New().String(),
		HabitID:   habit.ID,
		Day:       day,
		Value:     models.BinaryValue(true),
		Note:      c.Note,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := ctx.Store.AddHabitEntry(entry); err != nil {
		return err
	}

	fmt.Printf("Marked habit %q for %s\n", habit.Name, day)
	return nil
}

type HabitLogCmd struct {
	Habit  string  `arg:"" help:"Habit ID or name."`
	Amount float64 `arg:"" help:"Amount to record for the day."`
	Date   string  `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Note   string  `help:"Optional note for this entry." default:""`
}

func (c *HabitLogCmd) Run(ctx *cli.Context) error {
	habit, err := cli.ResolveHabit(ctx.Store, c.Habit)
	if err != nil {
		return err
	}
	if habit.Kind != constants.HabitKindQuantitative {
		return fmt.Errorf("habit %q is binary, use 'ranklit habit mark' instead", habit.Name)
	}
	if c.Amount < 0 {
		return fmt.Errorf("amount cannot be negative")
	}

	day, err := resolveDay(ctx, c.Date)
	if err != nil {
		return err
	}

	entry := models.HabitEntry{
		ID:        uuid.New().String(),
		HabitID:   habit.ID,
		Day:       day,
		Value:     models.QuantitativeValue(c.Amount),
		Note:      c.Note,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	// The store replaces any existing entry for the same habit and day
	if err := ctx.Store.AddHabitEntry(entry); err != nil {
		return err
	}

	status := ""
	if habit.TargetValue != nil {
		if c.Amount >= *habit.TargetValue {
			status = " ✓ target met"
		} else {
			status = fmt.Sprintf(" (%g/%g)", c.Amount, *habit.TargetValue)
		}
	}
	fmt.Printf("Logged %g for habit %q on %s%s\n", c.Amount, habit.Name, day, status)
	return nil
}

type HabitTodayCmd struct{}

func (c *HabitTodayCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(false, false)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today, err := resolveDay(ctx, "")
	if err != nil {
		return err
	}

	fmt.Printf("Habits for %s:\n\n", today)
	recorded := 0
	for _, habit := range habits {
		status := "[ ]"
		detail := ""
		entry, err := ctx.Store.GetHabitEntry(habit.ID, today)
		if err == nil {
			recorded++
			if habit.Kind == constants.HabitKindQuantitative {
				status = "[x]"
				detail = fmt.Sprintf(" %g", entry.Value.Amount)
				if habit.TargetValue != nil {
					detail = fmt.Sprintf(" %g/%g", entry.Value.Amount, *habit.TargetValue)
				}
			} else if entry.Value.Done {
				status = "[x]"
			}
		}
		fmt.Printf("%s %s%s\n", status, habit.Name, detail)
	}

	fmt.Printf("\nRecorded: %d/%d\n", recorded, len(habits))
	return nil
}

type HabitArchiveCmd struct {
	Habit string `arg:"" help:"Habit ID or name."`
}

func (c *HabitArchiveCmd) Run(ctx *cli.Context) error {
	habit, err := cli.ResolveHabit(ctx.Store, c.Habit)
	if err != nil {
		return err
	}
	if err := ctx.Store.ArchiveHabit(habit.ID); err != nil {
		return err
	}
	fmt.Printf("Archived habit: %s\n", habit.Name)
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit ID or name."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	habit, err := cli.ResolveHabit(ctx.Store, c.Habit)
	if err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted habit: %s (restore with 'ranklit restore habit %s')\n", habit.Name, habit.ID)
	return nil
}

type HabitRestoreCmd struct {
	ID string `arg:"" help:"Habit ID."`
}

func (c *HabitRestoreCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.RestoreHabit(c.ID); err != nil {
		return err
	}
	fmt.Printf("Restored habit: %s\n", c.ID)
	return nil
}

// resolveDay validates an explicit date or returns today in the configured timezone.
func resolveDay(ctx *cli.Context, date string) (string, error) {
	if date != "" {
		if _, err := utils.ParseDay(date); err != nil {
			return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", date)
		}
		return date, nil
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return time.Now().Format(constants.DateFormat), nil
	}
	today, err := utils.GetTodayInTimezone(settings.Timezone)
	if err != nil {
		return time.Now().Format(constants.DateFormat), nil
	}
	return today, nil
}
