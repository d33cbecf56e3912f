package habits

import (
	"fmt"
	"strings"

	"github.com/awender/ranklit/internal/analytics"
	"github.com/awender/ranklit/internal/cli"
	"github.com/awender/ranklit/internal/constants"
	"github.com/awender/ranklit/internal/utils"
)

type HabitStatsCmd struct {
	Habit  string `arg:"" help:"Habit ID or name."`
	Window int    `help:"Analysis window in days." default:"30"`
}

func (c *HabitStatsCmd) Run(ctx *cli.Context) error {
	if c.Window < 1 {
		return fmt.Errorf("--window must be at least 1")
	}

	habit, err := cli.ResolveHabit(ctx.Store, c.Habit)
	if err != nil {
		return err
	}
	record, err := ctx.Store.GetCompletionRecord(habit.ID)
	if err != nil {
		return err
	}

	today, err := resolveDay(ctx, "")
	if err != nil {
		return err
	}
	now, err := utils.ParseDay(today)
	if err != nil {
		return err
	}

	fmt.Printf("Statistics for %q (%s)\n\n", habit.Name, habit.Kind)

	// Streaks
	streak := analytics.CurrentStreak(record, now, constants.MaxLookbackDays)
	fmt.Printf("Current streak:   %d day(s)\n", streak)
	if milestone, ok := analytics.CheckMilestone(streak); ok {
		fmt.Printf("                  🎉 milestone reached: %d days!\n", milestone)
	}
	if last, ok := analytics.FindLastCompletedDate(record, now, constants.MaxLookbackDays); ok {
		fmt.Printf("Last completed:   %s\n", utils.FormatDay(last))
	} else {
		fmt.Printf("Last completed:   never\n")
	}

	// Progress
	progress := analytics.ComputeProgress(record, now, c.Window)
	fmt.Printf("\nLast %d days:    %d/%d completed (%.0f%%)\n",
		c.Window, progress.Completed, progress.Total, progress.Percentage)

	// Patterns
	pattern := analytics.Analyze(record, now, constants.DefaultPatternDays)
	fmt.Printf("\nTrend:            %s\n", pattern.Trend)
	fmt.Printf("Predictability:   %.2f\n", pattern.Predictability)
	if len(pattern.BestWeekdays) > 0 && len(pattern.BestWeekdays) < 7 {
		fmt.Printf("Best weekdays:    %s\n", joinWeekdays(pattern.BestWeekdays))
	}
	if len(pattern.WorstWeekdays) > 0 && len(pattern.WorstWeekdays) < 7 {
		fmt.Printf("Worst weekdays:   %s\n", joinWeekdays(pattern.WorstWeekdays))
	}

	return nil
}

func joinWeekdays(isoWeekdays []int) string {
	names := make([]string, 0, len(isoWeekdays))
	for _, wd := range isoWeekdays {
		names = append(names, utils.WeekdayName(wd))
	}
	return strings.Join(names, ", ")
}
