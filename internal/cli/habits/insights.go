package habits

import (
	"fmt"

	"github.com/awender/ranklit/internal/analytics"
	"github.com/awender/ranklit/internal/cli"
	"github.com/awender/ranklit/internal/constants"
	"github.com/awender/ranklit/internal/models"
	"github.com/awender/ranklit/internal/utils"
)

type InsightsCmd struct {
	Habit string `arg:"" optional:"" help:"Habit ID or name. Shows all habits when omitted."`
	Days  int    `help:"Number of future days to predict." default:"7"`
}

func (c *InsightsCmd) Run(ctx *cli.Context) error {
	if c.Days < 1 {
		return fmt.Errorf("--days must be at least 1")
	}

	var habits []models.Habit
	if c.Habit != "" {
		habit, err := cli.ResolveHabit(ctx.Store, c.Habit)
		if err != nil {
			return err
		}
		habits = []models.Habit{habit}
	} else {
		var err error
		habits, err = ctx.Store.GetAllHabits(false, false)
		if err != nil {
			return err
		}
		if len(habits) == 0 {
			fmt.Println("No habits found.")
			return nil
		}
	}

	today, err := resolveDay(ctx, "")
	if err != nil {
		return err
	}
	now, err := utils.ParseDay(today)
	if err != nil {
		return err
	}

	for i, habit := range habits {
		if i > 0 {
			fmt.Println()
		}
		record, err := ctx.Store.GetCompletionRecord(habit.ID)
		if err != nil {
			return err
		}

		fmt.Printf("== %s ==\n", habit.Name)

		result := analytics.Predict(record, habit.CreatedAt, now,
			c.Days, constants.DefaultAnalysisWindow)
		fmt.Printf("Success probability: %.0f%% (confidence %.0f%%)\n",
			result.Probability*100, result.Confidence*100)
		for _, day := range result.Days {
			fmt.Printf("  %s %s  %3.0f%%\n",
				utils.FormatDay(day.Date),
				utils.WeekdayName(utils.ISOWeekday(day.Date)),
				day.Probability*100)
		}

		recs := analytics.Recommend(record, now)
		if len(recs) == 0 {
			fmt.Println("No recommendations, keep going!")
			continue
		}
		fmt.Println("\nRecommendations:")
		for _, rec := range recs {
			fmt.Printf("  [%s] %s\n", rec.Priority, rec.Title)
			fmt.Printf("      %s\n", rec.Body)
			for _, action := range rec.Actions {
				fmt.Printf("      - %s\n", action)
			}
		}
	}

	return nil
}
