package habits

import (
	"fmt"
	"strings"
	"time"

	"github.com/awender/ranklit/internal/analytics"
	"github.com/awender/ranklit/internal/cli"
	"github.com/awender/ranklit/internal/constants"
	"github.com/awender/ranklit/internal/models"
	"github.com/awender/ranklit/internal/utils"
)

type HabitHistoryCmd struct {
	Days  int    `help:"Number of days to show." default:"14"`
	Habit string `help:"Show history for a specific habit only."`
}

func (c *HabitHistoryCmd) Run(ctx *cli.Context) error {
	if c.Days < 1 {
		return fmt.Errorf("--days must be at least 1")
	}

	habits, err := ctx.Store.GetAllHabits(false, false)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	var selected []models.Habit
	if c.Habit != "" {
		habit, err := cli.ResolveHabit(ctx.Store, c.Habit)
		if err != nil {
			return err
		}
		selected = []models.Habit{habit}
	} else {
		selected = habits
	}

	today, err := resolveDay(ctx, "")
	if err != nil {
		return err
	}
	endDay, err := utils.ParseDay(today)
	if err != nil {
		return err
	}
	startDay := endDay.AddDate(0, 0, -(c.Days - 1))

	fmt.Printf("Habit history (last %d days):\n\n", c.Days)

	const nameWidth = 20
	fmt.Printf("%-*s", nameWidth, "Habit")
	for i := 0; i < c.Days; i++ {
		day := startDay.AddDate(0, 0, i)
		fmt.Printf(" %5s", day.Format("01/02"))
	}
	fmt.Println()

	fmt.Print(strings.Repeat("-", nameWidth))
	for i := 0; i < c.Days; i++ {
		fmt.Print("------")
	}
	fmt.Println()

	for _, habit := range selected {
		record, err := ctx.Store.GetCompletionRecord(habit.ID)
		if err != nil {
			return err
		}

		name := habit.Name
		if len(name) > nameWidth {
			name = name[:nameWidth-1] + "…"
		}
		fmt.Printf("%-*s", nameWidth, name)

		for i := 0; i < c.Days; i++ {
			day := startDay.AddDate(0, 0, i)
			fmt.Printf(" %5s", historyCell(record, day))
		}
		fmt.Println()
	}

	return nil
}

func historyCell(record models.CompletionRecord, day time.Time) string {
	value, ok := record.Value(utils.FormatDay(day))
	if !ok {
		return "·"
	}
	if analytics.IsSuccessful(record, day) {
		return "✓"
	}
	if record.Kind == constants.HabitKindQuantitative && value.Amount > 0 {
		return "~"
	}
	return "✗"
}
