package system

import (
	"encoding/json"
	"fmt"

	"github.com/awender/ranklit/internal/cli"
)

type DebugCmd struct {
	DBPath    *DebugDBPathCmd    `cmd:"" help:"Show database path."`
	DumpItem  *DebugDumpItemCmd  `cmd:"" help:"Dump item data as JSON."`
	DumpHabit *DebugDumpHabitCmd `cmd:"" help:"Dump habit data as JSON."`
}

type DebugDBPathCmd struct{}

func (c *DebugDBPathCmd) Run(ctx *cli.Context) error {
	fmt.Println(ctx.Store.GetConfigPath())
	return nil
}

type DebugDumpItemCmd struct {
	Item string `arg:"" optional:"" help:"Item ID or name. Dumps all items when omitted."`
}

func (c *DebugDumpItemCmd) Run(ctx *cli.Context) error {
	if c.Item != "" {
		item, err := cli.ResolveItem(ctx.Store, c.Item)
		if err != nil {
			return err
		}
		return dumpJSON(item)
	}

	items, err := ctx.Store.GetAllItems(true, true)
	if err != nil {
		return err
	}
	return dumpJSON(items)
}

type DebugDumpHabitCmd struct {
	Habit string `arg:"" optional:"" help:"Habit ID or name. Dumps all habits when omitted."`
}

func (c *DebugDumpHabitCmd) Run(ctx *cli.Context) error {
	if c.Habit != "" {
		habit, err := cli.ResolveHabit(ctx.Store, c.Habit)
		if err != nil {
			return err
		}
		record, err := ctx.Store.GetCompletionRecord(habit.ID)
		if err != nil {
			return err
		}
		return dumpJSON(map[string]any{
			"habit":  habit,
			"record": record,
		})
	}

	habits, err := ctx.Store.GetAllHabits(true, true)
	if err != nil {
		return err
	}
	return dumpJSON(habits)
}

func dumpJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
