package items

import (
	"fmt"

	"github.com/awender/ranklit/internal/cli"
)

type ItemDeleteCmd struct {
	Item string `arg:"" help:"Item ID or name."`
}

func (c *ItemDeleteCmd) Run(ctx *cli.Context) error {
	item, err := cli.ResolveItem(ctx.Store, c.Item)
	if err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.DeleteItem(item.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted item: %s (restore with 'ranklit restore item %s')\n", item.Name, item.ID)
	return nil
}

type ItemRestoreCmd struct {
	ID string `arg:"" help:"Item ID."`
}

func (c *ItemRestoreCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.RestoreItem(c.ID); err != nil {
		return err
	}
	fmt.Printf("Restored item: %s\n", c.ID)
	return nil
}
