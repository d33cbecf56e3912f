package items

import (
	"fmt"

	"github.com/awender/ranklit/internal/cli"
)

type ItemArchiveCmd struct {
	Item string `arg:"" help:"Item ID or name."`
}

func (c *ItemArchiveCmd) Run(ctx *cli.Context) error {
	item, err := cli.ResolveItem(ctx.Store, c.Item)
	if err != nil {
		return err
	}
	if err := ctx.Store.ArchiveItem(item.ID); err != nil {
		return err
	}
	fmt.Printf("Archived item: %s\n", item.Name)
	return nil
}

type ItemUnarchiveCmd struct {
	Item string `arg:"" help:"Item ID or name."`
}

func (c *ItemUnarchiveCmd) Run(ctx *cli.Context) error {
	item, err := cli.ResolveItem(ctx.Store, c.Item)
	if err != nil {
		return err
	}
	if err := ctx.Store.UnarchiveItem(item.ID); err != nil {
		return err
	}
	fmt.Printf("Unarchived item: %s\n", item.Name)
	return nil
}
