package items

import (
	"fmt"

	"github.com/awender/ranklit/internal/cli"
	"github.com/awender/ranklit/internal/utils"
)

type ItemListCmd struct {
	Archived bool `help:"Include archived items."`
	Deleted  bool `help:"Include deleted items."`
	ShowIDs  bool `help:"Show item IDs." name:"show-ids"`
}

func (c *ItemListCmd) Run(ctx *cli.Context) error {
	items, err := ctx.Store.GetAllItems(c.Archived, c.Deleted)
	if err != nil {
		return fmt.Errorf("failed to get items: %w", err)
	}
	if len(items) == 0 {
		fmt.Println("No items found")
		return nil
	}

	fmt.Println("Ranking:")
	for i, item := range items {
		status := ""
		if item.DeletedAt != nil {
			status = " [DELETED]"
		} else if item.ArchivedAt != nil {
			status = " [ARCHIVED]"
		}

		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", item.ID)
		}

		lastSelected := "never"
		if item.LastSelectedAt != nil {
			lastSelected = utils.FormatDay(*item.LastSelectedAt)
		}

		fmt.Printf("  %2d. %s%s%s - %s (%d duels, last selected %s)\n",
			i+1, item.Name, idStr, status,
			cli.FormatRating(item.Rating), item.DuelCount, lastSelected)
	}

	return nil
}
