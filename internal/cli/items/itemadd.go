package items

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/awender/ranklit/internal/cli"
	"github.com/awender/ranklit/internal/constants"
	"github.com/awender/ranklit/internal/models"
	"github.com/awender/ranklit/internal/rating"
)

type ItemAddCmd struct {
	Name   string   `arg:"" help:"Item name."`
	Rating *float64 `short:"r" help:"Initial rating (defaults to 1200)."`
}

func (c *ItemAddCmd) Run(ctx *cli.Context) error {
	// Check if item with same name already exists
	if _, err := ctx.Store.GetItemByName(c.Name); err == nil {
		return fmt.Errorf("item with name %q already exists", c.Name)
	}

	initial := float64(constants.RatingDefault)
	if c.Rating != nil {
		v, err := rating.NewValue(*c.Rating)
		if err != nil {
			return err
		}
		initial = float64(v)
	}

	item := models.Item{
		ID:        uuid.New().String(),
		Name:      c.Name,
		Rating:    initial,
		CreatedAt: time.Now(),
	}

	if err := ctx.Store.AddItem(item); err != nil {
		return err
	}

	fmt.Printf("Added item: %s (rating %s)\n", c.Name, cli.FormatRating(initial))
	return nil
}
