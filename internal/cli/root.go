package cli

import (
	"fmt"

	"github.com/awender/ranklit/internal/backup"
	"github.com/awender/ranklit/internal/logger"
	"github.com/awender/ranklit/internal/models"
	"github.com/awender/ranklit/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ResolveItem looks up an item by ID first, then by name.
func ResolveItem(store storage.Provider, ref string) (models.Item, error) {
	item, err := store.GetItem(ref)
	if err == nil {
		return item, nil
	}
	item, err = store.GetItemByName(ref)
	if err != nil {
		return models.Item{}, fmt.Errorf("no item with ID or name %q", ref)
	}
	return item, nil
}

// ResolveHabit looks up a habit by ID first, then by name.
func ResolveHabit(store storage.Provider, ref string) (models.Habit, error) {
	habit, err := store.GetHabit(ref)
	if err == nil {
		return habit, nil
	}
	habit, err = store.GetHabitByName(ref)
	if err != nil {
		return models.Habit{}, fmt.Errorf("no habit with ID or name %q", ref)
	}
	return habit, nil
}

// FormatRating renders a rating rounded to the nearest point.
func FormatRating(rating float64) string {
	return fmt.Sprintf("%.0f", rating)
}
