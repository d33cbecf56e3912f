package system

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/awender/ranklit/internal/backup"
	"github.com/awender/ranklit/internal/cli"
	"github.com/awender/ranklit/internal/constants"
	"github.com/awender/ranklit/internal/storage/sqlite"
	"github.com/awender/ranklit/internal/utils"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	// Check 1: DB reachable
	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	// Check 2: Backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 3: Clock/timezone sanity
	if err := checkClockTimezone(ctx); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	// Check 4: Rating bounds (only if DB is reachable)
	if dbReachable {
		if err := checkRatingBounds(ctx); err != nil {
			fmt.Printf("❌ Rating bounds: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Rating bounds: OK\n")
		}
	} else {
		fmt.Printf("⊘ Rating bounds: SKIPPED (database not reachable)\n")
	}

	// Check 5: Habit integrity (only if DB is reachable)
	if dbReachable {
		if err := checkHabitsIntegrity(ctx); err != nil {
			fmt.Printf("❌ Habit integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Habit integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Habit integrity: SKIPPED (database not reachable)\n")
	}

	// Check 6: Habit entries duplicates (only if DB is reachable)
	if dbReachable {
		if err := checkHabitEntriesDuplicates(ctx); err != nil {
			fmt.Printf("❌ Habit entries duplicates: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Habit entries duplicates: OK\n")
		}
	} else {
		fmt.Printf("⊘ Habit entries duplicates: SKIPPED (database not reachable)\n")
	}

	// Check 7: Date formats (only if DB is reachable)
	if dbReachable {
		if err := checkEntryDates(ctx); err != nil {
			fmt.Printf("❌ Date formats: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Date formats: OK\n")
		}
	} else {
		fmt.Printf("⊘ Date formats: SKIPPED (database not reachable)\n")
	}

	// Check 8: Concurrent processes (warning only)
	if err := checkConcurrentProcesses(); err != nil {
		fmt.Printf("⚠ Concurrent processes: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Concurrent processes: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	// For SQLite, also try a simple query
	if sqliteStore, ok := ctx.Store.(*sqlite.Store); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'ranklit backup create'")
	}

	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now := time.Now()

	// Check if time is in a reasonable range (after 2020 and before 2100)
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	// Verify the configured timezone resolves
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		// Settings missing means uninitialized storage, handled by other checks
		return nil
	}
	if _, err := utils.LoadLocation(settings.Timezone); err != nil {
		return fmt.Errorf("configured timezone %q is invalid: %w", settings.Timezone, err)
	}

	return nil
}

func checkRatingBounds(ctx *cli.Context) error {
	items, err := ctx.Store.GetAllItems(true, true)
	if err != nil {
		return fmt.Errorf("failed to get items: %w", err)
	}

	for _, item := range items {
		if item.Rating < constants.RatingMin || item.Rating > constants.RatingMax {
			return fmt.Errorf("item %q has rating %.1f outside [%g, %g]",
				item.Name, item.Rating, float64(constants.RatingMin), float64(constants.RatingMax))
		}
	}

	// Check for duplicate item IDs while we have the full list
	ids := make(map[string]bool)
	for _, item := range items {
		if ids[item.ID] {
			return fmt.Errorf("duplicate item ID found: %s", item.ID)
		}
		ids[item.ID] = true
	}

	return nil
}

func checkHabitsIntegrity(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return nil // Not SQLite, skip
	}

	db := sqliteStore.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	// Check for orphaned habit entries (entries referencing non-existent habits)
	var orphanedCount int
	err := db.QueryRow(`
		SELECT COUNT(*)
		FROM habit_entries he
		LEFT JOIN habits h ON he.habit_id = h.id
		WHERE h.id IS NULL AND he.deleted_at IS NULL
	`).Scan(&orphanedCount)
	if err != nil {
		return fmt.Errorf("failed to check orphaned habit entries: %w", err)
	}
	if orphanedCount > 0 {
		return fmt.Errorf("found %d orphaned habit entries (referencing non-existent habits)", orphanedCount)
	}

	return nil
}

func checkHabitEntriesDuplicates(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return nil // Not SQLite, skip
	}

	db := sqliteStore.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	var duplicateCount int
	err := db.QueryRow(`
		SELECT COUNT(*)
		FROM (
			SELECT habit_id, day, COUNT(*) as cnt
			FROM habit_entries
			WHERE deleted_at IS NULL
			GROUP BY habit_id, day
			HAVING cnt > 1
		)
	`).Scan(&duplicateCount)
	if err != nil {
		return fmt.Errorf("failed to check duplicate habit entries: %w", err)
	}
	if duplicateCount > 0 {
		return fmt.Errorf("found %d habit+day combinations with duplicate entries", duplicateCount)
	}

	return nil
}

func checkEntryDates(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return nil // Not SQLite, skip
	}

	db := sqliteStore.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	var invalidCount int
	err := db.QueryRow(`
		SELECT COUNT(*)
		FROM habit_entries
		WHERE day NOT GLOB '[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]'
	`).Scan(&invalidCount)
	if err != nil {
		return fmt.Errorf("failed to check habit entry dates: %w", err)
	}
	if invalidCount > 0 {
		return fmt.Errorf("found %d habit entries with invalid date format", invalidCount)
	}

	return nil
}

// checkConcurrentProcesses warns when another ranklit process is running,
// since concurrent writers can corrupt file-based storage.
func checkConcurrentProcesses() error {
	processes, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	self := os.Getpid()
	count := 0
	for _, p := range processes {
		if p.Pid() == self {
			continue
		}
		name := strings.TrimSuffix(p.Executable(), ".exe")
		if name == constants.AppName {
			count++
		}
	}
	if count > 0 {
		return fmt.Errorf("found %d other running %s process(es)", count, constants.AppName)
	}

	return nil
}
