package system

import (
	"fmt"
	"os"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/readlit/internal/backup"
	"github.com/julianstephens/readlit/internal/cli"
	"github.com/julianstephens/readlit/internal/constants"
	"github.com/julianstephens/readlit/internal/models"
	"github.com/julianstephens/readlit/internal/utils"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: Storage readable
	if _, err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Storage readable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage readable: OK\n")
	}

	// Check 2: State consistency (derived status, session references)
	if problems := checkStateConsistency(ctx); len(problems) > 0 {
		fmt.Printf("⚠ State consistency: WARNING\n")
		for _, p := range problems {
			fmt.Printf("   %s\n", p)
		}
	} else {
		fmt.Printf("✓ State consistency: OK\n")
	}

	// Check 3: Backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 4: Single writer (no concurrent readlit process)
	if err := checkSingleProcess(); err != nil {
		fmt.Printf("⚠ Single process: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Single process: OK\n")
	}

	// Check 5: Clock sanity
	if err := checkClock(); err != nil {
		fmt.Printf("⚠ Clock sanity: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Clock sanity: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All diagnostics passed.")
	return nil
}

// checkStateConsistency verifies the derived-field invariants: status follows
// page counts and session references resolve. Orphaned sessions are reported
// but are not errors; display paths tolerate them.
func checkStateConsistency(ctx *cli.Context) []string {
	var problems []string

	for _, b := range ctx.Tracker.Books() {
		if want := models.StatusFor(b.CurrentPage, b.TotalPages); b.Status != want {
			problems = append(problems, fmt.Sprintf("book %q: status %s does not match pages %d/%d (expected %s)",
				b.Title, b.Status, b.CurrentPage, b.TotalPages, want))
		}
		if b.CurrentPage < 0 || b.CurrentPage > b.TotalPages {
			problems = append(problems, fmt.Sprintf("book %q: current page %d outside [0, %d]",
				b.Title, b.CurrentPage, b.TotalPages))
		}
	}

	for _, sess := range ctx.Tracker.Sessions() {
		if _, ok := ctx.Tracker.Book(sess.BookID); !ok {
			problems = append(problems, fmt.Sprintf("session %s references unknown book %s (shown as \"Unknown book\")",
				sess.ID, sess.BookID))
		}
		if !utils.ValidDateFormat(sess.Date) {
			problems = append(problems, fmt.Sprintf("session %s has unparseable date %q (excluded from day-based stats)",
				sess.ID, sess.Date))
		}
	}

	return problems
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found; run 'readlit backup create'")
	}
	return nil
}

// checkSingleProcess scans the process table for another running readlit
// instance. The storage layer assumes a single writer.
func checkSingleProcess() error {
	procs, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("could not inspect process table: %w", err)
	}

	self := os.Getpid()
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		if strings.HasPrefix(p.Executable(), constants.AppName) {
			return fmt.Errorf("another %s process is running (pid %d); concurrent writers can lose data",
				constants.AppName, p.Pid())
		}
	}
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock looks wrong (%s); streaks and weekly windows depend on it", now.Format(time.RFC3339))
	}
	return nil
}
