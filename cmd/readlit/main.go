package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/readlit/internal/cli"
	"github.com/julianstephens/readlit/internal/cli/backups"
	"github.com/julianstephens/readlit/internal/cli/books"
	"github.com/julianstephens/readlit/internal/cli/prefs"
	"github.com/julianstephens/readlit/internal/cli/sessions"
	"github.com/julianstephens/readlit/internal/cli/system"
	"github.com/julianstephens/readlit/internal/constants"
	"github.com/julianstephens/readlit/internal/errors"
	"github.com/julianstephens/readlit/internal/logger"
	"github.com/julianstephens/readlit/internal/storage"
	"github.com/julianstephens/readlit/internal/tracker"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Data file path. A .db extension selects SQLite storage, anything else JSON." default:"~/.config/readlit/readlit.json"`
	Debug   bool   `help:"Enable debug logging."`

	Init   system.InitCmd   `cmd:"" help:"Initialize readlit storage."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Tui    system.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Stats  cli.StatsCmd     `cmd:"" help:"Show reading statistics."`
	Book   struct {
		Add      books.BookAddCmd      `cmd:"" help:"Add a new book."`
		List     books.BookListCmd     `cmd:"" help:"List books."`
		Progress books.BookProgressCmd `cmd:"" help:"Manually set a book's current page."`
	} `cmd:"" help:"Manage books."`
	Session struct {
		Log    sessions.SessionLogCmd    `cmd:"" help:"Log a reading session."`
		List   sessions.SessionListCmd   `cmd:"" help:"List reading sessions."`
		Delete sessions.SessionDeleteCmd `cmd:"" help:"Delete a session and roll back its effect."`
	} `cmd:"" help:"Manage reading sessions."`
	Prefs  prefs.PrefsCmd `cmd:"" help:"Manage goal and display preferences."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage data file backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal reading tracker: books, sessions, streaks, and goals"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		errors.Fatal(err)
	}

	// Select storage by file extension
	var store storage.Provider
	if strings.HasSuffix(configPath, ".db") {
		store = storage.NewSQLiteStore(configPath)
	} else {
		store = storage.NewJSONStore(configPath)
	}
	defer store.Close()

	appCtx := &cli.Context{
		Store:   store,
		Tracker: tracker.New(store),
		Debug:   CLI.Debug,
	}

	errors.Fatal(ctx.Run(appCtx))
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
