package prefs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/readlit/internal/cli"
	"github.com/julianstephens/readlit/internal/constants"
	"github.com/julianstephens/readlit/internal/models"
)

type PrefsCmd struct {
	Set  PrefsSetCmd  `cmd:"" help:"Set a preference value."`
	Show PrefsShowCmd `cmd:"" help:"Show current preferences." default:"1"`
}

type PrefsSetCmd struct {
	Key   string `arg:"" help:"Preference key (weekly_minutes_goal|daily_pages_goal|show_completed)."`
	Value string `arg:"" help:"New value."`
}

func (c *PrefsSetCmd) Run(ctx *cli.Context) error {
	if err := ctx.Tracker.SetPreference(c.Key, c.Value); err != nil {
		return err
	}

	// The tracker ignores invalid values without erroring; re-check the value
	// here so the user learns whether anything was written.
	switch c.Key {
	case constants.PrefWeeklyMinutesGoal, constants.PrefDailyPagesGoal:
		if v, err := strconv.Atoi(strings.TrimSpace(c.Value)); err != nil || v <= 0 {
			fmt.Printf("Value %q ignored for %s (must be a positive number).\n", c.Value, c.Key)
			return nil
		}
	case constants.PrefShowCompleted:
		if _, err := strconv.ParseBool(strings.TrimSpace(c.Value)); err != nil {
			fmt.Printf("Value %q ignored for %s (must be true or false).\n", c.Value, c.Key)
			return nil
		}
	}

	fmt.Printf("Set %s to %s\n", c.Key, c.Value)
	return nil
}

type PrefsShowCmd struct{}

func (c *PrefsShowCmd) Run(ctx *cli.Context) error {
	prefs := ctx.Tracker.Preferences()

	for _, key := range []string{
		constants.PrefWeeklyMinutesGoal,
		constants.PrefDailyPagesGoal,
		constants.PrefShowCompleted,
	} {
		fmt.Printf("%-20s %s\n", key, models.PreferencesToMap(prefs)[key])
	}
	return nil
}
