package sessions

import (
	"fmt"

	"github.com/julianstephens/readlit/internal/cli"
)

type SessionDeleteCmd struct {
	ID string `arg:"" help:"Session ID to delete."`
}

func (c *SessionDeleteCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()

	// Removal is a no-op for unknown IDs; report which case applied
	sessions := ctx.Tracker.Sessions()
	found := false
	for _, sess := range sessions {
		if sess.ID == c.ID {
			found = true
			break
		}
	}

	ctx.Tracker.RemoveSession(c.ID)

	if found {
		fmt.Printf("Deleted session %s and reversed its effect on the book's progress.\n", c.ID)
	} else {
		fmt.Printf("No session with ID %s.\n", c.ID)
	}
	return nil
}
