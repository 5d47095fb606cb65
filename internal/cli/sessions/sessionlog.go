package sessions

import (
	"fmt"

	"github.com/julianstephens/readlit/internal/cli"
	"github.com/julianstephens/readlit/internal/utils"
)

type SessionLogCmd struct {
	Book    string `arg:"" help:"Book ID, ID prefix, or exact title."`
	Pages   int    `short:"p" help:"Pages read." required:""`
	Minutes int    `short:"m" help:"Minutes spent reading." required:""`
	Date    string `short:"d" help:"Session date (YYYY-MM-DD, default: today)."`
	Note    string `short:"n" help:"Optional free-text note."`
}

func (c *SessionLogCmd) Validate() error {
	if c.Date != "" && !utils.ValidDateFormat(c.Date) {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %s", c.Date)
	}
	return nil
}

func (c *SessionLogCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()

	book, err := ctx.ResolveBook(c.Book)
	if err != nil {
		return err
	}

	session, err := ctx.Tracker.LogSession(book.ID, c.Date, c.Pages, c.Minutes, c.Note)
	if err != nil {
		return err
	}

	if session.PagesRead != c.Pages {
		fmt.Printf("Logged %d pages (clamped from %d to the remaining pages), %d min for %s\n",
			session.PagesRead, c.Pages, session.Minutes, book.Title)
	} else {
		fmt.Printf("Logged %d pages, %d min for %s\n", session.PagesRead, session.Minutes, book.Title)
	}

	updated, _ := ctx.Tracker.Book(book.ID)
	fmt.Printf("Progress: %s [%s]\n", cli.FormatProgress(updated), cli.FormatStatus(updated.Status))
	return nil
}
