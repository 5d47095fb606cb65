package sessions

import (
	"fmt"

	"github.com/julianstephens/readlit/internal/cli"
)

type SessionListCmd struct {
	Book  string `help:"Only show sessions for this book (ID, ID prefix, or exact title)."`
	Limit int    `help:"Maximum number of sessions to show." default:"20"`
}

func (c *SessionListCmd) Run(ctx *cli.Context) error {
	bookFilter := ""
	if c.Book != "" {
		book, err := ctx.ResolveBook(c.Book)
		if err != nil {
			return err
		}
		bookFilter = book.ID
	}

	shown := 0
	for _, sess := range ctx.Tracker.Sessions() {
		if bookFilter != "" && sess.BookID != bookFilter {
			continue
		}
		if c.Limit > 0 && shown >= c.Limit {
			break
		}

		line := fmt.Sprintf("%s  %3d pages  %3d min  %s", sess.Date, sess.PagesRead, sess.Minutes, ctx.Tracker.BookTitle(sess.BookID))
		if sess.Note != "" {
			line += fmt.Sprintf(" - %s", sess.Note)
		}
		fmt.Println(line)
		fmt.Printf("      ID: %s\n", sess.ID)
		shown++
	}

	if shown == 0 {
		fmt.Println("No sessions found.")
	}

	return nil
}
