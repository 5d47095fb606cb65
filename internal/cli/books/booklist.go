package books

import (
	"fmt"

	"github.com/julianstephens/readlit/internal/cli"
	"github.com/julianstephens/readlit/internal/constants"
)

type BookListCmd struct {
	All bool `help:"Include completed books even when the show-completed preference is off."`
}

func (c *BookListCmd) Run(ctx *cli.Context) error {
	books := ctx.Tracker.Books()
	showCompleted := c.All || ctx.Tracker.Preferences().ShowCompleted

	shown := 0
	for _, book := range books {
		if !showCompleted && book.Status == constants.StatusCompleted {
			continue
		}

		line := fmt.Sprintf("[%s] %s by %s - %s", cli.FormatStatus(book.Status), book.Title, book.Author, cli.FormatProgress(book))
		if book.TargetDate != "" {
			line += fmt.Sprintf(" (target %s)", book.TargetDate)
		}
		fmt.Println(line)
		fmt.Printf("      ID: %s\n", book.ID)
		shown++
	}

	if shown == 0 {
		fmt.Println("No books found.")
	}

	return nil
}
