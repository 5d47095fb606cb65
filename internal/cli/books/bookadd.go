package books

import (
	"fmt"

	"github.com/julianstephens/readlit/internal/cli"
	"github.com/julianstephens/readlit/internal/utils"
)

type BookAddCmd struct {
	Title      string `arg:"" help:"Book title."`
	Author     string `short:"a" help:"Book author." required:""`
	Pages      int    `short:"p" help:"Total page count." required:""`
	TargetDate string `short:"t" help:"Target completion date (YYYY-MM-DD), informational only."`
	Notes      string `short:"n" help:"Optional free-text notes."`
}

func (c *BookAddCmd) Validate() error {
	if c.TargetDate != "" && !utils.ValidDateFormat(c.TargetDate) {
		return fmt.Errorf("invalid target date format (expected YYYY-MM-DD): %s", c.TargetDate)
	}
	return nil
}

func (c *BookAddCmd) Run(ctx *cli.Context) error {
	book, err := ctx.Tracker.AddBook(c.Title, c.Author, c.Pages, c.TargetDate, c.Notes)
	if err != nil {
		return err
	}

	fmt.Printf("Added book: %s by %s (ID: %s)\n", book.Title, book.Author, book.ID)
	return nil
}
