package books

import (
	"fmt"

	"github.com/julianstephens/readlit/internal/cli"
)

type BookProgressCmd struct {
	Book string `arg:"" help:"Book ID, ID prefix, or exact title."`
	Page int    `short:"p" help:"Current page to set (manual override, clamped to the book's page range)." required:""`
}

func (c *BookProgressCmd) Run(ctx *cli.Context) error {
	book, err := ctx.ResolveBook(c.Book)
	if err != nil {
		return err
	}

	if err := ctx.Tracker.SetBookProgress(book.ID, c.Page); err != nil {
		return err
	}

	updated, _ := ctx.Tracker.Book(book.ID)
	fmt.Printf("Set progress for %s: %s [%s]\n", updated.Title, cli.FormatProgress(updated), cli.FormatStatus(updated.Status))
	return nil
}
