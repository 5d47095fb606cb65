package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/readlit/internal/backup"
	"github.com/julianstephens/readlit/internal/constants"
	"github.com/julianstephens/readlit/internal/logger"
	"github.com/julianstephens/readlit/internal/models"
	"github.com/julianstephens/readlit/internal/storage"
	"github.com/julianstephens/readlit/internal/tracker"
)

type Context struct {
	Store   storage.Provider
	Tracker *tracker.Tracker
	Debug   bool
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ResolveBook resolves a user-supplied reference to a book: exact ID first,
// then unique ID prefix, then case-insensitive exact title.
func (c *Context) ResolveBook(ref string) (models.Book, error) {
	books := c.Tracker.Books()

	for _, b := range books {
		if b.ID == ref {
			return b, nil
		}
	}

	var prefixMatches []models.Book
	for _, b := range books {
		if strings.HasPrefix(b.ID, ref) {
			prefixMatches = append(prefixMatches, b)
		}
	}
	if len(prefixMatches) == 1 {
		return prefixMatches[0], nil
	}
	if len(prefixMatches) > 1 {
		return models.Book{}, fmt.Errorf("ambiguous book reference %q matches %d books", ref, len(prefixMatches))
	}

	var titleMatches []models.Book
	for _, b := range books {
		if strings.EqualFold(b.Title, ref) {
			titleMatches = append(titleMatches, b)
		}
	}
	if len(titleMatches) == 1 {
		return titleMatches[0], nil
	}
	if len(titleMatches) > 1 {
		return models.Book{}, fmt.Errorf("ambiguous book title %q matches %d books", ref, len(titleMatches))
	}

	return models.Book{}, fmt.Errorf("book not found: %s", ref)
}

// FormatStatus renders a book status as a short display tag
func FormatStatus(status constants.BookStatus) string {
	switch status {
	case constants.StatusCompleted:
		return "done"
	case constants.StatusInProgress:
		return "reading"
	case constants.StatusNotStarted:
		return "unread"
	default:
		return string(status)
	}
}

// FormatProgress renders page progress as "current/total (pct%)"
func FormatProgress(book models.Book) string {
	pct := 0
	if book.TotalPages > 0 {
		pct = book.CurrentPage * 100 / book.TotalPages
	}
	return fmt.Sprintf("%d/%d (%d%%)", book.CurrentPage, book.TotalPages, pct)
}
