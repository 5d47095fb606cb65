package models

import "github.com/julianstephens/readlit/internal/constants"

// Book represents a single tracked book
type Book struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Author      string               `json:"author"`
	TotalPages  int                  `json:"totalPages"`
	CurrentPage int                  `json:"currentPage"`
	Status      constants.BookStatus `json:"status"`
	StartedAt   string               `json:"startedAt"`            // YYYY-MM-DD format
	TargetDate  string               `json:"targetDate,omitempty"` // YYYY-MM-DD format
	Notes       string               `json:"notes,omitempty"`
}

// StatusFor derives the reading status from page counts. Status is never
// stored independently of this function's result.
func StatusFor(currentPage, totalPages int) constants.BookStatus {
	switch {
	case currentPage >= totalPages:
		return constants.StatusCompleted
	case currentPage == 0:
		return constants.StatusNotStarted
	default:
		return constants.StatusInProgress
	}
}

// SetProgress updates the current page, clamped to [0, TotalPages], and
// recomputes the derived status.
func (b *Book) SetProgress(page int) {
	if page < 0 {
		page = 0
	}
	if page > b.TotalPages {
		page = b.TotalPages
	}
	b.CurrentPage = page
	b.Status = StatusFor(b.CurrentPage, b.TotalPages)
}

// RemainingPages returns the number of unread pages, never negative.
func (b *Book) RemainingPages() int {
	if b.CurrentPage >= b.TotalPages {
		return 0
	}
	return b.TotalPages - b.CurrentPage
}
