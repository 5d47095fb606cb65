package models

// ReadingSession represents a single logged reading event tied to one book
type ReadingSession struct {
	ID        string `json:"id"`
	BookID    string `json:"bookId"`
	Date      string `json:"date"` // YYYY-MM-DD format
	PagesRead int    `json:"pagesRead"`
	Minutes   int    `json:"minutes"`
	Note      string `json:"note,omitempty"`
}
