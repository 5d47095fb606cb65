package tracker

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/readlit/internal/constants"
	"github.com/julianstephens/readlit/internal/logger"
	"github.com/julianstephens/readlit/internal/models"
	"github.com/julianstephens/readlit/internal/storage"
	"github.com/julianstephens/readlit/internal/utils"
	"github.com/julianstephens/readlit/internal/validation"
)

// Tracker is the state engine: it owns the full in-memory tracker state and
// mirrors it to a storage provider after every successful mutation. Once
// hydrated, the in-memory state is the source of truth; save failures are
// logged but never fail the mutation.
//
// Tracker is not safe for concurrent use; exactly one logical actor issues
// operations serially.
type Tracker struct {
	state models.TrackerState
	store storage.Provider

	// now is swappable for deterministic tests
	now func() time.Time
}

// New creates a Tracker hydrated from the given provider. Load failures are
// recoverable: the engine starts from the default state.
func New(store storage.Provider) *Tracker {
	state, err := store.Load()
	if err != nil {
		logger.Warn("Failed to load tracker state, starting from defaults", "error", err)
		state = models.DefaultState()
	}
	state.Normalize()

	return &Tracker{
		state: state,
		store: store,
		now:   time.Now,
	}
}

// State returns a copy of the current tracker state.
func (t *Tracker) State() models.TrackerState {
	state := t.state
	state.Books = append([]models.Book(nil), t.state.Books...)
	state.Sessions = append([]models.ReadingSession(nil), t.state.Sessions...)
	return state
}

// Books returns all books, newest first.
func (t *Tracker) Books() []models.Book {
	return append([]models.Book(nil), t.state.Books...)
}

// Sessions returns all sessions, sorted descending by date.
func (t *Tracker) Sessions() []models.ReadingSession {
	return append([]models.ReadingSession(nil), t.state.Sessions...)
}

// Preferences returns the current preferences.
func (t *Tracker) Preferences() models.Preferences {
	return t.state.Preferences
}

// Book looks up a book by ID.
func (t *Tracker) Book(id string) (models.Book, bool) {
	for _, b := range t.state.Books {
		if b.ID == id {
			return b, true
		}
	}
	return models.Book{}, false
}

// BookTitle resolves a book ID to its title for display paths. Orphaned
// references render as "Unknown book" rather than erroring.
func (t *Tracker) BookTitle(id string) string {
	if b, ok := t.Book(id); ok {
		return b.Title
	}
	return "Unknown book"
}

// AddBook creates a new book and prepends it to the book list. Target date
// and notes are optional.
func (t *Tracker) AddBook(title, author string, totalPages int, targetDate, notes string) (models.Book, error) {
	if err := validation.BookInput(title, author, totalPages); err != nil {
		return models.Book{}, err
	}
	if err := validation.Date(targetDate); err != nil {
		return models.Book{}, err
	}

	book := models.Book{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(title),
		Author:      strings.TrimSpace(author),
		TotalPages:  totalPages,
		CurrentPage: 0,
		Status:      constants.StatusNotStarted,
		StartedAt:   utils.FormatDate(t.now()),
		TargetDate:  targetDate,
		Notes:       notes,
	}

	t.state.Books = append([]models.Book{book}, t.state.Books...)
	t.persist()
	return book, nil
}

// LogSession records a reading session against a book and advances the book's
// progress by the effective page count. Pages are clamped so the book never
// exceeds its total, except when the book is already full: then the raw value
// is kept to preserve session history fidelity.
func (t *Tracker) LogSession(bookID, date string, pagesRead, minutes int, note string) (models.ReadingSession, error) {
	book := t.findBook(bookID)
	if book == nil {
		return models.ReadingSession{}, validation.Errorf("book not found: %s", bookID)
	}
	if err := validation.SessionInput(pagesRead, minutes); err != nil {
		return models.ReadingSession{}, err
	}
	if date == "" {
		date = utils.FormatDate(t.now())
	}
	if err := validation.Date(date); err != nil {
		return models.ReadingSession{}, err
	}

	effectivePages := pagesRead
	if remaining := book.RemainingPages(); remaining > 0 && effectivePages > remaining {
		effectivePages = remaining
	}

	session := models.ReadingSession{
		ID:        uuid.New().String(),
		BookID:    bookID,
		Date:      date,
		PagesRead: effectivePages,
		Minutes:   minutes,
		Note:      note,
	}

	t.state.Sessions = append([]models.ReadingSession{session}, t.state.Sessions...)
	t.sortSessions()

	book.SetProgress(book.CurrentPage + effectivePages)

	t.persist()
	return session, nil
}

// RemoveSession deletes a session and reverses its effect on the owning book
// using the stored page count. Unknown IDs are a no-op, not an error.
func (t *Tracker) RemoveSession(sessionID string) {
	idx := -1
	for i, sess := range t.state.Sessions {
		if sess.ID == sessionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	session := t.state.Sessions[idx]
	t.state.Sessions = append(t.state.Sessions[:idx], t.state.Sessions[idx+1:]...)

	if book := t.findBook(session.BookID); book != nil {
		book.SetProgress(book.CurrentPage - session.PagesRead)
	}

	t.persist()
}

// SetBookProgress directly overrides a book's current page for manual
// correction. The session ledger is intentionally not reconciled; the
// divergence is logged for traceability.
func (t *Tracker) SetBookProgress(bookID string, page int) error {
	book := t.findBook(bookID)
	if book == nil {
		return validation.Errorf("book not found: %s", bookID)
	}

	book.SetProgress(page)
	logger.Debug("Manual progress override, session ledger not reconciled",
		"book", bookID, "page", book.CurrentPage)

	t.persist()
	return nil
}

// SetPreference updates one preference by key. Invalid values are silently
// ignored: non-positive or unparseable numbers for the goal fields,
// non-boolean strings for the toggle. Unknown keys are rejected.
func (t *Tracker) SetPreference(key, value string) error {
	switch key {
	case constants.PrefWeeklyMinutesGoal, constants.PrefDailyPagesGoal:
		v, err := parsePositiveInt(value)
		if err != nil {
			// fail silently, no mutation
			return nil
		}
		if key == constants.PrefWeeklyMinutesGoal {
			t.state.Preferences.WeeklyMinutesGoal = v
		} else {
			t.state.Preferences.DailyPagesGoal = v
		}
	case constants.PrefShowCompleted:
		v, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			// fail silently, no mutation
			return nil
		}
		t.state.Preferences.ShowCompleted = v
	default:
		return validation.Errorf("unknown preference: %s", key)
	}

	t.persist()
	return nil
}

// Stats computes the derived statistics bundle from the current state.
func (t *Tracker) Stats() Statistics {
	return ComputeStats(t.state, t.now())
}

func (t *Tracker) findBook(id string) *models.Book {
	for i := range t.state.Books {
		if t.state.Books[i].ID == id {
			return &t.state.Books[i]
		}
	}
	return nil
}

// sortSessions keeps the session list sorted descending by date. The sort is
// stable so sessions on the same date keep last-write order.
func (t *Tracker) sortSessions() {
	sort.SliceStable(t.state.Sessions, func(i, j int) bool {
		return t.state.Sessions[i].Date > t.state.Sessions[j].Date
	})
}

// persist mirrors the in-memory state through the provider. The write is
// fire-and-forget: the in-memory state is already the source of truth.
func (t *Tracker) persist() {
	if err := t.store.Save(t.state); err != nil {
		logger.Warn("Failed to persist tracker state", "error", err)
	}
}

func parsePositiveInt(value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, validation.Errorf("value must be positive, got %d", v)
	}
	return v, nil
}
