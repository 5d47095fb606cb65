package tracker

import (
	"testing"
	"time"

	"github.com/julianstephens/readlit/internal/constants"
	"github.com/julianstephens/readlit/internal/models"
)

// memStore is an in-memory provider for deterministic engine tests.
type memStore struct {
	state models.TrackerState
	saves int
}

func (m *memStore) Init() error  { return nil }
func (m *memStore) Close() error { return nil }
func (m *memStore) Load() (models.TrackerState, error) {
	return m.state, nil
}
func (m *memStore) Save(state models.TrackerState) error {
	m.state = state
	m.saves++
	return nil
}
func (m *memStore) GetConfigPath() string { return "" }

func newTestTracker(t *testing.T) (*Tracker, *memStore) {
	t.Helper()
	store := &memStore{state: models.DefaultState()}
	tr := New(store)
	tr.now = func() time.Time {
		return time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)
	}
	return tr, store
}

func mustAddBook(t *testing.T, tr *Tracker, title string, pages int) models.Book {
	t.Helper()
	book, err := tr.AddBook(title, "Test Author", pages, "", "")
	if err != nil {
		t.Fatalf("AddBook(%q) failed: %v", title, err)
	}
	return book
}

func TestAddBook_Validation(t *testing.T) {
	tr, _ := newTestTracker(t)

	tests := []struct {
		name       string
		title      string
		author     string
		totalPages int
		wantErr    bool
	}{
		{"valid", "Dune", "Frank Herbert", 412, false},
		{"single page", "Pamphlet", "Anon", 1, false},
		{"empty title", "", "Frank Herbert", 412, true},
		{"whitespace title", "   ", "Frank Herbert", 412, true},
		{"empty author", "Dune", "", 412, true},
		{"zero pages", "Dune", "Frank Herbert", 0, true},
		{"negative pages", "Dune", "Frank Herbert", -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tr.AddBook(tt.title, tt.author, tt.totalPages, "", "")
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAddBook_Defaults(t *testing.T) {
	tr, _ := newTestTracker(t)

	book := mustAddBook(t, tr, "Dune", 412)

	if book.CurrentPage != 0 {
		t.Errorf("expected currentPage 0, got %d", book.CurrentPage)
	}
	if book.Status != constants.StatusNotStarted {
		t.Errorf("expected status %s, got %s", constants.StatusNotStarted, book.Status)
	}
	if book.StartedAt != "2026-08-28" {
		t.Errorf("expected startedAt 2026-08-28, got %s", book.StartedAt)
	}
	if book.ID == "" {
		t.Error("expected non-empty book ID")
	}
}

func TestAddBook_NewestFirst(t *testing.T) {
	tr, _ := newTestTracker(t)

	mustAddBook(t, tr, "First", 100)
	mustAddBook(t, tr, "Second", 100)

	books := tr.Books()
	if len(books) != 2 {
		t.Fatalf("expected 2 books, got %d", len(books))
	}
	if books[0].Title != "Second" {
		t.Errorf("expected newest book first, got %q", books[0].Title)
	}
}

func TestLogSession_Validation(t *testing.T) {
	tr, _ := newTestTracker(t)
	book := mustAddBook(t, tr, "Dune", 412)

	if _, err := tr.LogSession("no-such-book", "", 10, 30, ""); err == nil {
		t.Error("expected error for unknown book")
	}
	if _, err := tr.LogSession(book.ID, "", 0, 30, ""); err == nil {
		t.Error("expected error for zero pages")
	}
	if _, err := tr.LogSession(book.ID, "", 10, 0, ""); err == nil {
		t.Error("expected error for zero minutes")
	}
	if _, err := tr.LogSession(book.ID, "28-08-2026", 10, 30, ""); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestLogSession_AdvancesBook(t *testing.T) {
	tr, _ := newTestTracker(t)
	book := mustAddBook(t, tr, "Dune", 412)

	sess, err := tr.LogSession(book.ID, "", 50, 60, "")
	if err != nil {
		t.Fatalf("LogSession failed: %v", err)
	}
	if sess.PagesRead != 50 {
		t.Errorf("expected 50 pages stored, got %d", sess.PagesRead)
	}

	got, _ := tr.Book(book.ID)
	if got.CurrentPage != 50 {
		t.Errorf("expected currentPage 50, got %d", got.CurrentPage)
	}
	if got.Status != constants.StatusInProgress {
		t.Errorf("expected status %s, got %s", constants.StatusInProgress, got.Status)
	}
}

func TestLogSession_ClampsToRemaining(t *testing.T) {
	tr, _ := newTestTracker(t)
	book := mustAddBook(t, tr, "Dune", 100)

	if err := tr.SetBookProgress(book.ID, 90); err != nil {
		t.Fatalf("SetBookProgress failed: %v", err)
	}

	sess, err := tr.LogSession(book.ID, "", 50, 30, "")
	if err != nil {
		t.Fatalf("LogSession failed: %v", err)
	}
	if sess.PagesRead != 10 {
		t.Errorf("expected clamped pagesRead 10, got %d", sess.PagesRead)
	}

	got, _ := tr.Book(book.ID)
	if got.CurrentPage != 100 {
		t.Errorf("expected currentPage clamped to 100, got %d", got.CurrentPage)
	}
	if got.Status != constants.StatusCompleted {
		t.Errorf("expected status %s, got %s", constants.StatusCompleted, got.Status)
	}
}

func TestLogSession_FullBookKeepsRawPages(t *testing.T) {
	tr, _ := newTestTracker(t)
	book := mustAddBook(t, tr, "Dune", 100)

	if err := tr.SetBookProgress(book.ID, 100); err != nil {
		t.Fatalf("SetBookProgress failed: %v", err)
	}

	// Book already full: raw value is stored instead of clamping to zero
	sess, err := tr.LogSession(book.ID, "", 25, 30, "")
	if err != nil {
		t.Fatalf("LogSession failed: %v", err)
	}
	if sess.PagesRead != 25 {
		t.Errorf("expected raw pagesRead 25 on full book, got %d", sess.PagesRead)
	}

	got, _ := tr.Book(book.ID)
	if got.CurrentPage != 100 {
		t.Errorf("expected currentPage to stay 100, got %d", got.CurrentPage)
	}
}

func TestLogSession_SortedDescendingByDate(t *testing.T) {
	tr, _ := newTestTracker(t)
	book := mustAddBook(t, tr, "Dune", 412)

	for _, date := range []string{"2026-08-20", "2026-08-26", "2026-08-23"} {
		if _, err := tr.LogSession(book.ID, date, 5, 10, ""); err != nil {
			t.Fatalf("LogSession(%s) failed: %v", date, err)
		}
	}

	sessions := tr.Sessions()
	want := []string{"2026-08-26", "2026-08-23", "2026-08-20"}
	for i, date := range want {
		if sessions[i].Date != date {
			t.Errorf("session %d: expected date %s, got %s", i, date, sessions[i].Date)
		}
	}
}

func TestRemoveSession_RestoresBook(t *testing.T) {
	tr, _ := newTestTracker(t)
	book := mustAddBook(t, tr, "Dune", 412)

	if _, err := tr.LogSession(book.ID, "", 30, 40, ""); err != nil {
		t.Fatalf("LogSession failed: %v", err)
	}
	before, _ := tr.Book(book.ID)

	sess, err := tr.LogSession(book.ID, "", 50, 60, "")
	if err != nil {
		t.Fatalf("LogSession failed: %v", err)
	}

	tr.RemoveSession(sess.ID)

	after, _ := tr.Book(book.ID)
	if after.CurrentPage != before.CurrentPage {
		t.Errorf("expected currentPage restored to %d, got %d", before.CurrentPage, after.CurrentPage)
	}
	if len(tr.Sessions()) != 1 {
		t.Errorf("expected 1 session remaining, got %d", len(tr.Sessions()))
	}
}

func TestRemoveSession_ReversesStoredClampedValue(t *testing.T) {
	tr, _ := newTestTracker(t)
	book := mustAddBook(t, tr, "Dune", 100)

	if err := tr.SetBookProgress(book.ID, 90); err != nil {
		t.Fatalf("SetBookProgress failed: %v", err)
	}

	// Stored as 10, not the raw 50
	sess, err := tr.LogSession(book.ID, "", 50, 30, "")
	if err != nil {
		t.Fatalf("LogSession failed: %v", err)
	}

	tr.RemoveSession(sess.ID)

	got, _ := tr.Book(book.ID)
	if got.CurrentPage != 90 {
		t.Errorf("expected currentPage 90 after removal, got %d", got.CurrentPage)
	}
}

func TestRemoveSession_UnknownIDIsNoop(t *testing.T) {
	tr, store := newTestTracker(t)
	book := mustAddBook(t, tr, "Dune", 412)
	if _, err := tr.LogSession(book.ID, "", 10, 20, ""); err != nil {
		t.Fatalf("LogSession failed: %v", err)
	}
	savesBefore := store.saves

	tr.RemoveSession("no-such-session")

	if len(tr.Sessions()) != 1 {
		t.Errorf("expected session list untouched, got %d sessions", len(tr.Sessions()))
	}
	if store.saves != savesBefore {
		t.Error("expected no persistence write for unknown session ID")
	}
}

func TestSetBookProgress_StatusTransitions(t *testing.T) {
	tr, _ := newTestTracker(t)
	book := mustAddBook(t, tr, "Dune", 100)

	tests := []struct {
		page       int
		wantPage   int
		wantStatus constants.BookStatus
	}{
		{50, 50, constants.StatusInProgress},
		{0, 0, constants.StatusNotStarted},
		{100, 100, constants.StatusCompleted},
		{150, 100, constants.StatusCompleted},
		{-10, 0, constants.StatusNotStarted},
	}

	for _, tt := range tests {
		if err := tr.SetBookProgress(book.ID, tt.page); err != nil {
			t.Fatalf("SetBookProgress(%d) failed: %v", tt.page, err)
		}
		got, _ := tr.Book(book.ID)
		if got.CurrentPage != tt.wantPage {
			t.Errorf("SetBookProgress(%d): expected page %d, got %d", tt.page, tt.wantPage, got.CurrentPage)
		}
		if got.Status != tt.wantStatus {
			t.Errorf("SetBookProgress(%d): expected status %s, got %s", tt.page, tt.wantStatus, got.Status)
		}
	}
}

func TestSetPreference(t *testing.T) {
	tr, _ := newTestTracker(t)

	if err := tr.SetPreference(constants.PrefWeeklyMinutesGoal, "300"); err != nil {
		t.Fatalf("SetPreference failed: %v", err)
	}
	if got := tr.Preferences().WeeklyMinutesGoal; got != 300 {
		t.Errorf("expected weekly minutes goal 300, got %d", got)
	}

	// Non-positive and unparseable values silently leave state untouched
	for _, bad := range []string{"0", "-20", "abc"} {
		if err := tr.SetPreference(constants.PrefDailyPagesGoal, bad); err != nil {
			t.Errorf("SetPreference(%q) returned error: %v", bad, err)
		}
	}
	if got := tr.Preferences().DailyPagesGoal; got != constants.DefaultDailyPagesGoal {
		t.Errorf("expected daily pages goal untouched at %d, got %d", constants.DefaultDailyPagesGoal, got)
	}

	if err := tr.SetPreference(constants.PrefShowCompleted, "false"); err != nil {
		t.Fatalf("SetPreference failed: %v", err)
	}
	if tr.Preferences().ShowCompleted {
		t.Error("expected showCompleted false")
	}

	if err := tr.SetPreference("bogus_key", "1"); err == nil {
		t.Error("expected error for unknown preference key")
	}
}

func TestSetPreference_ShowCompletedParsing(t *testing.T) {
	tr, _ := newTestTracker(t)

	// Non-boolean strings silently leave the toggle untouched, they are not
	// coerced to false
	for _, bad := range []string{"bogus", "yes", ""} {
		if err := tr.SetPreference(constants.PrefShowCompleted, bad); err != nil {
			t.Errorf("SetPreference(%q) returned error: %v", bad, err)
		}
		if !tr.Preferences().ShowCompleted {
			t.Errorf("SetPreference(%q) flipped showCompleted", bad)
		}
	}

	// Any strconv.ParseBool spelling is accepted
	for _, tt := range []struct {
		value string
		want  bool
	}{
		{"false", false},
		{"TRUE", true},
		{"0", false},
		{"1", true},
	} {
		if err := tr.SetPreference(constants.PrefShowCompleted, tt.value); err != nil {
			t.Fatalf("SetPreference(%q) failed: %v", tt.value, err)
		}
		if got := tr.Preferences().ShowCompleted; got != tt.want {
			t.Errorf("SetPreference(%q): expected showCompleted %v, got %v", tt.value, tt.want, got)
		}
	}
}

func TestBookTitle_UnknownBook(t *testing.T) {
	tr, _ := newTestTracker(t)

	if got := tr.BookTitle("orphaned"); got != "Unknown book" {
		t.Errorf("expected %q, got %q", "Unknown book", got)
	}
}

func TestMutationsWriteThrough(t *testing.T) {
	tr, store := newTestTracker(t)

	book := mustAddBook(t, tr, "Dune", 412)
	if store.saves != 1 {
		t.Errorf("expected 1 save after AddBook, got %d", store.saves)
	}

	if _, err := tr.LogSession(book.ID, "", 10, 20, ""); err != nil {
		t.Fatalf("LogSession failed: %v", err)
	}
	if store.saves != 2 {
		t.Errorf("expected 2 saves after LogSession, got %d", store.saves)
	}

	if len(store.state.Books) != 1 || len(store.state.Sessions) != 1 {
		t.Errorf("expected persisted state to mirror memory, got %d books / %d sessions",
			len(store.state.Books), len(store.state.Sessions))
	}
}
