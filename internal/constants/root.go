package constants

// BookStatus represents the derived reading status of a book
type BookStatus string

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName           = "readlit"
	DefaultConfigPath = "~/.config/readlit/readlit.json"
	Version           = "v0.2.0"

	// StateKey is the namespace key under which the tracker state blob is stored
	StateKey = "reading-tracker-state-v1"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Preference defaults
	DefaultWeeklyMinutesGoal = 420
	DefaultDailyPagesGoal    = 30
	DefaultShowCompleted     = true

	// Preference keys
	PrefWeeklyMinutesGoal = "weekly_minutes_goal"
	PrefDailyPagesGoal    = "daily_pages_goal"
	PrefShowCompleted     = "show_completed"

	// WeekWindowDays is the length of the trailing window used for weekly goal progress
	WeekWindowDays = 7

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "readlit-"

	// Book Status constants
	StatusNotStarted BookStatus = "not-started"
	StatusInProgress BookStatus = "in-progress"
	StatusCompleted  BookStatus = "completed"
)

// Session States
const (
	StateBooks SessionState = iota
	StateSessions
	StateStats
	StateAddBook
	StateLogSession
	StateConfirmDelete
)
