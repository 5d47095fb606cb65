package validation

import "testing"

func TestBookInput(t *testing.T) {
	tests := []struct {
		name       string
		title      string
		author     string
		totalPages int
		wantErr    bool
	}{
		{"valid", "Dune", "Frank Herbert", 412, false},
		{"one page", "Pamphlet", "Anon", 1, false},
		{"empty title", "", "Frank Herbert", 412, true},
		{"whitespace only title", "  \t ", "Frank Herbert", 412, true},
		{"empty author", "Dune", "   ", 412, true},
		{"zero pages", "Dune", "Frank Herbert", 0, true},
		{"negative pages", "Dune", "Frank Herbert", -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := BookInput(tt.title, tt.author, tt.totalPages)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if err != nil && !IsValidationError(err) {
				t.Errorf("expected a validation error, got %T", err)
			}
		})
	}
}

func TestSessionInput(t *testing.T) {
	if err := SessionInput(10, 30); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := SessionInput(0, 30); err == nil {
		t.Error("expected error for zero pages")
	}
	if err := SessionInput(10, -1); err == nil {
		t.Error("expected error for negative minutes")
	}
}

func TestDate(t *testing.T) {
	if err := Date("2026-08-28"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := Date(""); err != nil {
		t.Errorf("empty date should be allowed, got: %v", err)
	}
	for _, bad := range []string{"28-08-2026", "2026/08/28", "tomorrow", "2026-13-01"} {
		if err := Date(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
