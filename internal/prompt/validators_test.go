package prompt

import (
	"os"
	"path/filepath"
	"testing"
)

func TestColorValidator(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false},
		{"#0eca2d", false},
		{"#FFF", false},
		{"0eca2d", true},
		{"#12345", true},
		{"green", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ColorValidator(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ColorValidator(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestYearValidator(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false},
		{"1403", false},
		{"0", true},
		{"10000", true},
		{"soon", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := YearValidator(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("YearValidator(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestFileValidator(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "holidays.ics")
	if err := os.WriteFile(file, []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"), 0o600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if err := FileValidator(""); err != nil {
		t.Errorf("Expected empty input to be allowed, got %v", err)
	}
	if err := FileValidator(file); err != nil {
		t.Errorf("Expected %s to be valid, got %v", file, err)
	}
	if err := FileValidator(dir); err == nil {
		t.Error("Expected a directory to be rejected")
	}
	if err := FileValidator(filepath.Join(dir, "missing.ics")); err == nil {
		t.Error("Expected a missing file to be rejected")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/holidays.ics")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if want := filepath.Join(home, "holidays.ics"); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}

	if got, _ := ExpandHome("/tmp/x.ics"); got != "/tmp/x.ics" {
		t.Errorf("Expected absolute paths unchanged, got %s", got)
	}
}
