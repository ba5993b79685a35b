package utils

import (
	"testing"

	"crewly/models"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"9:30", 570, false},
		{"23:59", 1439, false},
		{" 10:15 ", 615, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"-1:00", 0, true},
		{"noon", 0, true},
		{"12", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClock(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "12:00 AM"},
		{540, "9:00 AM"},
		{720, "12:00 PM"},
		{750, "12:30 PM"},
		{1020, "5:00 PM"},
		{1439, "11:59 PM"},
		{-1, "Invalid Time"},
		{1440, "Invalid Time"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.in); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatIntervalLabel(t *testing.T) {
	got := FormatIntervalLabel(models.Interval{Start: 540, End: 630})
	if got != "9:00 AM - 10:30 AM" {
		t.Errorf("FormatIntervalLabel = %q", got)
	}
}
