package schedule

import (
	"reflect"
	"testing"

	"crewly/models"
)

func iv(start, end int) models.Interval {
	return models.Interval{Start: start, End: end}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b models.Interval
		want bool
	}{
		{"disjoint", iv(540, 600), iv(600, 660), false},
		{"partial overlap", iv(540, 630), iv(600, 660), true},
		{"contained", iv(540, 720), iv(600, 660), true},
		{"identical", iv(540, 600), iv(540, 600), true},
		{"zero-length never overlaps", iv(600, 600), iv(540, 660), false},
		{"zero-length against itself", iv(600, 600), iv(600, 600), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Symmetry holds for every pair.
			if Overlaps(tt.a, tt.b) != Overlaps(tt.b, tt.a) {
				t.Errorf("Overlaps(%v, %v) is not symmetric", tt.a, tt.b)
			}
		})
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		name         string
		outer, inner models.Interval
		want         bool
	}{
		{"strictly inside", iv(540, 1020), iv(600, 660), true},
		{"equal bounds", iv(540, 1020), iv(540, 1020), true},
		{"starts before", iv(540, 1020), iv(480, 600), false},
		{"ends after", iv(540, 1020), iv(1000, 1080), false},
		{"fully outside", iv(540, 1020), iv(60, 120), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(tt.outer, tt.inner); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.outer, tt.inner, got, tt.want)
			}
		})
	}
}

func TestDuration(t *testing.T) {
	if got := Duration(iv(540, 600)); got != 60 {
		t.Errorf("Duration = %d, want 60", got)
	}
	if got := Duration(iv(600, 600)); got != 0 {
		t.Errorf("zero-length Duration = %d, want 0", got)
	}
	if got := Duration(iv(1380, 120)); got != 0 {
		t.Errorf("overnight Duration = %d, want 0", got)
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		in   []models.Interval
		want []models.Interval
	}{
		{"empty", nil, nil},
		{"single", []models.Interval{iv(540, 600)}, []models.Interval{iv(540, 600)}},
		{
			"overlapping pair",
			[]models.Interval{iv(540, 630), iv(600, 720)},
			[]models.Interval{iv(540, 720)},
		},
		{
			"touching pair merges",
			[]models.Interval{iv(540, 600), iv(600, 660)},
			[]models.Interval{iv(540, 660)},
		},
		{
			"disjoint stay separate",
			[]models.Interval{iv(780, 840), iv(540, 600)},
			[]models.Interval{iv(540, 600), iv(780, 840)},
		},
		{
			"unsorted input with containment",
			[]models.Interval{iv(600, 660), iv(540, 720), iv(900, 960)},
			[]models.Interval{iv(540, 720), iv(900, 960)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Merge(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMergeDoesNotMutateInput(t *testing.T) {
	in := []models.Interval{iv(600, 720), iv(540, 630)}
	Merge(in)
	if in[0] != iv(600, 720) || in[1] != iv(540, 630) {
		t.Errorf("Merge mutated its input: %v", in)
	}
}
