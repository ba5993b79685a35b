package schedule

import (
	"reflect"
	"testing"

	"crewly/models"
)

func TestStackIndexes(t *testing.T) {
	tests := []struct {
		name string
		in   []models.Interval
		want []int
	}{
		{"empty", nil, []int{}},
		{"single", []models.Interval{iv(540, 600)}, []int{0}},
		{
			"disjoint all on row zero",
			[]models.Interval{iv(540, 600), iv(600, 660), iv(720, 780)},
			[]int{0, 0, 0},
		},
		{
			"overlapping pair stacks",
			[]models.Interval{iv(540, 660), iv(600, 720)},
			[]int{0, 1},
		},
		{
			"three-way pileup",
			[]models.Interval{iv(540, 720), iv(560, 700), iv(580, 680)},
			[]int{0, 1, 2},
		},
		{
			"result aligned with unsorted input",
			[]models.Interval{iv(600, 720), iv(540, 660)},
			[]int{1, 0},
		},
		{
			"later block drops back to a free row",
			[]models.Interval{iv(540, 660), iv(600, 720), iv(700, 780)},
			[]int{0, 1, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StackIndexes(tt.in)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("StackIndexes(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStackIndexesDeterministic(t *testing.T) {
	in := []models.Interval{
		iv(540, 660), iv(540, 660), iv(600, 720), iv(630, 690), iv(900, 960),
	}
	first := StackIndexes(in)
	for i := 0; i < 10; i++ {
		if got := StackIndexes(in); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differed: %v vs %v", i, got, first)
		}
	}
}
