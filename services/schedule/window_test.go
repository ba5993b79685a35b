package schedule

import (
	"testing"

	"crewly/models"
)

func TestOptimalWindow(t *testing.T) {
	tests := []struct {
		name   string
		shifts []models.Interval
		jobs   []models.Interval
		want   models.TimeWindow
	}{
		{
			"no activity falls back to default",
			nil, nil,
			models.TimeWindow{StartHour: 7, EndHour: 19},
		},
		{
			"nine to five stays at padded defaults",
			[]models.Interval{iv(540, 1020)}, nil,
			models.TimeWindow{StartHour: 6, EndHour: 20},
		},
		{
			"early shift extends the left edge",
			[]models.Interval{iv(300, 720)}, nil, // 05:00-12:00
			models.TimeWindow{StartHour: 6, EndHour: 20},
		},
		{
			"late job extends the right edge",
			[]models.Interval{iv(540, 1020)},
			[]models.Interval{iv(1200, 1260)}, // 20:00-21:00
			models.TimeWindow{StartHour: 6, EndHour: 22},
		},
		{
			"clamped to the ceiling",
			[]models.Interval{iv(540, 1400)}, nil, // ends 23:20
			models.TimeWindow{StartHour: 6, EndHour: 22},
		},
		{
			"jobs only",
			nil,
			[]models.Interval{iv(600, 660)},
			models.TimeWindow{StartHour: 6, EndHour: 20},
		},
		{
			"partial-hour end rounds up before padding",
			[]models.Interval{iv(540, 1110)}, nil, // ends 18:30
			models.TimeWindow{StartHour: 6, EndHour: 20},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OptimalWindow(tt.shifts, tt.jobs)
			if got != tt.want {
				t.Errorf("OptimalWindow() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
