package schedule

import (
	"testing"

	"crewly/models"
)

func TestUtilization(t *testing.T) {
	tests := []struct {
		name           string
		booked         []models.Interval
		available      []models.Interval
		wantPercentage float64
		wantBand       models.UtilizationBand
	}{
		{
			"idle day",
			nil,
			[]models.Interval{iv(540, 1020)},
			0, models.UtilizationLow,
		},
		{
			"half booked",
			[]models.Interval{iv(540, 780)},
			[]models.Interval{iv(540, 1020)},
			50, models.UtilizationModerate,
		},
		{
			"mostly booked",
			[]models.Interval{iv(540, 900)},
			[]models.Interval{iv(540, 1020)},
			75, models.UtilizationHigh,
		},
		{
			"fully booked",
			[]models.Interval{iv(540, 1020)},
			[]models.Interval{iv(540, 1020)},
			100, models.UtilizationFull,
		},
		{
			"zero availability yields zero, not NaN",
			[]models.Interval{iv(540, 600)},
			nil,
			0, models.UtilizationLow,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Utilization(tt.booked, tt.available)
			if got.Percentage != tt.wantPercentage {
				t.Errorf("Percentage = %v, want %v", got.Percentage, tt.wantPercentage)
			}
			if got.Band != tt.wantBand {
				t.Errorf("Band = %v, want %v", got.Band, tt.wantBand)
			}
			if got.Percentage < 0 || got.Percentage > 100 {
				t.Errorf("Percentage %v outside [0, 100]", got.Percentage)
			}
		})
	}
}

func TestUtilizationOverbooked(t *testing.T) {
	got := Utilization(
		[]models.Interval{iv(540, 1020), iv(540, 780)}, // 8h + 4h booked
		[]models.Interval{iv(540, 1020)},                // 8h available
	)
	if got.Percentage != 100 {
		t.Errorf("display percentage = %v, want clamped 100", got.Percentage)
	}
	if got.Ratio <= 1 {
		t.Errorf("raw ratio = %v, want > 1 for over-booking alerts", got.Ratio)
	}
	if got.Band != models.UtilizationFull {
		t.Errorf("Band = %v, want full", got.Band)
	}
}

func TestBandThresholds(t *testing.T) {
	tests := []struct {
		percentage float64
		want       models.UtilizationBand
	}{
		{0, models.UtilizationLow},
		{29.9, models.UtilizationLow},
		{30, models.UtilizationModerate},
		{69.9, models.UtilizationModerate},
		{70, models.UtilizationHigh},
		{99.9, models.UtilizationHigh},
		{100, models.UtilizationFull},
	}
	for _, tt := range tests {
		if got := bandFor(tt.percentage); got != tt.want {
			t.Errorf("bandFor(%v) = %v, want %v", tt.percentage, got, tt.want)
		}
	}
}
