package schedule

import (
	"sync/atomic"
	"testing"
	"time"

	"crewly/models"
)

func fixedClock(hour, minute int) Clock {
	return func() time.Time {
		return time.Date(2025, 3, 3, hour, minute, 0, 0, time.UTC)
	}
}

func TestNowIndicator(t *testing.T) {
	w := models.TimeWindow{StartHour: 7, EndHour: 19}

	t.Run("inside window", func(t *testing.T) {
		pos := NowIndicator(fixedClock(13, 0), w, true)
		if pos == nil {
			t.Fatal("expected a position, got nil")
		}
		if *pos != 0.5 {
			t.Errorf("position = %v, want 0.5", *pos)
		}
	})

	t.Run("before window", func(t *testing.T) {
		if pos := NowIndicator(fixedClock(6, 30), w, true); pos != nil {
			t.Errorf("expected nil, got %v", *pos)
		}
	})

	t.Run("after window", func(t *testing.T) {
		if pos := NowIndicator(fixedClock(19, 0), w, true); pos != nil {
			t.Errorf("expected nil, got %v", *pos)
		}
	})

	t.Run("not today", func(t *testing.T) {
		if pos := NowIndicator(fixedClock(13, 0), w, false); pos != nil {
			t.Errorf("expected nil for another date, got %v", *pos)
		}
	})
}

func TestStartTickerStops(t *testing.T) {
	var calls int64
	stop := StartTicker(SystemClock, 10*time.Millisecond, func(time.Time) {
		atomic.AddInt64(&calls, 1)
	})

	// The first invocation is immediate.
	deadline := time.After(time.Second)
	for atomic.LoadInt64(&calls) == 0 {
		select {
		case <-deadline:
			t.Fatal("ticker never fired")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	stop()
	stop() // idempotent

	settled := atomic.LoadInt64(&calls)
	time.Sleep(50 * time.Millisecond)
	if after := atomic.LoadInt64(&calls); after > settled+1 {
		t.Errorf("ticker kept firing after stop: %d -> %d", settled, after)
	}
}
