package schedule

import (
	"sync"
	"time"

	"crewly/models"
)

// Clock supplies the current time. The engine takes it as an explicit
// dependency instead of reading ambient wall-clock state, so production
// wiring passes SystemClock and tests pass a fixed instant.
type Clock func() time.Time

// SystemClock is the production clock.
func SystemClock() time.Time { return time.Now() }

// NowIndicator returns the grid position of the clock's current time within
// the window, or nil when now falls outside it. dateIsToday guards against
// drawing a "now" line on a timeline for another date.
func NowIndicator(clock Clock, w models.TimeWindow, dateIsToday bool) *float64 {
	if !dateIsToday {
		return nil
	}
	now := clock()
	hour, minute := now.Hour(), now.Minute()
	if hour < w.StartHour || hour >= w.EndHour {
		return nil
	}
	pos := TimeToPosition(hour, minute, w)
	return &pos
}

// StartTicker invokes fn with the current time immediately and then once per
// interval, driving a live current-time indicator. The returned stop
// function cancels the tick and must be called when the view is torn down so
// the timer does not leak.
func StartTicker(clock Clock, interval time.Duration, fn func(time.Time)) (stop func()) {
	done := make(chan struct{})
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		fn(clock())
		for {
			select {
			case <-ticker.C:
				fn(clock())
			case <-done:
				return
			}
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}
