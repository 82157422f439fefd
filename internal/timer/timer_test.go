package timer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lexhour/lexhour/internal/timer"
)

// fakeClock steps a fixed instant forward under test control.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestInitialState(t *testing.T) {
	tm := timer.New()
	assert.Equal(t, timer.Idle, tm.State())
	assert.Equal(t, time.Duration(0), tm.Elapsed())
}

func TestStartStop(t *testing.T) {
	clock := newFakeClock()
	tm := timer.NewWithClock(clock.now)

	tm.Start()
	assert.Equal(t, timer.Running, tm.State())

	clock.advance(90 * time.Minute)
	assert.Equal(t, 90*time.Minute, tm.Elapsed())

	tm.Stop()
	assert.Equal(t, timer.Stopped, tm.State())
	assert.Equal(t, 90*time.Minute, tm.Elapsed())

	// Stopped elapsed is frozen regardless of the clock.
	clock.advance(time.Hour)
	assert.Equal(t, 90*time.Minute, tm.Elapsed())
}

func TestImmediateStop(t *testing.T) {
	clock := newFakeClock()
	tm := timer.NewWithClock(clock.now)

	tm.Start()
	tm.Stop()
	assert.Equal(t, time.Duration(0), tm.Elapsed())
}

func TestStartWhileRunningIsNoOp(t *testing.T) {
	clock := newFakeClock()
	tm := timer.NewWithClock(clock.now)

	tm.Start()
	clock.advance(30 * time.Minute)
	tm.Start() // must not reset the start instant
	clock.advance(30 * time.Minute)

	tm.Stop()
	assert.Equal(t, time.Hour, tm.Elapsed())
}

func TestStopWhileIdleIsNoOp(t *testing.T) {
	tm := timer.New()
	tm.Stop()
	assert.Equal(t, timer.Idle, tm.State())
	assert.Equal(t, time.Duration(0), tm.Elapsed())
}

func TestRestartAfterStop(t *testing.T) {
	clock := newFakeClock()
	tm := timer.NewWithClock(clock.now)

	tm.Start()
	clock.advance(10 * time.Minute)
	tm.Stop()

	tm.Start()
	clock.advance(5 * time.Minute)
	tm.Stop()

	// Stop records the latest run, it does not accumulate across runs.
	assert.Equal(t, 5*time.Minute, tm.Elapsed())
}

func TestResetFromAnyState(t *testing.T) {
	clock := newFakeClock()

	// From Idle.
	tm := timer.NewWithClock(clock.now)
	tm.Reset()
	assert.Equal(t, timer.Idle, tm.State())

	// From Running.
	tm.Start()
	clock.advance(time.Minute)
	tm.Reset()
	assert.Equal(t, timer.Idle, tm.State())
	assert.Equal(t, time.Duration(0), tm.Elapsed())

	// From Stopped.
	tm.Start()
	clock.advance(time.Minute)
	tm.Stop()
	tm.Reset()
	assert.Equal(t, timer.Idle, tm.State())
	assert.Equal(t, time.Duration(0), tm.Elapsed())
}

func TestStateString(t *testing.T) {
	tm := timer.New()
	assert.Equal(t, "idle", tm.State().String())
	tm.Start()
	assert.Equal(t, "running", tm.State().String())
	tm.Stop()
	assert.Equal(t, "stopped", tm.State().String())
}
