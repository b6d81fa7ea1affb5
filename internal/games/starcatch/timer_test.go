package starcatch

import "testing"

func TestTimerInitialState(t *testing.T) {
	tm := NewRepeatingTimer(1)
	if tm.Finished() {
		t.Error("new timer should not be finished")
	}
	if tm.Elapsed() != 0 {
		t.Errorf("Elapsed() = %f, expected 0", tm.Elapsed())
	}
}

func TestTimerFiresOncePerPeriod(t *testing.T) {
	tm := NewRepeatingTimer(5)
	fired := 0

	// 0.25 is exact in binary, so 20 ticks accumulate exactly 5 seconds.
	for i := range 40 {
		tm.Tick(0.25)
		if tm.Finished() {
			fired++
			if i != 19 && i != 39 {
				t.Errorf("fired on tick %d", i)
			}
		}
	}

	if fired != 2 {
		t.Errorf("fired %d times over 10s, expected 2", fired)
	}
}

func TestTimerNotFinishedAfterFire(t *testing.T) {
	tm := NewRepeatingTimer(1)
	tm.Tick(1)
	if !tm.Finished() {
		t.Fatal("timer should fire after one full period")
	}
	if !tm.Finished() {
		t.Error("Finished() should be stable within a tick")
	}

	for range 3 {
		tm.Tick(0.25)
		if tm.Finished() {
			t.Fatal("timer fired before another full period")
		}
	}
	tm.Tick(0.25)
	if !tm.Finished() {
		t.Error("timer should fire again after a second period")
	}
}

func TestTimerExcessCarriesOver(t *testing.T) {
	tm := NewRepeatingTimer(1)

	tm.Tick(2.5)
	if !tm.Finished() {
		t.Fatal("large tick should fire")
	}
	if tm.Elapsed() != 1.5 {
		t.Errorf("Elapsed() = %f, expected remainder 1.5", tm.Elapsed())
	}

	// The carried period fires on the next tick even with no new time.
	tm.Tick(0)
	if !tm.Finished() {
		t.Error("carried period should fire on the next tick")
	}
	tm.Tick(0)
	if tm.Finished() {
		t.Error("remainder 0.5 should not fire")
	}
}

func TestTimerReset(t *testing.T) {
	tm := NewRepeatingTimer(1)
	tm.Tick(0.75)
	tm.Reset()
	tm.Tick(0.5)
	if tm.Finished() {
		t.Error("reset should discard accumulated time")
	}
}
