package spruce

import (
	"math"
	"testing"
)

// --- Hover ---

func TestHoverEnterChimesOnce(t *testing.T) {
	st := newInteractionState(3)
	chimes := 0
	st.SetChime(func() { chimes++ })

	st.HoverEnter(1)
	st.HoverEnter(1)
	st.HoverEnter(1)

	if !st.Hovered(1) {
		t.Error("particle 1 should be hovered")
	}
	if chimes != 1 {
		t.Errorf("chimes = %d, want 1 per enter", chimes)
	}
}

func TestHoverExitIsSilent(t *testing.T) {
	st := newInteractionState(3)
	chimes := 0
	st.SetChime(func() { chimes++ })

	st.HoverEnter(0)
	st.HoverExit(0)

	if st.Hovered(0) {
		t.Error("particle 0 should no longer be hovered")
	}
	if chimes != 1 {
		t.Errorf("chimes = %d, want 1 (exit is silent)", chimes)
	}
}

func TestHoverReenterChimesAgain(t *testing.T) {
	st := newInteractionState(1)
	chimes := 0
	st.SetChime(func() { chimes++ })

	st.HoverEnter(0)
	st.HoverExit(0)
	st.HoverEnter(0)

	if chimes != 2 {
		t.Errorf("chimes = %d, want 2", chimes)
	}
}

func TestNilChimeIsSafe(t *testing.T) {
	st := newInteractionState(1)
	st.HoverEnter(0)
	st.Activate(0)
}

// --- Click pulse ---

func TestPulseExpiresByClock(t *testing.T) {
	st := newInteractionState(1)

	st.Activate(0)
	if !st.Pulsing(0) {
		t.Fatal("pulse should be active immediately after Activate")
	}

	st.update(PulseDuration / 2)
	if !st.Pulsing(0) {
		t.Error("pulse should still be active at half duration")
	}

	st.update(PulseDuration)
	if st.Pulsing(0) {
		t.Error("pulse should have expired past its duration")
	}
}

func TestActivateResetsExtendsPulse(t *testing.T) {
	st := newInteractionState(1)

	st.Activate(0)
	st.update(PulseDuration * 0.75)
	st.Activate(0) // re-click near expiry restarts the window

	st.update(PulseDuration * 0.75)
	if !st.Pulsing(0) {
		t.Error("pulse should still be active after reset-extend")
	}

	st.update(PulseDuration)
	if st.Pulsing(0) {
		t.Error("pulse should expire after the extended window")
	}
}

func TestActivateChimes(t *testing.T) {
	st := newInteractionState(1)
	chimes := 0
	st.SetChime(func() { chimes++ })

	st.Activate(0)
	st.Activate(0)

	if chimes != 2 {
		t.Errorf("chimes = %d, want 2 (one per activation)", chimes)
	}
}

// --- Scale smoothing ---

func TestScaleStartsAtOne(t *testing.T) {
	st := newInteractionState(4)
	for i := 0; i < 4; i++ {
		assertNear(t, "initial scale", st.ScaleFactor(i), 1)
	}
}

func TestScaleApproachesHoverTarget(t *testing.T) {
	st := newInteractionState(1)
	st.HoverEnter(0)

	// One second of frames at the smoothing rate leaves a residual of
	// exp(-12), far below any visible threshold.
	for i := 0; i < 60; i++ {
		st.update(1.0 / 60.0)
	}
	if math.Abs(st.ScaleFactor(0)-HoverScale) > 1e-3 {
		t.Errorf("scale = %v, want about %v", st.ScaleFactor(0), HoverScale)
	}
}

func TestScaleRelaxesAfterExit(t *testing.T) {
	st := newInteractionState(1)
	st.HoverEnter(0)
	for i := 0; i < 60; i++ {
		st.update(1.0 / 60.0)
	}

	st.HoverExit(0)
	for i := 0; i < 60; i++ {
		st.update(1.0 / 60.0)
	}
	if math.Abs(st.ScaleFactor(0)-1) > 1e-3 {
		t.Errorf("scale = %v, want relaxed to 1", st.ScaleFactor(0))
	}
}

func TestHoverAndPulseCompound(t *testing.T) {
	st := newInteractionState(1)
	st.HoverEnter(0)
	st.Activate(0)

	// Keep the pulse alive by re-activating while converging.
	for i := 0; i < 120; i++ {
		st.Activate(0)
		st.update(1.0 / 60.0)
	}

	want := HoverScale * PulseScale
	if math.Abs(st.ScaleFactor(0)-want) > 1e-2 {
		t.Errorf("scale = %v, want about %v (hover x pulse)", st.ScaleFactor(0), want)
	}
}

func TestScaleConvergesMuchFasterThanFormation(t *testing.T) {
	st := newInteractionState(1)
	st.HoverEnter(0)

	// A quarter second should already cover most of the distance.
	for i := 0; i < 15; i++ {
		st.update(1.0 / 60.0)
	}
	progress := (st.ScaleFactor(0) - 1) / (HoverScale - 1)
	if progress < 0.9 {
		t.Errorf("interaction smoothing covered %v of the distance in 0.25s, want >= 0.9", progress)
	}
}
