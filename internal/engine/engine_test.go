package engine

import "testing"

func TestFirstTickAlwaysRenders(t *testing.T) {
	s := New(33, false)

	dt, render := s.Advance(1000)
	if dt != 0 {
		t.Errorf("first tick dt = %.2f, expected 0", dt)
	}
	if !render {
		t.Error("first tick should render regardless of the interval")
	}
}

func TestIdenticalTimestampsAreIdempotent(t *testing.T) {
	s := New(0, false)
	s.Advance(100)
	s.Advance(200)

	dt, render := s.Advance(200)
	if dt != 0 {
		t.Errorf("repeated timestamp dt = %.2f, expected 0", dt)
	}
	if render {
		t.Error("repeated timestamp should not trigger a redundant render")
	}
}

func TestNonIncreasingTimestampClamped(t *testing.T) {
	s := New(0, false)
	s.Advance(100)
	s.Advance(500)

	dt, _ := s.Advance(300)
	if dt != 0 {
		t.Errorf("backwards timestamp dt = %.2f, expected 0", dt)
	}

	// Time resumes normally from the most recent timestamp.
	dt, _ = s.Advance(316)
	if dt != 16 {
		t.Errorf("dt after recovery = %.2f, expected 16", dt)
	}
}

func TestRenderGate(t *testing.T) {
	s := New(33, false)
	s.Advance(0) // first tick, renders

	tests := []struct {
		name    string
		elapsed float64
		render  bool
	}{
		{"below interval", 16, false},
		{"crosses interval", 34, true},
		{"reset after render", 50, false},
		{"crosses again", 70, true},
	}

	for _, tc := range tests {
		if _, got := s.Advance(tc.elapsed); got != tc.render {
			t.Errorf("%s: render = %v, expected %v", tc.name, got, tc.render)
		}
	}
}

func TestZeroIntervalRendersEveryAdvancingTick(t *testing.T) {
	s := New(0, false)
	s.Advance(0)

	for i, elapsed := range []float64{16, 32, 48} {
		if _, render := s.Advance(elapsed); !render {
			t.Errorf("tick %d should render with a zero interval", i+1)
		}
	}
}

func TestFPSOverRollingWindow(t *testing.T) {
	s := New(0, false)
	s.Advance(0)

	if s.FPS() != 0 {
		t.Errorf("FPS = %.1f before a full window, expected 0", s.FPS())
	}

	// 100 ticks of 10ms each fill exactly one 1000ms window.
	for i := 1; i <= 100; i++ {
		s.Advance(float64(i * 10))
	}
	if got := s.FPS(); got < 99 || got > 101 {
		t.Errorf("FPS = %.1f, expected ~100", got)
	}

	// A slower second window replaces the estimate.
	for i := 1; i <= 25; i++ {
		s.Advance(1000 + float64(i*40))
	}
	if got := s.FPS(); got < 24 || got > 26 {
		t.Errorf("FPS = %.1f, expected ~25", got)
	}
}

func TestPressedAndConsumePress(t *testing.T) {
	s := New(0, false)

	if s.Pressed(KeyRegenerate) {
		t.Error("key should not be pressed initially")
	}

	s.KeyDown(KeyRegenerate)
	if !s.Pressed(KeyRegenerate) {
		t.Error("key should be pressed after KeyDown")
	}
	if !s.ConsumePress(KeyRegenerate) {
		t.Error("first ConsumePress should return true")
	}
	if s.ConsumePress(KeyRegenerate) {
		t.Error("second ConsumePress should return false")
	}

	s.KeyUp(KeyRegenerate)
	if s.Pressed(KeyRegenerate) {
		t.Error("key should not be pressed after KeyUp")
	}
}

func TestConsumePressSurvivesKeyUp(t *testing.T) {
	// Terminal hosts send KeyDown immediately followed by KeyUp; the edge
	// must still be visible to the next tick.
	s := New(0, false)

	s.KeyDown(KeyToggleOverlay)
	s.KeyUp(KeyToggleOverlay)

	if s.Pressed(KeyToggleOverlay) {
		t.Error("key should be released")
	}
	if !s.ConsumePress(KeyToggleOverlay) {
		t.Error("press edge should survive the KeyUp")
	}
	if s.ConsumePress(KeyToggleOverlay) {
		t.Error("edge should be consumed exactly once")
	}
}

func TestPointerSnapshot(t *testing.T) {
	s := New(0, false)

	if _, _, ok := s.Pointer(); ok {
		t.Error("pointer should be unset before the first move")
	}

	s.PointerMove(12.5, 7.25)
	x, y, ok := s.Pointer()
	if !ok || x != 12.5 || y != 7.25 {
		t.Errorf("Pointer() = (%.2f, %.2f, %v), expected (12.5, 7.25, true)", x, y, ok)
	}

	// Only the latest position is retained.
	s.PointerMove(3, 4)
	x, y, _ = s.Pointer()
	if x != 3 || y != 4 {
		t.Errorf("Pointer() = (%.2f, %.2f), expected (3, 4)", x, y)
	}
}
