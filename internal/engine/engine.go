// Package engine tracks host-driven input and timing state: pressed keys,
// pointer position, elapsed-time accounting, FPS, and the render-interval
// gate that throttles how often a frame is dispatched.
package engine

// Key codes understood by the engine. The host maps its own input events
// (terminal keys, browser key codes) onto these before calling KeyDown.
const (
	KeyRegenerate    = 'R' // regenerate the grid on the next tick
	KeyToggleOverlay = 'O' // toggle the explored-set overlay
	KeyToggleFollow  = 'F' // toggle pointer-follows-goal mode
)

// fpsWindowMs is the rolling window over which FPS is recomputed.
const fpsWindowMs = 1000.0

// State holds input and timing state. Mutated on every tick and input
// event; the boundary layer serializes access.
type State struct {
	pressed     map[int]bool
	justPressed map[int]bool

	pointerX     float64
	pointerY     float64
	pointerValid bool

	lastTick float64
	hasTick  bool

	renderInterval float64 // minimum ms between render dispatches
	sinceRender    float64
	renderedOnce   bool

	frames   int
	windowMs float64
	fps      float64

	Debug         bool
	FollowPointer bool
	ShowOverlay   bool
}

// New creates engine state with the given render interval in milliseconds.
// A non-positive interval renders on every advancing tick.
func New(renderIntervalMs int, debug bool) *State {
	return &State{
		pressed:        make(map[int]bool),
		justPressed:    make(map[int]bool),
		renderInterval: float64(renderIntervalMs),
		Debug:          debug,
		FollowPointer:  true,
		ShowOverlay:    debug,
	}
}

// Advance accounts for one host tick at the given timestamp (milliseconds,
// monotonic from the host's perspective). It returns the clamped elapsed
// time since the previous tick and whether the render gate opened.
//
// Repeated identical timestamps yield dt=0 and no redundant render.
// Non-increasing timestamps never produce negative elapsed time.
func (s *State) Advance(elapsed float64) (dt float64, render bool) {
	if !s.hasTick {
		s.hasTick = true
		s.lastTick = elapsed
		// First tick always renders so the host gets an initial frame.
		s.renderedOnce = true
		return 0, true
	}

	dt = elapsed - s.lastTick
	if dt < 0 {
		dt = 0
	}
	s.lastTick = elapsed

	if dt > 0 {
		s.frames++
		s.windowMs += dt
		if s.windowMs >= fpsWindowMs {
			s.fps = float64(s.frames) * 1000.0 / s.windowMs
			s.frames = 0
			s.windowMs = 0
		}
	}

	s.sinceRender += dt
	if dt > 0 && s.sinceRender >= s.renderInterval {
		s.sinceRender = 0
		return dt, true
	}
	return dt, false
}

// FPS returns the frames-per-second computed over the last full window.
// Zero until one window has elapsed.
func (s *State) FPS() float64 {
	return s.fps
}

// KeyDown records a key press. Input handlers only update the snapshot;
// commands are consumed during the next tick.
func (s *State) KeyDown(code int) {
	s.pressed[code] = true
	s.justPressed[code] = true
}

// KeyUp records a key release.
func (s *State) KeyUp(code int) {
	delete(s.pressed, code)
}

// Pressed returns true if the key is currently held.
func (s *State) Pressed(code int) bool {
	return s.pressed[code]
}

// ConsumePress returns true exactly once per press of the given key.
// The edge survives a KeyUp so short host-side taps are not lost between
// ticks.
func (s *State) ConsumePress(code int) bool {
	if s.justPressed[code] {
		delete(s.justPressed, code)
		return true
	}
	return false
}

// PointerMove records the last known pointer position in viewport
// coordinates.
func (s *State) PointerMove(x, y float64) {
	s.pointerX = x
	s.pointerY = y
	s.pointerValid = true
}

// Pointer returns the last known pointer position and whether one has been
// reported yet.
func (s *State) Pointer() (x, y float64, ok bool) {
	return s.pointerX, s.pointerY, s.pointerValid
}
