// Package boundary implements the call surface between the pathfinding
// core and its host. The host drives the core through synchronous entry
// points (Initialize, Tick, key and mouse events); the core talks back
// only through the injected Host interface. All entry points acquire the
// core's single mutex, so the host may call from any goroutine as long as
// it never overlaps two calls.
package boundary

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mkostin/pathgrid/internal/engine"
	"github.com/mkostin/pathgrid/internal/grid"
	"github.com/mkostin/pathgrid/internal/world"
)

// Host is the capability object the core uses to reach its environment.
// Calls are fire-and-forget: the core never consults a return value and
// cannot make progress while a call blocks, so implementations must return
// promptly.
type Host interface {
	// DrawPrimitive requests one square of the given size at (x, y) in
	// viewport coordinates on the given layer, colored by HSL plus alpha.
	DrawPrimitive(layer int, x, y, size float64, h, s, l int, alpha float64)

	// Log emits one diagnostic message.
	Log(message string)
}

// Render layers, drawn back to front.
const (
	LayerTerrain = iota
	LayerOverlay
	LayerPath
	LayerMarkers
)

// Boundary error taxonomy. These are logged rather than returned through
// entry points: a misused entry point becomes a no-op, never a crash.
var (
	ErrNotInitialized     = errors.New("boundary: core not initialized")
	ErrAlreadyInitialized = errors.New("boundary: core already initialized")
)

// Params configures the world the core builds at Initialize time.
type Params struct {
	GridWidth  int
	GridHeight int
	Seed       uint64
	// FollowPointer makes mouse movement retarget the search goal.
	FollowPointer bool
}

// RunInfo describes one completed search.
type RunInfo struct {
	Seed       uint64
	GridW      int
	GridH      int
	Start      grid.Coord
	Goal       grid.Coord
	Found      bool
	Cost       float64
	PathLen    int
	Expanded   int
	DurationMs float64
	Generation uint64
}

// Core is the process-wide state container. It owns the single World State
// and Engine State for the lifetime of the module and guards them with one
// mutex per the exclusive-access discipline.
type Core struct {
	mu sync.Mutex

	host   Host
	params Params

	world  *world.State
	engine *engine.State

	viewportW uint
	viewportH uint

	initialized bool
	dirty       bool
	seed        uint64
	generation  uint64
	lastRun     RunInfo
	hasRun      bool
}

// NewCore creates an uninitialized core bound to the given host.
func NewCore(host Host, p Params) *Core {
	if p.GridWidth <= 0 {
		p.GridWidth = 40
	}
	if p.GridHeight <= 0 {
		p.GridHeight = 24
	}
	return &Core{host: host, params: p}
}

// Initialize constructs the World State and Engine State exactly once.
// A second call without Reset logs a diagnostic and leaves all state
// unchanged.
func (c *Core) Initialize(debug, renderIntervalMs int, width, height uint) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		c.host.Log(ErrAlreadyInitialized.Error())
		return
	}

	w, err := world.New(c.params.GridWidth, c.params.GridHeight, c.params.Seed)
	if err != nil {
		c.host.Log(fmt.Sprintf("boundary: initialize: %v", err))
		return
	}

	c.world = w
	c.engine = engine.New(renderIntervalMs, debug != 0)
	c.engine.FollowPointer = c.params.FollowPointer
	c.viewportW = width
	c.viewportH = height
	c.seed = c.params.Seed
	c.dirty = true
	c.initialized = true

	if c.engine.Debug {
		c.host.Log(fmt.Sprintf("boundary: initialized %dx%d grid, seed %d, viewport %dx%d",
			w.Grid.W, w.Grid.H, c.seed, width, height))
	}
}

// Reset tears the core down so Initialize may run again. The grid, path,
// and all timing state are discarded.
func (c *Core) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.world = nil
	c.engine = nil
	c.initialized = false
	c.dirty = false
	c.hasRun = false
}

// ready logs and reports false when an entry point runs before Initialize.
// Callers must hold the mutex.
func (c *Core) ready() bool {
	if !c.initialized {
		c.host.Log(ErrNotInitialized.Error())
		return false
	}
	return true
}

// Tick advances the engine by one host tick at the given timestamp in
// milliseconds. It may trigger a search recomputation and, when the render
// gate opens, a render pass of outbound draw calls. The call is synchronous
// and returns before the host's next entry point.
func (c *Core) Tick(elapsed float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready() {
		return
	}

	_, render := c.engine.Advance(elapsed)

	c.applyIntents()
	if c.dirty {
		c.runSearch()
	}
	if render {
		c.renderFrame()
	}
}

// KeyDown records a key press. Commands bound to keys take effect on the
// next tick, keeping input sampling decoupled from the render cadence.
func (c *Core) KeyDown(code int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready() {
		return
	}
	c.engine.KeyDown(code)
}

// KeyUp records a key release.
func (c *Core) KeyUp(code int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready() {
		return
	}
	c.engine.KeyUp(code)
}

// MouseMove records the pointer position in viewport coordinates. When
// follow-pointer mode is on, the next tick retargets the goal to the tile
// under the pointer.
func (c *Core) MouseMove(x, y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready() {
		return
	}
	c.engine.PointerMove(x, y)
}

// applyIntents consumes queued key commands and the pointer-follow goal
// update. Callers must hold the mutex.
func (c *Core) applyIntents() {
	if c.engine.ConsumePress(engine.KeyRegenerate) {
		c.seed++
		if err := c.world.Regenerate(c.seed); err != nil {
			c.host.Log(fmt.Sprintf("boundary: regenerate: %v", err))
		} else {
			c.dirty = true
			if c.engine.Debug {
				c.host.Log(fmt.Sprintf("boundary: regenerated grid, seed %d", c.seed))
			}
		}
	}
	if c.engine.ConsumePress(engine.KeyToggleOverlay) {
		c.engine.ShowOverlay = !c.engine.ShowOverlay
	}
	if c.engine.ConsumePress(engine.KeyToggleFollow) {
		c.engine.FollowPointer = !c.engine.FollowPointer
	}

	if c.engine.FollowPointer {
		if px, py, ok := c.engine.Pointer(); ok {
			cell := c.cellAt(px, py)
			if c.world.Grid.Passable(cell) && cell != c.world.Goal {
				if err := c.world.SetGoal(cell); err == nil {
					c.dirty = true
				}
			}
		}
	}
}

// cellAt maps viewport coordinates to a grid cell.
func (c *Core) cellAt(x, y float64) grid.Coord {
	cw, ch := c.cellSize()
	return grid.C(int(x/cw), int(y/ch))
}

// cellSize returns the viewport size of one grid cell.
func (c *Core) cellSize() (w, h float64) {
	w = float64(c.viewportW) / float64(c.world.Grid.W)
	h = float64(c.viewportH) / float64(c.world.Grid.H)
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return w, h
}

// runSearch executes A* over the current world and records the outcome.
// Callers must hold the mutex.
func (c *Core) runSearch() {
	started := time.Now()
	res, err := c.world.Search()
	c.dirty = false
	if err != nil {
		c.host.Log(fmt.Sprintf("boundary: search: %v", err))
		return
	}

	c.generation++
	c.lastRun = RunInfo{
		Seed:       c.seed,
		GridW:      c.world.Grid.W,
		GridH:      c.world.Grid.H,
		Start:      c.world.Start,
		Goal:       c.world.Goal,
		Found:      res.Found,
		Cost:       res.Cost,
		PathLen:    len(res.Path),
		Expanded:   res.Expanded,
		DurationMs: float64(time.Since(started).Microseconds()) / 1000.0,
		Generation: c.generation,
	}
	c.hasRun = true

	if c.engine.Debug {
		if res.Found {
			c.host.Log(fmt.Sprintf("boundary: path found, cost %.1f, %d cells, %d expanded",
				res.Cost, len(res.Path), res.Expanded))
		} else {
			c.host.Log(fmt.Sprintf("boundary: no path, %d expanded", res.Expanded))
		}
	}
}

// LastRun returns information about the most recent completed search.
func (c *Core) LastRun() (RunInfo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastRun, c.hasRun
}

// Stats is a host-facing snapshot of display state.
type Stats struct {
	FPS      float64
	Found    bool
	Cost     float64
	PathLen  int
	Expanded int
	Seed     uint64
	GridW    int
	GridH    int
	Overlay  bool
	Follow   bool
}

// CurrentStats returns display statistics, or false before Initialize.
func (c *Core) CurrentStats() (Stats, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return Stats{}, false
	}
	return Stats{
		FPS:      c.engine.FPS(),
		Found:    c.world.Found,
		Cost:     c.world.Cost,
		PathLen:  len(c.world.Path),
		Expanded: c.world.Expanded,
		Seed:     c.seed,
		GridW:    c.world.Grid.W,
		GridH:    c.world.Grid.H,
		Overlay:  c.engine.ShowOverlay,
		Follow:   c.engine.FollowPointer,
	}, true
}

// Snapshot serializes the grid, endpoints, and current path into the
// compact byte encoding the host may read across the linear memory
// boundary. Returns nil before Initialize.
func (c *Core) Snapshot() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return nil
	}
	return EncodeState(c.world)
}
