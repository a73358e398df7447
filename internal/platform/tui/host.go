package tui

import (
	"github.com/charmbracelet/log"
)

// canvasHost implements boundary.Host by painting the core's draw calls
// into a Canvas and routing log calls into a structured logger. Draw calls
// happen only inside the core's Tick, which the model invokes from its own
// update loop, so no locking is needed here.
type canvasHost struct {
	canvas *Canvas
	logger *log.Logger
}

func newCanvasHost(canvas *Canvas, logger *log.Logger) *canvasHost {
	return &canvasHost{canvas: canvas, logger: logger}
}

// DrawPrimitive paints one square of the given size at (x, y) in viewport
// coordinates. The host sizes the viewport to the grid, so one unit is one
// terminal cell.
func (h *canvasHost) DrawPrimitive(layer int, x, y, size float64, hue, sat, light int, alpha float64) {
	r, g, b := HSLToRGB(hue, sat, light)

	n := int(size + 0.5)
	if n < 1 {
		n = 1
	}
	cx := int(x + 0.5)
	cy := int(y + 0.5)
	for dy := 0; dy < n; dy++ {
		for dx := 0; dx < n; dx++ {
			h.canvas.Blend(cx+dx, cy+dy, r, g, b, alpha)
		}
	}
}

// Log forwards core diagnostics. Must return promptly; the core is
// single-threaded and blocks on outbound calls.
func (h *canvasHost) Log(message string) {
	h.logger.Info(message)
}
