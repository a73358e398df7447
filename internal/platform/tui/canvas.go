package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Canvas is a 2D cell buffer the host paints into as the core issues draw
// calls. Each cell carries an RGB color so translucent layers can blend
// over what is already there. It decouples the core's draw primitives from
// the terminal.
type Canvas struct {
	width  int
	height int
	cells  []cell
}

type cell struct {
	r, g, b uint8
	set     bool
}

// NewCanvas creates a canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{width: width, height: height}
	c.cells = make([]cell, width*height)
	return c
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.height }

// Resize reallocates the buffer. Content is discarded; the next frame
// repaints everything anyway.
func (c *Canvas) Resize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	c.width = width
	c.height = height
	c.cells = make([]cell, width*height)
}

// Clear resets all cells to unset.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{}
	}
}

// Blend paints one cell, mixing the new color over the existing one by
// alpha. Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Blend(x, y int, r, g, b uint8, alpha float64) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	i := y*c.width + x
	old := c.cells[i]
	if !old.set || alpha >= 1 {
		c.cells[i] = cell{r: r, g: g, b: b, set: true}
		return
	}
	if alpha < 0 {
		alpha = 0
	}
	c.cells[i] = cell{
		r:   mix(old.r, r, alpha),
		g:   mix(old.g, g, alpha),
		b:   mix(old.b, b, alpha),
		set: true,
	}
}

func mix(old, new uint8, alpha float64) uint8 {
	return uint8(float64(old)*(1-alpha) + float64(new)*alpha + 0.5)
}

// String converts the canvas to a styled string for display.
// Consecutive cells with the same color are grouped to minimize ANSI
// escape sequences.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height*2 + c.height)

	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < c.width {
			start := c.cells[y*c.width+x]
			runLen := 0
			for x < c.width && c.cells[y*c.width+x] == start {
				runLen++
				x++
			}

			if !start.set {
				sb.WriteString(strings.Repeat(" ", runLen))
				continue
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(start.r, start.g, start.b)))
			sb.WriteString(style.Render(strings.Repeat("█", runLen)))
		}
	}
	return sb.String()
}

func hexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// HSLToRGB converts hue [0,360), saturation and lightness [0,100] to RGB.
func HSLToRGB(h, s, l int) (r, g, b uint8) {
	hf := math.Mod(float64(h), 360) / 360
	if hf < 0 {
		hf += 1
	}
	sf := clamp01(float64(s) / 100)
	lf := clamp01(float64(l) / 100)

	if sf == 0 {
		v := uint8(lf*255 + 0.5)
		return v, v, v
	}

	var q float64
	if lf < 0.5 {
		q = lf * (1 + sf)
	} else {
		q = lf + sf - lf*sf
	}
	p := 2*lf - q

	rf := hueToRGB(p, q, hf+1.0/3)
	gf := hueToRGB(p, q, hf)
	bf := hueToRGB(p, q, hf-1.0/3)
	return uint8(rf*255 + 0.5), uint8(gf*255 + 0.5), uint8(bf*255 + 0.5)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
