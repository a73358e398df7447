package tui

import (
	"strings"
	"testing"
)

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l int
		r, g, b uint8
	}{
		{"black", 0, 0, 0, 0, 0, 0},
		{"white", 0, 0, 100, 255, 255, 255},
		{"mid gray", 0, 0, 50, 128, 128, 128},
		{"pure red", 0, 100, 50, 255, 0, 0},
		{"pure green", 120, 100, 50, 0, 255, 0},
		{"pure blue", 240, 100, 50, 0, 0, 255},
		{"hue wraps", 360, 100, 50, 255, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, g, b := HSLToRGB(tc.h, tc.s, tc.l)
			if r != tc.r || g != tc.g || b != tc.b {
				t.Errorf("HSLToRGB(%d,%d,%d) = (%d,%d,%d), expected (%d,%d,%d)",
					tc.h, tc.s, tc.l, r, g, b, tc.r, tc.g, tc.b)
			}
		})
	}
}

func TestBlendOpaqueReplaces(t *testing.T) {
	c := NewCanvas(3, 3)
	c.Blend(1, 1, 10, 20, 30, 1.0)
	c.Blend(1, 1, 200, 100, 50, 1.0)

	if got := c.cells[1*3+1]; got.r != 200 || got.g != 100 || got.b != 50 {
		t.Errorf("cell = (%d,%d,%d), expected (200,100,50)", got.r, got.g, got.b)
	}
}

func TestBlendMixesByAlpha(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Blend(0, 0, 0, 0, 0, 1.0)
	c.Blend(0, 0, 200, 100, 50, 0.5)

	got := c.cells[0]
	if got.r != 100 || got.g != 50 || got.b != 25 {
		t.Errorf("cell = (%d,%d,%d), expected (100,50,25)", got.r, got.g, got.b)
	}
}

func TestBlendOnUnsetCellIgnoresAlpha(t *testing.T) {
	// There is nothing underneath to mix with, so the new color lands as is.
	c := NewCanvas(2, 1)
	c.Blend(0, 0, 200, 100, 50, 0.25)

	got := c.cells[0]
	if got.r != 200 || got.g != 100 || got.b != 50 {
		t.Errorf("cell = (%d,%d,%d), expected (200,100,50)", got.r, got.g, got.b)
	}
}

func TestBlendOutOfBoundsIgnored(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Blend(-1, 0, 255, 0, 0, 1)
	c.Blend(0, -1, 255, 0, 0, 1)
	c.Blend(2, 0, 255, 0, 0, 1)
	c.Blend(0, 2, 255, 0, 0, 1)

	for i, cl := range c.cells {
		if cl.set {
			t.Errorf("cell %d was painted by an out-of-bounds blend", i)
		}
	}
}

func TestResizeAndClear(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Blend(0, 0, 1, 2, 3, 1)

	c.Resize(2, 3)
	if c.Width() != 2 || c.Height() != 3 {
		t.Errorf("size = %dx%d, expected 2x3", c.Width(), c.Height())
	}
	if c.cells[0].set {
		t.Error("Resize should discard old content")
	}

	c.Blend(1, 1, 9, 9, 9, 1)
	c.Clear()
	for i, cl := range c.cells {
		if cl.set {
			t.Errorf("cell %d still set after Clear", i)
		}
	}
}

func TestStringShape(t *testing.T) {
	c := NewCanvas(4, 3)
	c.Blend(0, 0, 255, 0, 0, 1)
	c.Blend(1, 0, 255, 0, 0, 1)

	out := c.String()
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, expected 3", len(lines))
	}
	if !strings.Contains(lines[0], "██") {
		t.Errorf("first line %q should contain a two-cell run", lines[0])
	}
	// Unset rows render as blanks.
	if strings.TrimSpace(stripANSI(lines[2])) != "" {
		t.Errorf("empty row rendered as %q", lines[2])
	}
}

// stripANSI removes escape sequences so shape assertions see only text.
func stripANSI(s string) string {
	var sb strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case inEsc:
			if r == 'm' {
				inEsc = false
			}
		case r == '\x1b':
			inEsc = true
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
