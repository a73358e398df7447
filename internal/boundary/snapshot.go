package boundary

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/mkostin/pathgrid/internal/grid"
	"github.com/mkostin/pathgrid/internal/world"
)

// Snapshot wire format, little-endian:
//
//	magic "PGRD", version u8
//	width u16, height u16
//	width*height terrain bytes (row-major)
//	start x,y u16; goal x,y u16
//	path length u32, then x,y u16 pairs
//
// The encoding is the contiguous byte region a sandboxing host reads to
// fetch tile and path data without extra calls.

var snapshotMagic = [4]byte{'P', 'G', 'R', 'D'}

const snapshotVersion = 1

// ErrBadSnapshot is returned when snapshot bytes fail to decode.
var ErrBadSnapshot = errors.New("boundary: malformed snapshot")

// DecodedState is the host-side view of a snapshot.
type DecodedState struct {
	Grid  *grid.Grid
	Start grid.Coord
	Goal  grid.Coord
	Path  []grid.Coord
}

// EncodeState serializes a world into snapshot bytes.
func EncodeState(s *world.State) []byte {
	g := s.Grid
	buf := make([]byte, 0, 4+1+4+g.W*g.H+8+4+len(s.Path)*4)

	buf = append(buf, snapshotMagic[:]...)
	buf = append(buf, snapshotVersion)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(g.W))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(g.H))

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			tile, err := g.TileAt(grid.C(x, y))
			if err != nil {
				continue
			}
			buf = append(buf, byte(tile.Terrain))
		}
	}

	buf = appendCoord(buf, s.Start)
	buf = appendCoord(buf, s.Goal)

	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(s.Path)))
	for _, c := range s.Path {
		buf = appendCoord(buf, c)
	}
	return buf
}

func appendCoord(buf []byte, c grid.Coord) []byte {
	buf = binary.LittleEndian.AppendUint16(buf, uint16(c.X))
	return binary.LittleEndian.AppendUint16(buf, uint16(c.Y))
}

// DecodeState parses snapshot bytes back into a host-side state view.
func DecodeState(data []byte) (*DecodedState, error) {
	if len(data) < 9 || [4]byte(data[:4]) != snapshotMagic {
		return nil, fmt.Errorf("%w: bad header", ErrBadSnapshot)
	}
	if data[4] != snapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrBadSnapshot, data[4])
	}

	w := int(binary.LittleEndian.Uint16(data[5:7]))
	h := int(binary.LittleEndian.Uint16(data[7:9]))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrBadSnapshot, w, h)
	}

	rest := data[9:]
	if len(rest) < w*h+8+4 {
		return nil, fmt.Errorf("%w: truncated body", ErrBadSnapshot)
	}

	g := grid.NewUniform(w, h, grid.TerrainPlain)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.SetTerrain(grid.C(x, y), grid.Terrain(rest[y*w+x]))
		}
	}
	rest = rest[w*h:]

	start, rest := readCoord(rest)
	goal, rest := readCoord(rest)

	n := int(binary.LittleEndian.Uint32(rest[:4]))
	rest = rest[4:]
	if len(rest) < n*4 {
		return nil, fmt.Errorf("%w: truncated path", ErrBadSnapshot)
	}
	path := make([]grid.Coord, 0, n)
	for i := 0; i < n; i++ {
		var c grid.Coord
		c, rest = readCoord(rest)
		path = append(path, c)
	}

	return &DecodedState{Grid: g, Start: start, Goal: goal, Path: path}, nil
}

func readCoord(buf []byte) (grid.Coord, []byte) {
	x := int(binary.LittleEndian.Uint16(buf[:2]))
	y := int(binary.LittleEndian.Uint16(buf[2:4]))
	return grid.C(x, y), buf[4:]
}
