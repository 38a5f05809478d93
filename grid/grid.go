package grid

import (
	"github.com/jjac/pathfind/adjlist"
)

// Grid treats a 2-D integer grid as graph input. It is immutable once built:
// values[y][x] holds a deep copy of the input, opts fixes threshold,
// connectivity and encoding, offsets is precomputed for adjacency scans.
type Grid struct {
	width, height int
	values        [][]int
	opts          Options
	offsets       [][2]int
}

// NewGrid constructs a Grid from a non-empty, rectangular 2-D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if the slice has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrCoordOutOfRange if
// the packed encoding is selected and a dimension exceeds 16 bits.
// Complexity: O(W×H) time and memory.
func NewGrid(values [][]int, opts Options) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if opts.Encoding == EncodingPacked && (w > packLimit || h > packLimit) {
		return nil, ErrCoordOutOfRange
	}

	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	offsets := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return &Grid{
		width:   w,
		height:  h,
		values:  cells,
		opts:    opts,
		offsets: offsets,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsWalkable reports whether (x,y) is in bounds and not a wall.
// Complexity: O(1).
func (g *Grid) IsWalkable(x, y int) bool {
	return g.InBounds(x, y) && g.values[y][x] >= g.opts.WalkThreshold
}

// NodeID renders the identifier of cell (x,y) under the grid's encoding.
// Returns ErrCoordOutOfRange for cells outside the grid.
func (g *Grid) NodeID(x, y int) (string, error) {
	if !g.InBounds(x, y) {
		return "", ErrCoordOutOfRange
	}
	if g.opts.Encoding == EncodingPacked {
		return PackKey(x, y)
	}

	return CoordKey(x, y), nil
}

// ToAdjList compiles the grid into an adjacency-list store: every walkable
// cell becomes a node, and unit-weight arcs connect adjacent walkable cells
// in both directions according to the grid's connectivity. Wall cells are
// excluded entirely, so a path can never thread through them.
// Node registration follows row-major order, keeping store iteration
// deterministic.
// Complexity: O(W×H×d) time, O(W×H + E) memory.
func (g *Grid) ToAdjList() *adjlist.AdjList {
	l := adjlist.New()

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.IsWalkable(x, y) {
				continue
			}
			id, _ := g.NodeID(x, y) // in bounds; packed dims validated at NewGrid
			_ = l.AddNode(id)
			for _, d := range g.offsets {
				nx, ny := x+d[0], y+d[1]
				if !g.IsWalkable(nx, ny) {
					continue
				}
				nid, _ := g.NodeID(nx, ny)
				_ = l.AddArc(id, nid, 1)
			}
		}
	}

	return l
}
