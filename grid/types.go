// Package grid defines options, encodings and sentinel errors for the
// grid-to-graph compiler.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the input 2-D slice has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrCoordOutOfRange indicates a coordinate does not fit the encoding
	// (the packed scheme carries 16 bits per axis) or lies outside the grid.
	ErrCoordOutOfRange = errors.New("grid: coordinate out of range")

	// ErrBadNodeID indicates a node identifier that does not parse under
	// the selected encoding.
	ErrBadNodeID = errors.New("grid: malformed node ID")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Encoding selects the node identifier scheme for a grid's cells.
type Encoding int

const (
	// EncodingCoordKey renders (x,y) as the string "x-y".
	EncodingCoordKey Encoding = iota
	// EncodingPacked packs two 16-bit coordinates into one integer,
	// x in the high half and y in the low half, rendered in decimal.
	EncodingPacked
)

// Options contains tunable parameters for grid compilation.
type Options struct {
	// WalkThreshold is the minimum cell value considered walkable.
	// Cells below it are walls: excluded from the store entirely.
	WalkThreshold int

	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity

	// Encoding chooses the node identifier scheme.
	Encoding Encoding
}

// DefaultOptions returns Options with default settings:
// WalkThreshold=1 (values ≥ 1 are walkable), Conn4, "x-y" keys.
func DefaultOptions() Options {
	return Options{
		WalkThreshold: 1,
		Conn:          Conn4,
		Encoding:      EncodingCoordKey,
	}
}
