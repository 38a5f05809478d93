package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// packLimit bounds each axis of the packed encoding to 16 bits.
const packLimit = 1 << 16

// CoordKey renders (x,y) as the "x-y" string identifier.
func CoordKey(x, y int) string {
	return strconv.Itoa(x) + "-" + strconv.Itoa(y)
}

// ParseCoordKey recovers (x,y) from an "x-y" identifier.
// Returns ErrBadNodeID for anything that does not parse as two
// non-negative integers joined by a dash.
func ParseCoordKey(id string) (x, y int, err error) {
	xs, ys, ok := strings.Cut(id, "-")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadNodeID, id)
	}
	if x, err = strconv.Atoi(xs); err != nil || x < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadNodeID, id)
	}
	if y, err = strconv.Atoi(ys); err != nil || y < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadNodeID, id)
	}

	return x, y, nil
}

// PackKey packs two 16-bit coordinates into one integer, x in the high half
// and y in the low half, rendered in decimal.
// Returns ErrCoordOutOfRange if either axis does not fit 16 bits.
func PackKey(x, y int) (string, error) {
	if x < 0 || x >= packLimit || y < 0 || y >= packLimit {
		return "", fmt.Errorf("%w: (%d,%d) exceeds 16 bits per axis", ErrCoordOutOfRange, x, y)
	}

	return strconv.Itoa(x<<16 | y), nil
}

// ParsePackKey recovers (x,y) from a packed decimal identifier.
// Returns ErrBadNodeID for non-numeric or out-of-range input.
func ParsePackKey(id string) (x, y int, err error) {
	v, err := strconv.Atoi(id)
	if err != nil || v < 0 || v >= packLimit*packLimit {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadNodeID, id)
	}

	return v >> 16, v & (packLimit - 1), nil
}
