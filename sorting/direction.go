package sorting

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDirection is returned when a direction string cannot be parsed.
var ErrInvalidDirection = errors.New("invalid sort direction")

// Direction selects the output order of a sort.
type Direction bool

const (
	Ascending  Direction = true
	Descending Direction = false
)

// DirectionOf converts the boolean flag used across the public API.
func DirectionOf(ascending bool) Direction {
	return Direction(ascending)
}

func (d Direction) Ascending() bool {
	return bool(d)
}

func (d Direction) String() string {
	if d {
		return "asc"
	}

	return "desc"
}

// ParseDirection accepts asc, ascending, desc and descending in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}

	return Ascending, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}
