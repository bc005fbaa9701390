package internal

import "github.com/BrandonKowalski/landmarks/pkg/landmark/constants"

// Cursor walks the indices of an ordered sequence in one direction.
// It may step one position past either end; Overflowed reports that case
// so the caller can decide whether to wrap.
type Cursor struct {
	Index     int
	Length    int
	Direction constants.Direction
}

// NewCursor creates a cursor positioned one step away from current.
// A negative current means "outside the sequence": the cursor starts at the
// first element going forward or the last going backward.
func NewCursor(current, length int, dir constants.Direction) Cursor {
	c := Cursor{Length: length, Direction: dir}
	switch {
	case current < 0 && dir == constants.DirectionBackward:
		c.Index = length - 1
	case current < 0:
		c.Index = 0
	default:
		c.Index = current + dir.Step()
	}
	return c
}

// Advance moves the cursor one step in its direction.
func (c *Cursor) Advance() {
	c.Index += c.Direction.Step()
}

// Overflowed returns true if the cursor is past either end.
func (c Cursor) Overflowed() bool {
	return c.Index < 0 || c.Index >= c.Length
}

// Wrap moves an overflowed cursor to the opposite end of the sequence.
// Calling Wrap on an in-range cursor has no effect.
func (c *Cursor) Wrap() {
	if c.Index < 0 {
		c.Index = c.Length - 1
	} else if c.Index >= c.Length {
		c.Index = 0
	}
}

// Valid returns true if the cursor points at an element.
func (c Cursor) Valid() bool {
	return c.Length > 0 && !c.Overflowed()
}
