package fontdat

import (
	"errors"
	"strconv"
)

// ErrFormatMismatch is returned when data does not have the exact length
// of a known layout.
var ErrFormatMismatch = errors.New("fontdat: data does not match glyph table layout")

// SizeError reports the length of rejected data.
type SizeError struct {
	Got  int
	Want []int
}

func (e *SizeError) Error() string {
	s := "fontdat: invalid length " + strconv.Itoa(e.Got) + ", want"
	for i, w := range e.Want {
		if i > 0 {
			s += " or"
		}
		s += " " + strconv.Itoa(w)
	}
	return s
}

func (e *SizeError) Unwrap() error { return ErrFormatMismatch }
