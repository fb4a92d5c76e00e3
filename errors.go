package ifs

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySystem is returned when a system has no maps.
	ErrEmptySystem = errors.New("ifs: system has no maps")
	// ErrMalformedMap matches every *MalformedMapError.
	ErrMalformedMap = errors.New("ifs: malformed map")
	// ErrInconsistentRowLength matches every *InconsistentRowLengthError.
	ErrInconsistentRowLength = errors.New("ifs: system mixes weighted and unweighted maps")
	// ErrNoIterationYet is returned by [IFS.Color] before any map has been
	// chosen.
	ErrNoIterationYet = errors.New("ifs: no iteration yet")
)

// MalformedMapError reports a row whose length is neither 6 nor 7.
type MalformedMapError struct {
	// Row is the index of the offending row in the system, or -1 if the row
	// was given on its own.
	Row int
	Len int
}

func (err *MalformedMapError) Error() string {
	if err.Row < 0 {
		return fmt.Sprintf("ifs: malformed map: got %d coefficients, want 6 or 7", err.Len)
	}
	return fmt.Sprintf("ifs: malformed map %d: got %d coefficients, want 6 or 7", err.Row, err.Len)
}

func (err *MalformedMapError) Is(target error) bool { return target == ErrMalformedMap }

// InconsistentRowLengthError reports a system in which some maps carry a
// weight and others don't. Want is the length of the first row.
type InconsistentRowLengthError struct {
	Row  int
	Len  int
	Want int
}

func (err *InconsistentRowLengthError) Error() string {
	return fmt.Sprintf("ifs: map %d has %d coefficients, but map 0 has %d; weights must be given for all maps or none",
		err.Row, err.Len, err.Want)
}

func (err *InconsistentRowLengthError) Is(target error) bool {
	return target == ErrInconsistentRowLength
}
