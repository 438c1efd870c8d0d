package merge

import (
	"errors"
	"fmt"
)

// ErrMixedDates indicates the sources disagree on a calendar date and no
// explicit output path was supplied.
var ErrMixedDates = errors.New("files correspond to multiple dates; supply --output to choose the destination")

// ErrUndeterminedDate indicates no source carried usable date evidence and no
// explicit output path was supplied.
var ErrUndeterminedDate = errors.New("unable to determine an output filename; rerun with --output <file>")

// InvalidPatternError reports a glob pattern with invalid syntax.
type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid glob pattern %q: %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error { return e.Err }

// NoMatchesError reports a pattern that expanded to zero files. Proceeding
// with fewer files than requested risks an incomplete document, so this is
// fatal.
type NoMatchesError struct {
	Pattern string
}

func (e *NoMatchesError) Error() string {
	return fmt.Sprintf("no files matched pattern %q", e.Pattern)
}
