package lang

import "fmt"

// Range is a half-open [Start, End) interval of UTF-8 byte offsets into a
// source string. It is attached to every Token and to every Ann the parser
// produces, and is the sole carrier of location information for diagnostics.
type Range struct {
	Start int
	End   int
}

// String renders a Range as "start..end", matching the slice-range notation
// used throughout the parser's own error messages.
func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

// Contains reports whether other falls entirely within r, per the range
// containment invariant every parsed child must satisfy against its parent.
func (r Range) Contains(other Range) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// Merge returns the smallest Range covering both r and other: the start of
// whichever began first, the end of whichever finished last. Used when a
// composite node's Range is derived from the Ranges of its parts.
func (r Range) Merge(other Range) Range {
	start := r.Start
	if other.Start < start {
		start = other.Start
	}

	end := r.End
	if other.End > end {
		end = other.End
	}

	return Range{Start: start, End: end}
}
