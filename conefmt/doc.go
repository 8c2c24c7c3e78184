// Package conefmt reads and writes the line-oriented textual matrix
// format shared by the elimination tools:
//
//	# any '#' starts a comment to end of line
//	[   0  -1   0   1 ]
//	[   0   0  -1   1 ]
//	[   0   1   1  -1 ]
//
// Each non-empty, non-comment line is one row: whitespace-separated
// integer coefficients between '[' and ']'. All rows of one stream must
// share the same width, and the width must be a power of two, so that
// the variable count N = log₂(ncols) is well defined. The leading
// padding column (index 0, the empty set) appears in files and is
// preserved verbatim on both consumption and emission.
//
// Parse failures carry ErrParse (malformed line) or ErrSize (width
// mismatch, width not a power of two), matched with errors.Is.
package conefmt
