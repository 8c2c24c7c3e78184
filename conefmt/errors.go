package conefmt

import "errors"

var (
	// ErrParse indicates a malformed input line: missing bracket or a
	// non-integer token. The wrapped message carries the line.
	ErrParse = errors.New("conefmt: parse error")

	// ErrSize indicates rows of differing widths, or a width that is not
	// a power of two.
	ErrSize = errors.New("conefmt: size error")
)
