package conefmt

import (
	"fmt"
	"io"

	"github.com/katalvlaran/entcone/cone"
)

// Write emits each row on its own line in the bracketed format, with
// coefficients right-aligned to three columns (wider values simply take
// the room they need).
func Write(w io.Writer, m cone.Matrix) error {
	for _, v := range m {
		if _, err := fmt.Fprintln(w, v.String()); err != nil {
			return fmt.Errorf("conefmt: write: %w", err)
		}
	}

	return nil
}

// WriteSystem emits the system's rows in their current order.
func WriteSystem(w io.Writer, s *cone.System) error {
	return Write(w, s.Rows())
}
