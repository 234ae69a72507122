// Package renderer turns ledger results into markdown reports for the CLI.
package renderer

import (
	"fmt"
	"strings"
)

// mdRenderer accumulates a markdown document.
type mdRenderer struct {
	*strings.Builder
}

func newRenderer() *mdRenderer {
	return &mdRenderer{Builder: &strings.Builder{}}
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *mdRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}
