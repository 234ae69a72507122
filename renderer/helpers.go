package renderer

import "io"

// SectionPrinter prints a section header lazily, only when the section turns
// out to have at least one row.
type SectionPrinter struct {
	headerFunc       func(io.Writer)
	hasPrintedHeader bool
}

// Header creates a SectionPrinter with the function that prints the section header.
func Header(f func(io.Writer)) *SectionPrinter {
	return &SectionPrinter{headerFunc: f}
}

// PrintHeader prints the section header, but only on the first call.
// Subsequent calls do nothing. It should be called just before printing each row.
func (p *SectionPrinter) PrintHeader(w io.Writer) {
	if p.hasPrintedHeader {
		return
	}
	p.hasPrintedHeader = true
	if p.headerFunc != nil {
		p.headerFunc(w)
	}
}

// Printed reports whether any row caused the header to be printed.
func (p *SectionPrinter) Printed() bool { return p.hasPrintedHeader }
