package console

import (
	"fmt"
	"io"
)

// Reporter prints rejection messages for the player.
type Reporter struct {
	w     io.Writer
	color bool
}

// NewReporter creates a Reporter writing to w, in red when color is set.
//
// Precondition: w must be non-nil.
func NewReporter(w io.Writer, color bool) *Reporter {
	return &Reporter{w: w, color: color}
}

// ReportError prints message framed by asterisks and blank lines.
func (r *Reporter) ReportError(message string) {
	text := fmt.Sprintf("*** %s ***", message)
	if r.color {
		text = Colorize(Red, text)
	}
	fmt.Fprintf(r.w, "\n%s\n\n", text)
}

// ReportInfo prints an informational line.
func (r *Reporter) ReportInfo(message string) {
	if r.color {
		message = Colorize(Cyan, message)
	}
	fmt.Fprintln(r.w, message)
}
