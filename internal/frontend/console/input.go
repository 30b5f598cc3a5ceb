package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Bowler accepts throws one at a time.
type Bowler interface {
	KnockDownPins(pins int)
	Over() bool
}

// Play reads one pin count per line from r and feeds it to b until EOF, the
// game is over, or ctx is cancelled. Blank lines are skipped; lines that are
// not integers are reported and skipped.
//
// Postcondition: Returns nil on EOF, game over, or cancellation; otherwise the read error.
func Play(ctx context.Context, r io.Reader, b Bowler, reporter *Reporter) error {
	scanner := bufio.NewScanner(r)
	for !b.Over() {
		if ctx.Err() != nil {
			return nil
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		pins, err := strconv.Atoi(line)
		if err != nil {
			reporter.ReportError(fmt.Sprintf("not a pin count: %q", line))
			continue
		}
		b.KnockDownPins(pins)
	}
	reporter.ReportInfo("game over")
	return nil
}
