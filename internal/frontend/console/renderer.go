package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cory-johannsen/bowling/internal/game/scoring"
)

const (
	normalCellWidth = 3
	finalCellWidth  = 5
)

// Renderer draws a two-line scoreboard: rolls on top, cumulative scores below.
// Every frame of the game gets a cell, including frames not yet reached.
type Renderer struct {
	w           io.Writer
	totalFrames int
}

// NewRenderer creates a Renderer writing to w.
//
// Precondition: w must be non-nil; totalFrames >= 1.
func NewRenderer(w io.Writer, totalFrames int) *Renderer {
	return &Renderer{w: w, totalFrames: totalFrames}
}

// Render writes the scoreboard for frames.
func (r *Renderer) Render(frames []scoring.Frame) {
	fmt.Fprint(r.w, FormatScoreboard(frames, r.totalFrames))
}

// FormatScoreboard lays out frames as a fixed-width scoreboard, e.g.
//
//	1:[4,/] 2:[ X ] 3:[6, ] ...
//	  [ 20]   [   ]   [   ] ...
//
// Postcondition: Returns two lines plus a trailing blank line.
func FormatScoreboard(frames []scoring.Frame, totalFrames int) string {
	var top, bottom strings.Builder

	for i := 0; i < totalFrames; i++ {
		number := i + 1
		kind := scoring.KindNormal
		if number == totalFrames {
			kind = scoring.KindFinal
		}

		rolls, score := "", ""
		if i < len(frames) {
			f := frames[i]
			kind = f.Kind
			if f.Err != nil {
				rolls = "ERR"
			} else {
				rolls = FormatRolls(f)
			}
			if s, ok := f.Score(); ok {
				score = strconv.Itoa(s)
			}
		}

		width := normalCellWidth
		if kind == scoring.KindFinal {
			width = finalCellWidth
		}

		label := fmt.Sprintf("%d:", number)
		fmt.Fprintf(&top, "%s[%-*s] ", label, width, rolls)
		fmt.Fprintf(&bottom, "%s[%*s] ", strings.Repeat(" ", len(label)), width, score)
	}

	return top.String() + "\n" + bottom.String() + "\n\n"
}

// FormatRolls converts a frame's rolls to bowling notation: X for a strike,
// / for a spare, - for a gutter ball.
func FormatRolls(f scoring.Frame) string {
	rolls := f.Rolls
	symbols := make([]string, len(rolls))
	for i, r := range rolls {
		symbols[i] = symbol(r)
	}

	if len(rolls) >= 2 && rolls[0] < scoring.MaxPins && rolls[0]+rolls[1] == scoring.MaxPins {
		symbols[1] = "/"
	}
	// Final frame: a strike followed by a spare on the bonus throws.
	if f.Kind == scoring.KindFinal && len(rolls) == 3 &&
		rolls[0] == scoring.MaxPins && rolls[1] < scoring.MaxPins &&
		rolls[1]+rolls[2] == scoring.MaxPins {
		symbols[2] = "/"
	}

	switch len(rolls) {
	case 0:
		return " "
	case 1:
		if rolls[0] == scoring.MaxPins && f.Kind == scoring.KindNormal {
			return " X "
		}
		return symbols[0] + ","
	default:
		return strings.Join(symbols, ",")
	}
}

func symbol(pins int) string {
	switch pins {
	case scoring.MaxPins:
		return "X"
	case 0:
		return "-"
	default:
		return strconv.Itoa(pins)
	}
}
