package internal

import (
	"fmt"
	"strings"

	"lc4riot/lc4"
)

// Grid rendering for --trace.
//
// Every processed symbol produces one block:
//
//	message[3] encrypt 'h' -> 'x'  marker (2,4)
//	  x  v  7  y  d  q       q  x  v  7  y  d
//	  ...                    ...
//
// The left grid is the state before the step with the input symbol in cyan and
// the output symbol in purple. The right grid is the state after the step with
// the marker cell in brackets (and reversed when color is enabled).

// RenderGrid formats one cipher step.
func RenderGrid(step lc4.Step) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %q -> %q  marker (%d,%d)\n",
		Style(fmt.Sprintf("%s[%d]", step.Phase, step.Position), Bold),
		step.Direction, step.Input, step.Output,
		step.Marker.Row, step.Marker.Col)

	if step.After == nil {
		return b.String()
	}
	n := step.After.Size()
	for r := 0; r < n; r++ {
		b.WriteString(" ")
		if step.Before != nil {
			for c := 0; c < n; c++ {
				sym := step.Mode.Symbol(step.Before.At(r, c))
				cell := " " + string(sym) + " "
				switch sym {
				case step.Input:
					cell = Style(cell, Bold, Cyan)
				case step.Output:
					cell = Style(cell, Bold, Purple)
				}
				b.WriteString(cell)
			}
			b.WriteString("    ")
		}
		for c := 0; c < n; c++ {
			sym := string(step.Mode.Symbol(step.After.At(r, c)))
			if r == step.Marker.Row && c == step.Marker.Col {
				b.WriteString(Style("["+sym+"]", Bold, Reverse))
				continue
			}
			b.WriteString(" " + sym + " ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderKey lays out a full-length key as the grid it produces, one row per
// line. Keys of any other length are returned unchanged.
func RenderKey(key string, mode lc4.Mode) string {
	n := mode.Size()
	if len(key) != n*n {
		return key
	}
	var b strings.Builder
	for r := 0; r < n; r++ {
		b.WriteString(strings.Join(strings.Split(key[r*n:(r+1)*n], ""), " "))
		b.WriteString("\n")
	}
	return b.String()
}
