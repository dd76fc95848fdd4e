/*
Package blockview renders 2D block decompositions on a terminal.

It is a debugging aid in the spirit of graphviz dumps: given a pool of
2-dimensional extents, it draws the covered index region as a character
map, one cell per index pair, colored by owning pool position. Index
nodes on a shared sub-block boundary belong to several extents and are
marked as overlap.
*/
package blockview

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/solverkit/bsgrid"
	"golang.org/x/term"
)

// palette cycles over pool positions.
var palette = []*color.Color{
	color.New(color.FgRed),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgBlue),
	color.New(color.FgMagenta),
	color.New(color.FgCyan),
}

var overlapMark = color.New(color.FgWhite, color.Bold)

// Render draws the pool as a block map onto w, highest index row first
// so the map reads like a plot. Every extent in the pool must be
// 2-dimensional.
//
// Cells covered by exactly one extent show that extent's pool position
// (mod 10) in its color, cells shared between extents show a '+', and
// uncovered cells inside the pool's bounding box a '·'.
func Render(w io.Writer, pool bsgrid.Pool) error {
	return render(w, pool, 0)
}

// Print renders the pool to stdout, truncating rows to the terminal
// width when stdout is a terminal.
func Print(pool bsgrid.Pool) error {
	cols := 0
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cols = width
	}
	return render(os.Stdout, pool, cols)
}

func render(w io.Writer, pool bsgrid.Pool, maxCols int) error {
	if len(pool) == 0 {
		return nil
	}
	for i, e := range pool {
		if e.Dim() != 2 {
			return fmt.Errorf("%w: pool position %d has dimension %d, block map needs 2",
				bsgrid.ErrInvalidDimension, i, e.Dim())
		}
	}
	box := boundingBox(pool)
	coord := make([]int, 2)
	for y := box[1].Hi; y >= box[1].Lo; y-- {
		cols := box[0].Len()
		if maxCols > 0 && cols > maxCols {
			cols = maxCols
		}
		for x := box[0].Lo; x < box[0].Lo+cols; x++ {
			coord[0], coord[1] = x, y
			owner := -1
			shared := false
			for i, e := range pool {
				in, err := e.Contains(coord)
				if err != nil {
					return err
				}
				if !in {
					continue
				}
				if owner >= 0 {
					shared = true
					break
				}
				owner = i
			}
			switch {
			case shared:
				overlapMark.Fprint(w, "+")
			case owner >= 0:
				palette[owner%len(palette)].Fprintf(w, "%d", owner%10)
			default:
				fmt.Fprint(w, "·")
			}
		}
		fmt.Fprintln(w)
	}
	return nil
}

// boundingBox returns the per-dimension union of all pool bounds.
func boundingBox(pool bsgrid.Pool) [2]bsgrid.Range {
	var box [2]bsgrid.Range
	for d := 0; d < 2; d++ {
		box[d] = pool[0].Bound(d)
		for _, e := range pool[1:] {
			r := e.Bound(d)
			box[d].Lo = min(box[d].Lo, r.Lo)
			box[d].Hi = max(box[d].Hi, r.Hi)
		}
	}
	return box
}
