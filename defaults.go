package ringviz

import (
	"fmt"

	"golang.org/x/image/colornames"
)

// DefaultTable returns a color table pre-seeded with the SVG 1.1 named
// palette, so a pass can resolve common names (red, steelblue, ...) with
// no user configuration. Caller-defined entries are added on top with
// Define; redefining a palette name with a different value is a conflict
// like any other.
func DefaultTable() *Table {
	t := NewTable()
	for _, name := range colornames.Names {
		c := colornames.Map[name]
		// Names and channel values come from a vetted constant table, so
		// Define cannot fail here.
		if err := t.Define(name, fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)); err != nil {
			panic(err)
		}
	}
	return t
}
