package core

import (
	"io"
	"strconv"
	"strings"
)

// String renders g as a human-readable adjacency dump:
//
//	Adjacency List:
//	  [0] --> 1 (w:4) -> 2 (w:1)
//	  [1] --> (none)
//
// The layout is meant for people, not parsers, and may change.
func (g *Graph) String() string {
	var sb strings.Builder
	sb.WriteString("Adjacency List:\n")
	for v, list := range g.adj {
		sb.WriteString("  [")
		sb.WriteString(strconv.Itoa(v))
		sb.WriteString("] --> ")
		if len(list) == 0 {
			sb.WriteString("(none)")
		}
		for i, nb := range list {
			if i > 0 {
				sb.WriteString(" -> ")
			}
			sb.WriteString(strconv.Itoa(nb.Vertex))
			sb.WriteString(" (w:")
			sb.WriteString(strconv.FormatInt(nb.Weight, 10))
			sb.WriteByte(')')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// WriteTo writes the String dump of g to w, implementing io.WriterTo.
func (g *Graph) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, g.String())

	return int64(n), err
}
