package lang

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/kr/pretty"
)

// kindColor maps a Kind to the color its tag is printed in by Pretty.
// Debug-only: never consulted on the evaluation hot path.
var kindColor = map[Kind]*color.Color{
	KindOne:         color.New(color.FgHiBlack),
	KindBool:        color.New(color.FgMagenta),
	KindInt:         color.New(color.FgCyan),
	KindFloat:       color.New(color.FgCyan),
	KindChar:        color.New(color.FgYellow),
	KindString:      color.New(color.FgGreen),
	KindSymbol:      color.New(color.FgWhite),
	KindKeySymbol:   color.New(color.FgBlue),
	KindList:        color.New(color.FgHiWhite),
	KindArray:       color.New(color.FgHiWhite),
	KindDict:        color.New(color.FgHiWhite),
	KindIf:          color.New(color.FgRed),
	KindFunc:        color.New(color.FgHiMagenta),
	KindMacro:       color.New(color.FgHiMagenta),
	KindForeignFunc: color.New(color.FgHiRed),
}

// Pretty renders a as "<Kind> value", with the Kind tag colorized — a
// debug aid for REPL/test output, never used by the evaluator itself (the
// "pretty error formatting for the terminal" the spec keeps out of scope
// is a richer, diagnostic-range-aware concern; this is a plain value dump).
func Pretty(a Ann) string {
	c, ok := kindColor[a.Value.Kind()]
	if !ok {
		c = color.New()
	}

	return fmt.Sprintf("%s %s", c.Sprint(a.Value.Kind().String()), a.Value.String())
}

// DumpTree renders the depth-first walk of a (via Iter) as one line per
// node, using kr/pretty to format each node's annotation map. A debug aid
// for inspecting a tree's shape and its resolver-stamped annotations
// together; see pretty_test.go for its own coverage.
func DumpTree(a Ann) string {
	var b strings.Builder

	for node := range Iter(a) {
		b.WriteString(Pretty(node))

		if len(node.Annotations) > 0 {
			b.WriteString(" ")
			b.WriteString(pretty.Sprint(node.Annotations))
		}

		b.WriteString("\n")
	}

	return b.String()
}
