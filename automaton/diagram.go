package automaton

import (
	"fmt"
	"io"
	"strings"
)

type edge struct {
	from, to StateID
	symbols  []string
}

// edges groups the symbols of each (from, to) pair so that a diagram draws
// one arrow per pair. Pairs keep the order of first appearance.
func edges(doc *Document) []*edge {
	var out []*edge
	index := make(map[[2]StateID]*edge)
	symbols := doc.Symbols()
	for _, s := range doc.States() {
		for _, c := range symbols {
			to, ok := doc.Next(s, c)
			if !ok || !doc.HasState(to) {
				continue
			}
			key := [2]StateID{s, to}
			e, ok := index[key]
			if !ok {
				e = &edge{from: s, to: to}
				index[key] = e
				out = append(out, e)
			}
			e.symbols = append(e.symbols, c.String())
		}
	}
	return out
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// WriteGraphviz writes a Graphviz DOT representation of doc to w. Accept
// states are drawn as double circles.
func WriteGraphviz(doc *Document, w io.Writer) error {
	var sb strings.Builder

	sb.WriteString("digraph DFA {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString(fmt.Sprintf("  label=\"%s\";\n", dotEscaper.Replace(doc.Name)))
	sb.WriteString("  node [shape=circle];\n\n")

	// Add invisible start node pointing to initial state
	sb.WriteString("  start [shape=point];\n")
	sb.WriteString(fmt.Sprintf("  start -> \"%s\";\n\n", dotEscaper.Replace(string(doc.StartState))))

	for _, s := range doc.States() {
		if doc.IsAccept(s) {
			sb.WriteString(fmt.Sprintf("  \"%s\" [shape=doublecircle];\n", s))
		} else {
			sb.WriteString(fmt.Sprintf("  \"%s\";\n", s))
		}
	}
	sb.WriteString("\n")

	for _, e := range edges(doc) {
		label := dotEscaper.Replace(strings.Join(e.symbols, ", "))
		sb.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\" [label=\"%s\"];\n", e.from, e.to, label))
	}

	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteMermaid writes a Mermaid stateDiagram-v2 representation of doc to w.
func WriteMermaid(doc *Document, w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")
	sb.WriteString(fmt.Sprintf("  [*] --> %s\n", doc.StartState))
	for _, e := range edges(doc) {
		sb.WriteString(fmt.Sprintf("  %s --> %s: %s\n", e.from, e.to, strings.Join(e.symbols, ", ")))
	}
	for _, s := range doc.States() {
		if doc.IsAccept(s) {
			sb.WriteString(fmt.Sprintf("  %s --> [*]\n", s))
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
