// Package render pretty-prints the artifacts the core pipeline produces
// (patterns, grammar, FIRST/FOLLOW, the parse table, and parse trees) for
// debug output. None of it is exercised by compilation or parsing
// themselves — it is an I/O adapter: cliapp prints every parse result
// with Tree, and wires in the other renderers only under its --debug
// flag.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/rosed"

	"github.com/shadowCow/llspecparse-go/parsetree"
)

const wrapWidth = 72

// Patterns renders a Store's declared names as one comma-separated list,
// wrapped to wrapWidth so long pattern lists stay readable in a terminal.
func Patterns(names []string) string {
	return rosed.Edit(strings.Join(names, ", ")).Wrap(wrapWidth).String()
}

// Grammar renders a grammar's nonterminal names in declaration order.
func Grammar(names []string) string {
	return rosed.Edit(strings.Join(names, ", ")).Wrap(wrapWidth).String()
}

// Sets renders an insertion-ordered FIRST or FOLLOW mapping. lookup is
// called once per name in names, in order, to fetch the set's members.
func Sets(label string, names []string, lookup func(string) []string) string {
	var b strings.Builder
	for _, name := range names {
		items := lookup(name)
		line := fmt.Sprintf("%s(%s) = {%s}", label, name, strings.Join(items, ", "))
		b.WriteString(rosed.Edit(line).Wrap(wrapWidth).String())
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// TableCell is one row of a rendered parse table.
type TableCell struct {
	Nonterminal string
	Terminal    string
	Alternative []string
}

// Table renders a flattened list of table cells, sorted for stable
// output, one cell per line.
func Table(cells []TableCell) string {
	sorted := append([]TableCell(nil), cells...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Nonterminal != sorted[j].Nonterminal {
			return sorted[i].Nonterminal < sorted[j].Nonterminal
		}
		return sorted[i].Terminal < sorted[j].Terminal
	})

	var b strings.Builder
	for _, c := range sorted {
		line := fmt.Sprintf("(%s, %s) -> %s", c.Nonterminal, c.Terminal, strings.Join(c.Alternative, " "))
		b.WriteString(rosed.Edit(line).Wrap(wrapWidth).String())
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// Conflict is one parse table cell that received more than one
// competing alternative during table construction.
type Conflict struct {
	Nonterminal  string
	Terminal     string
	Alternatives [][]string
}

// Conflicts renders a list of table conflicts, one per line. An empty
// list renders as a single "none" line.
func Conflicts(conflicts []Conflict) string {
	if len(conflicts) == 0 {
		return "none"
	}

	var b strings.Builder
	for _, c := range conflicts {
		alts := make([]string, len(c.Alternatives))
		for i, alt := range c.Alternatives {
			alts[i] = strings.Join(alt, " ")
		}
		line := fmt.Sprintf("(%s, %s): %s", c.Nonterminal, c.Terminal, strings.Join(alts, " | "))
		b.WriteString(rosed.Edit(line).Wrap(wrapWidth).String())
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// Tree renders the subtree rooted at id as a recursively indented
// listing, one node per line, mirroring the original reference
// implementation's AST dump.
func Tree(tree *parsetree.Tree, id parsetree.NodeID) string {
	var b strings.Builder
	writeTree(&b, tree, id, 0)
	return strings.TrimRight(b.String(), "\n")
}

func writeTree(b *strings.Builder, tree *parsetree.Tree, id parsetree.NodeID, level int) {
	n := tree.Get(id)
	indent := strings.Repeat("  ", level)

	if n.Kind == parsetree.Leaf {
		fmt.Fprintf(b, "%s%s: %q\n", indent, n.Name, n.Lexeme)
		return
	}

	fmt.Fprintf(b, "%s%s\n", indent, n.Name)
	for _, c := range n.Children {
		writeTree(b, tree, c, level+1)
	}
}
