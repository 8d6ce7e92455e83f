package pbo

import (
	"fmt"
	"strings"
)

// Serialize renders m as an OPB-like text buffer: a header line, a
// minimization objective, then one constraint per line, LF line endings
// throughout.
func Serialize(m *Model) string {
	var b strings.Builder

	fmt.Fprintf(&b, "* #variable= %d #constraint= %d\n", m.NumVariables(), len(m.Constraints))

	b.WriteString("min: ")
	writeTerms(&b, m.Objective)
	b.WriteString(" ;\n")

	for _, c := range m.Constraints {
		writeTerms(&b, c.Terms)
		fmt.Fprintf(&b, " %s %d ;\n", c.Op, c.RHS)
	}

	return b.String()
}

// writeTerms writes a space-separated term list: "<factor> [~]x<literal>".
func writeTerms(b *strings.Builder, terms []Term) {
	for i, t := range terms {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(b, "%d ", t.Factor)
		if t.Negated {
			b.WriteString("~")
		}
		fmt.Fprintf(b, "x%d", t.Literal)
	}
}
