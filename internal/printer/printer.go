// Package printer implements the §6.4 printed representations: write
// (machine-readable, re-readable) and display (human-readable).
// Grounded on the teacher's print.go, generalized to the full tag set
// (characters, strings, vectors, ports) the teacher's Print never
// covered.
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ondrovic/goschem/internal/value"
)

// Write renders v in re-readable form: strings quoted and escaped,
// characters as #\space/#\newline/#\<c>.
func Write(v value.Value) string {
	var sb strings.Builder
	writeValue(&sb, v, true)
	return sb.String()
}

// Display renders v in human-readable form: strings and characters
// raw.
func Display(v value.Value) string {
	var sb strings.Builder
	writeValue(&sb, v, false)
	return sb.String()
}

func writeValue(sb *strings.Builder, v value.Value, write bool) {
	switch v.Tag() {
	case value.Boolean:
		if v.Bool() {
			sb.WriteString("#t")
		} else {
			sb.WriteString("#f")
		}
	case value.Number:
		sb.WriteString(formatNumber(v.Num()))
	case value.Character:
		if write {
			sb.WriteString(writeChar(v.Char()))
		} else {
			sb.WriteRune(v.Char())
		}
	case value.String:
		if write {
			sb.WriteByte('"')
			for _, b := range v.Bytes() {
				switch b {
				case '"':
					sb.WriteString(`\"`)
				case '\\':
					sb.WriteString(`\\`)
				default:
					sb.WriteByte(b)
				}
			}
			sb.WriteByte('"')
		} else {
			sb.Write(v.Bytes())
		}
	case value.Symbol:
		sb.WriteString(v.SymbolName())
	case value.Pair:
		writePair(sb, v, write)
	case value.Vector:
		sb.WriteString("#(")
		for i, e := range v.Elems() {
			if i > 0 {
				sb.WriteByte(' ')
			}
			writeValue(sb, e, write)
		}
		sb.WriteByte(')')
	case value.Procedure:
		p := v.Proc()
		name := p.Name
		if name == "" {
			name = "anonymous"
		}
		fmt.Fprintf(sb, "#<procedure %s>", name)
	case value.InputPort:
		fmt.Fprintf(sb, "#<input port %p>", v.Cell())
	case value.OutputPort:
		fmt.Fprintf(sb, "#<output port %p>", v.Cell())
	}
}

func writePair(sb *strings.Builder, v value.Value, write bool) {
	if value.IsNull(v) {
		sb.WriteString("()")
		return
	}
	sb.WriteByte('(')
	writeValue(sb, v.Car(), write)
	rest := v.Cdr()
	for {
		if value.IsNull(rest) {
			break
		}
		if rest.Tag() != value.Pair {
			sb.WriteString(" . ")
			writeValue(sb, rest, write)
			break
		}
		sb.WriteByte(' ')
		writeValue(sb, rest.Car(), write)
		rest = rest.Cdr()
	}
	sb.WriteByte(')')
}

func writeChar(r rune) string {
	switch r {
	case ' ':
		return `#\space`
	case '\n':
		return `#\newline`
	case '\t':
		return `#\tab`
	default:
		return `#\` + string(r)
	}
}

// formatNumber renders a double the shortest round-trippable way
// (§6.4 "%lg style").
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}
