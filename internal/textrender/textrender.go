// Package textrender implements the Text section of the format path: a
// single pass that substitutes the input string for every "@" placeholder
// and passes literals through unchanged.
package textrender

import (
	"strings"

	"github.com/gossf/ssf/internal/ast"
)

// Render renders value through sec, which must be Text-classified. If the
// section produces no output at all (no PartText, no PartLiteral), the raw
// value is returned so text is never silently dropped.
func Render(sec ast.Section, value string) string {
	var b strings.Builder
	wrote := false
	for _, p := range sec.Parts {
		switch p.Kind {
		case ast.PartText:
			b.WriteString(value)
			wrote = true
		case ast.PartLiteral:
			b.WriteString(p.Literal)
			wrote = true
		case ast.PartFill:
			b.WriteByte(p.FillChar)
			wrote = true
		case ast.PartSkip:
			b.WriteByte(' ')
			wrote = true
		}
	}
	if !wrote {
		return value
	}
	return b.String()
}
