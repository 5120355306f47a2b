// Package selector implements section selection (spec §4.3): given a
// parsed Format and an input value, it picks the Section that should
// render the value and reports whether the caller must prefix a '-' the
// section itself does not already account for.
package selector

import (
	"github.com/gossf/ssf/internal/ast"
)

// Kind classifies the value being routed: a number or a text value.
// Booleans and empty values never reach section selection.
type Kind int

const (
	KindNumber Kind = iota
	KindText
)

// Result is the outcome of selecting a section for a value.
type Result struct {
	Section      ast.Section
	Index        int
	PrependMinus bool
}

// Select picks a section from f for a numeric value v (already the signed
// value; magnitude rendering is the caller's concern once a section is
// chosen) or, when kind is KindText, for the text path.
func Select(f *ast.Format, kind Kind, v float64) Result {
	if kind == KindText {
		return selectText(f)
	}

	for i, sec := range f.Sections {
		if sec.Condition != nil && sec.Condition.Matches(v) {
			return Result{Section: sec, Index: i}
		}
	}
	if anyConditioned(f) {
		if idx := lastUnconditioned(f); idx >= 0 {
			sec := f.Sections[idx]
			return Result{Section: sec, Index: idx, PrependMinus: v < 0 && !sectionHandlesSign(sec)}
		}
	}

	// With two or more sections, the section chosen for a negative value
	// is dedicated to that case and renders |v|: whether it shows a sign
	// at all (a literal '-', parentheses, color) is entirely up to its
	// own Parts, so the caller never adds one. Only the single-section
	// form, where one section must serve both signs, needs an automatic
	// minus.
	switch len(f.Sections) {
	case 1:
		return Result{Section: f.Sections[0], Index: 0, PrependMinus: v < 0 && !sectionHandlesSign(f.Sections[0])}
	case 2:
		if v >= 0 {
			return Result{Section: f.Sections[0], Index: 0}
		}
		return Result{Section: f.Sections[1], Index: 1}
	default:
		switch {
		case v > 0:
			return Result{Section: f.Sections[0], Index: 0}
		case v < 0:
			return Result{Section: f.Sections[1], Index: 1}
		default:
			return Result{Section: f.Sections[2], Index: 2}
		}
	}
}

func selectText(f *ast.Format) Result {
	if len(f.Sections) == 4 {
		return Result{Section: f.Sections[3], Index: 3}
	}
	for i, sec := range f.Sections {
		if hasTextPlaceholder(sec) {
			return Result{Section: sec, Index: i}
		}
	}
	return Result{Section: f.Sections[0], Index: 0}
}

func hasTextPlaceholder(sec ast.Section) bool {
	for _, p := range sec.Parts {
		if p.Kind == ast.PartText {
			return true
		}
	}
	return false
}

func anyConditioned(f *ast.Format) bool {
	for _, sec := range f.Sections {
		if sec.Condition != nil {
			return true
		}
	}
	return false
}

func lastUnconditioned(f *ast.Format) int {
	idx := -1
	for i, sec := range f.Sections {
		if sec.Condition == nil {
			idx = i
		}
	}
	return idx
}

// sectionHandlesSign reports whether a section's own literal text already
// carries a sign marker (a leading '-' literal), so the caller must not
// prefix a second one.
func sectionHandlesSign(sec ast.Section) bool {
	for _, p := range sec.Parts {
		switch p.Kind {
		case ast.PartLiteral:
			if p.Literal != "" && p.Literal[0] == '-' {
				return true
			}
			continue
		case ast.PartFill, ast.PartSkip, ast.PartLocale:
			continue
		default:
			return false
		}
	}
	return false
}
