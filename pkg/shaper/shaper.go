// Package shaper converts arbitrarily large unified-diff text into a
// bounded-size representation that keeps the highest-signal content, for
// consumption by an LLM call with a fixed input budget.
//
// Four strategies are available: Full (complete diff with boundary-aware
// truncation), Files (whole files ranked by priority), Hunks (individual
// hunks ranked by semantic score, with per-file fairness), and Semantic
// (a JSON IR with adaptive detail reduction). Shaping is a pure in-memory
// transformation: no I/O, no shared state, safe for concurrent calls.
package shaper

import "fmt"

// truncationReserve is withheld from the budget for truncation markers.
const truncationReserve = 50

// Shaper shapes diffs using an injected set of pattern tables.
type Shaper struct {
	tables Tables
}

// New returns a Shaper using the given tables.
func New(t Tables) *Shaper {
	return &Shaper{tables: t}
}

// Default returns a Shaper using the production tables.
func Default() *Shaper {
	return New(DefaultTables())
}

// Shape runs the selected packing strategy over raw diff text. stat is an
// optional `diff --stat` summary embedded in the output ("" to omit).
// maxChars is the character budget for the shaped text. When includeHeader
// is set, the output is prefixed with a preview banner.
func (s *Shaper) Shape(raw, stat string, maxChars int, alg Algorithm, includeHeader bool) (string, DiffStats) {
	var (
		out   string
		stats DiffStats
	)
	switch alg {
	case AlgFull:
		out, stats = s.full(raw, stat, maxChars)
	case AlgHunks:
		out, stats = s.hunks(raw, stat, maxChars)
	case AlgSemantic:
		out, stats = s.semantic(raw, stat, maxChars)
	default:
		out, stats = s.files(raw, stat, maxChars)
	}

	if includeHeader {
		header := fmt.Sprintf(
			"=== gitshape LLM DIFF PREVIEW ===\n"+
				"alg: %d - %s\n"+
				"max_chars: %d\n"+
				"===============================\n\n",
			alg.Num(), alg.Name(), maxChars)
		out = header + out
	}
	return out, stats
}

// Shape shapes raw diff text with the production tables.
func Shape(raw, stat string, maxChars int, alg Algorithm, includeHeader bool) (string, DiffStats) {
	return Default().Shape(raw, stat, maxChars, alg, includeHeader)
}

// statHeader writes the optional `diff --stat` section.
func statHeader(stat string) string {
	if stat == "" {
		return ""
	}
	return "=== diff --stat ===\n" + stat + "\n\n"
}
