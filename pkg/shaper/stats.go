package shaper

import "fmt"

// charsPerToken is a conservative chars-to-tokens ratio for code.
const charsPerToken = 3.5

// Algorithm selects a diff packing strategy.
type Algorithm int

const (
	// AlgFull reproduces the complete diff, truncated only by budget.
	AlgFull Algorithm = iota + 1
	// AlgFiles packs whole files ranked by priority (the default).
	AlgFiles
	// AlgHunks packs individual hunks ranked by semantic score.
	AlgHunks
	// AlgSemantic emits a JSON IR with file summaries and scored hunks.
	AlgSemantic
)

// AlgorithmFromNum maps a numeric selector to an Algorithm, defaulting to
// AlgFiles for out-of-range values.
func AlgorithmFromNum(n int) Algorithm {
	switch n {
	case 1:
		return AlgFull
	case 2:
		return AlgFiles
	case 3:
		return AlgHunks
	case 4:
		return AlgSemantic
	default:
		return AlgFiles
	}
}

// Num returns the numeric selector for the algorithm.
func (a Algorithm) Num() int { return int(a) }

// Name returns the human-readable algorithm name.
func (a Algorithm) Name() string {
	switch a {
	case AlgFull:
		return "Full Diff"
	case AlgFiles:
		return "Selective Files"
	case AlgHunks:
		return "Selective Hunks"
	case AlgSemantic:
		return "Semantic JSON"
	default:
		return "Unknown"
	}
}

// DiffStats aggregates the outcome of one shaping call. It is created once
// per call and never mutated after construction.
type DiffStats struct {
	TotalFiles      int
	IncludedFiles   int
	ExcludedFiles   int
	TotalChars      int
	OutputChars     int
	EstimatedTokens int
	Truncated       bool
	Algorithm       Algorithm
}

// Display renders the stats as a fixed-width bordered box for humans.
func (s DiffStats) Display() string {
	reduction := 0.0
	if s.TotalChars > 0 {
		reduction = (1.0 - float64(s.OutputChars)/float64(s.TotalChars)) * 100.0
	}

	truncated := "no"
	if s.Truncated {
		truncated = "yes"
	}

	return fmt.Sprintf(
		"╭─ Diff Stats ─────────────────────────────────╮\n"+
			"│ Algorithm:  %d - %s\n"+
			"│ Files:      %d/%d included (%d excluded)\n"+
			"│ Chars:      %d → %d (%.1f%% reduction)\n"+
			"│ Est Tokens: ~%d\n"+
			"│ Truncated:  %s\n"+
			"╰──────────────────────────────────────────────╯",
		s.Algorithm.Num(), s.Algorithm.Name(),
		s.IncludedFiles, s.TotalFiles, s.ExcludedFiles,
		s.TotalChars, s.OutputChars, reduction,
		s.EstimatedTokens,
		truncated,
	)
}

// estimateTokens converts a character count to an estimated token count.
func estimateTokens(chars int) int {
	return int(float64(chars) / charsPerToken)
}
