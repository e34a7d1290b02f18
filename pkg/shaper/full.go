package shaper

import "strings"

// full reproduces the entire diff, truncated to the budget if needed. No
// file is ever excluded on priority grounds.
func (s *Shaper) full(raw, stat string, maxChars int) (string, DiffStats) {
	chunks := SplitDiffByFile(raw, s.tables)
	totalFiles := len(chunks)

	var b strings.Builder
	b.WriteString(statHeader(stat))
	b.WriteString("=== full diff ===\n\n")

	headerLen := b.Len()
	available := maxChars - headerLen - truncationReserve
	if available < 0 {
		available = 0
	}

	truncated := len(raw) > available
	if truncated {
		slice := truncateAtRune(raw, available)
		// Prefer a clean file boundary, but never discard more than half
		// the already-accepted content to reach one.
		if pos := strings.LastIndex(slice, "\ndiff --git"); pos >= 0 && pos > available/2 {
			slice = slice[:pos]
		}
		b.WriteString(slice)
		b.WriteString("\n\n[... truncated ...]\n")
	} else {
		b.WriteString(raw)
	}

	out := b.String()
	return out, DiffStats{
		TotalFiles:      totalFiles,
		IncludedFiles:   totalFiles,
		ExcludedFiles:   0,
		TotalChars:      len(raw),
		OutputChars:     len(out),
		EstimatedTokens: estimateTokens(len(out)),
		Truncated:       truncated,
		Algorithm:       AlgFull,
	}
}
