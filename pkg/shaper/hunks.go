package shaper

import (
	"fmt"
	"sort"
	"strings"
)

// maxHunksPerFile caps how many hunks a single file may contribute, so one
// large file cannot consume the entire budget.
const maxHunksPerFile = 3

// hunks packs individual hunks in global score order. The per-file cap is
// applied after the global sort: a file's 4th-best hunk is dropped for the
// cap even when it outscores another file's 1st-best. A hunk that would
// overflow the budget is skipped, but the scan continues, since smaller
// hunks from other files may still fit.
func (s *Shaper) hunks(raw, stat string, maxChars int) (string, DiffStats) {
	chunks := SplitDiffByFile(raw, s.tables)
	totalFiles := len(chunks)

	var all []ScoredHunk
	for _, c := range chunks {
		if c.Priority <= 0 {
			continue
		}
		all = append(all, ExtractHunks(c.Content, c.Path, c.Priority, s.tables)...)
	}

	// Stable: ties keep encounter order.
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Score > all[j].Score
	})

	var b strings.Builder
	b.WriteString(statHeader(stat))
	b.WriteString("=== hunks (by semantic score) ===\n\n")

	headerLen := b.Len()
	available := maxChars - headerLen - truncationReserve
	if available < 0 {
		available = 0
	}
	budget := headerLen + available

	includedFiles := make(map[string]bool)
	perFile := make(map[string]int)
	truncated := false

	for _, h := range all {
		if perFile[h.FilePath] >= maxHunksPerFile {
			continue
		}
		if b.Len()+len(h.Content) > budget {
			truncated = true
			continue
		}
		if !includedFiles[h.FilePath] {
			fmt.Fprintf(&b, "--- %s ---\n", h.FilePath)
			includedFiles[h.FilePath] = true
		}
		b.WriteString(h.Content)
		b.WriteByte('\n')
		perFile[h.FilePath]++
	}

	if truncated {
		b.WriteString("\n[... additional hunks excluded due to size limit ...]\n")
	}

	out := b.String()
	return out, DiffStats{
		TotalFiles:      totalFiles,
		IncludedFiles:   len(includedFiles),
		ExcludedFiles:   totalFiles - len(includedFiles),
		TotalChars:      len(raw),
		OutputChars:     len(out),
		EstimatedTokens: estimateTokens(len(out)),
		Truncated:       truncated,
		Algorithm:       AlgHunks,
	}
}
