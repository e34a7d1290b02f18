package shaper

import (
	"fmt"
	"sort"
	"strings"
)

// files packs whole files in priority order until the budget is exhausted.
// Excluded files (priority <= 0) are dropped outright. The first file that
// would overflow the budget is skipped, and so is every file after it: the
// cutoff is monotonic in sort order.
func (s *Shaper) files(raw, stat string, maxChars int) (string, DiffStats) {
	chunks := SplitDiffByFile(raw, s.tables)
	totalFiles := len(chunks)

	kept := make([]FileChunk, 0, len(chunks))
	for _, c := range chunks {
		if c.Priority > 0 {
			kept = append(kept, c)
		}
	}

	// Highest priority first; among equals, larger changes surface first.
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Priority != kept[j].Priority {
			return kept[i].Priority > kept[j].Priority
		}
		return kept[i].LinesAdded+kept[i].LinesRemoved > kept[j].LinesAdded+kept[j].LinesRemoved
	})

	var b strings.Builder
	b.WriteString(statHeader(stat))
	b.WriteString("=== files (by priority) ===\n")
	for _, c := range kept {
		fmt.Fprintf(&b, "  [p:%d] %s (+%d/-%d)\n", c.Priority, c.Path, c.LinesAdded, c.LinesRemoved)
	}
	b.WriteString("\n=== patches ===\n\n")

	headerLen := b.Len()
	available := maxChars - headerLen - truncationReserve
	if available < 0 {
		available = 0
	}
	budget := headerLen + available

	included := 0
	var skipped []string
	truncated := false

	for _, c := range kept {
		if !truncated && b.Len()+len(c.Content) <= budget {
			b.WriteString(c.Content)
			b.WriteByte('\n')
			included++
			continue
		}
		skipped = append(skipped, c.Path)
		truncated = true
	}

	if len(skipped) > 0 {
		fmt.Fprintf(&b, "\n[... %d files excluded due to size limit: %s ...]\n",
			len(skipped), strings.Join(skipped, ", "))
	}

	out := b.String()
	return out, DiffStats{
		TotalFiles:      totalFiles,
		IncludedFiles:   included,
		ExcludedFiles:   totalFiles - included,
		TotalChars:      len(raw),
		OutputChars:     len(out),
		EstimatedTokens: estimateTokens(len(out)),
		Truncated:       truncated,
		Algorithm:       AlgFiles,
	}
}
