package shaper

import "strings"

const (
	// keywordBonus rewards hunks that add or remove declarations.
	keywordBonus = 20.0
	// meaningfulLineBonus rewards changed lines that are not near-empty.
	meaningfulLineBonus = 2.0
	// hunkSoftCap is the line count beyond which a hunk is penalized.
	hunkSoftCap = 50
	// oversizePenalty is subtracted per line past the soft cap.
	oversizePenalty = 0.5
)

// ScoredHunk is one @@-delimited hunk of a file's diff, ranked for packing.
// Hunks never outlive the packing call that produced them.
type ScoredHunk struct {
	FilePath string
	// Content is the hunk text starting at the @@ line.
	Content string
	Score   float64
}

// ExtractHunks splits one file chunk's content into scored hunks. A hunk
// begins at any line starting with "@@" and runs until the next "@@" or end
// of content. Lines before the first hunk header are ignored.
func ExtractHunks(content, path string, priority int, t Tables) []ScoredHunk {
	var hunks []ScoredHunk
	var cur strings.Builder
	inHunk := false

	flush := func() {
		text := cur.String()
		hunks = append(hunks, ScoredHunk{
			FilePath: path,
			Content:  text,
			Score:    scoreHunk(text, priority, t),
		})
	}

	for _, line := range splitLines(content) {
		if strings.HasPrefix(line, "@@") {
			if cur.Len() > 0 {
				flush()
			}
			cur.Reset()
			cur.WriteString(line)
			cur.WriteByte('\n')
			inHunk = true
			continue
		}
		if inHunk {
			cur.WriteString(line)
			cur.WriteByte('\n')
		}
	}
	if cur.Len() > 0 {
		flush()
	}
	return hunks
}

// scoreHunk starts from the file's priority and rewards declaration-level
// changes and meaningful change density, penalizing oversized hunks so the
// packer prefers several focused hunks over one sprawling one.
func scoreHunk(hunk string, priority int, t Tables) float64 {
	score := float64(priority)

	for _, kw := range t.Keywords {
		if strings.Contains(hunk, "+"+kw) || strings.Contains(hunk, "-"+kw) {
			score += keywordBonus
		}
	}

	lines := splitLines(hunk)
	meaningful := 0
	for _, l := range lines {
		if (strings.HasPrefix(l, "+") || strings.HasPrefix(l, "-")) && len(strings.TrimSpace(l)) > 3 {
			meaningful++
		}
	}
	score += float64(meaningful) * meaningfulLineBonus

	if n := len(lines); n > hunkSoftCap {
		score -= float64(n-hunkSoftCap) * oversizePenalty
	}
	return score
}
