package shaper

import (
	"encoding/json"
	"math"
	"sort"
	"strings"
)

const (
	initialMaxHunks     = 10
	initialPreviewLines = 25
	previewFloor        = 5
	// maxShrinkSteps bounds the adaptive sizing loop. The cascade needs at
	// most 3 halvings + 9 hunk decrements + 1 preview zeroing.
	maxShrinkSteps = 24
)

// shrinkState enumerates the adaptive sizing cascade of the Semantic
// strategy. Each state names the next reduction to apply when the
// serialized IR is still over budget.
type shrinkState int

const (
	stateShrinkPreview shrinkState = iota
	stateShrinkHunks
	stateZeroPreview
	stateHardTruncate
	stateDone
)

// irFile is the serialization-only summary of one changed file.
type irFile struct {
	Path     string `json:"p"`
	Status   string `json:"s"` // M/A/D/R
	Priority int    `json:"pri"`
	Adds     int    `json:"a"`
	Dels     int    `json:"d"`
}

// irHunk is the serialization-only view of one ranked hunk.
type irHunk struct {
	File    string  `json:"f"`
	Header  string  `json:"hdr"`
	Adds    int     `json:"a"`
	Dels    int     `json:"d"`
	Score   float64 `json:"sc"`
	Preview string  `json:"pv"`
}

type irTotals struct {
	FilesTotal    int `json:"files_total"`
	FilesIncluded int `json:"files_included"`
	Adds          int `json:"adds"`
	Dels          int `json:"dels"`
	CharsTotal    int `json:"chars_total"`
}

type irDocument struct {
	Stat   string   `json:"stat,omitempty"`
	Totals irTotals `json:"totals"`
	Files  []irFile `json:"files"`
	Hunks  []irHunk `json:"hunks"`
}

// semantic emits a JSON IR bounded by the budget, shrinking detail through a
// fixed cascade (halve previews, then drop hunks, then strip previews) and
// hard-truncating only as a last resort.
func (s *Shaper) semantic(raw, stat string, maxChars int) (string, DiffStats) {
	chunks := SplitDiffByFile(raw, s.tables)
	totalFiles := len(chunks)
	totalChars := len(raw)

	files := summarizeFiles(chunks)

	maxHunks := initialMaxHunks
	previewLines := initialPreviewLines
	state := stateShrinkPreview

	var doc string
loop:
	for step := 0; step < maxShrinkSteps; step++ {
		hunks := s.rankedIRHunks(chunks, maxHunks, previewLines)
		doc = encodeIR(stat, files, hunks, totalFiles, totalChars)
		if len(doc) <= maxChars {
			state = stateDone
			break
		}

		switch state {
		case stateShrinkPreview:
			previewLines /= 2
			if previewLines <= previewFloor {
				previewLines = previewFloor
				state = stateShrinkHunks
			}
		case stateShrinkHunks:
			maxHunks--
			if maxHunks <= 1 {
				maxHunks = 1
				state = stateZeroPreview
			}
		case stateZeroPreview:
			previewLines = 0
			state = stateHardTruncate
		case stateHardTruncate:
			// Nothing left to shrink.
			break loop
		}
	}

	truncated := len(doc) > maxChars
	if truncated {
		doc = truncateAtRune(doc, maxChars)
	}

	return doc, DiffStats{
		TotalFiles:      totalFiles,
		IncludedFiles:   len(files),
		ExcludedFiles:   totalFiles - len(files),
		TotalChars:      totalChars,
		OutputChars:     len(doc),
		EstimatedTokens: estimateTokens(len(doc)),
		Truncated:       truncated,
		Algorithm:       AlgSemantic,
	}
}

// detectStatus derives the one-letter file status from the chunk's headers.
func detectStatus(content string) string {
	switch {
	case strings.Contains(content, "new file mode"):
		return "A"
	case strings.Contains(content, "deleted file mode"):
		return "D"
	case strings.Contains(content, "rename from"), strings.Contains(content, "rename to"):
		return "R"
	default:
		return "M"
	}
}

// summarizeFiles builds the IR file list: excluded files dropped, sorted by
// priority then change size, same order as the Files strategy.
func summarizeFiles(chunks []FileChunk) []irFile {
	files := make([]irFile, 0, len(chunks))
	for _, c := range chunks {
		if c.Priority <= 0 {
			continue
		}
		files = append(files, irFile{
			Path:     c.Path,
			Status:   detectStatus(c.Content),
			Priority: c.Priority,
			Adds:     c.LinesAdded,
			Dels:     c.LinesRemoved,
		})
	}

	sort.SliceStable(files, func(i, j int) bool {
		if files[i].Priority != files[j].Priority {
			return files[i].Priority > files[j].Priority
		}
		return files[i].Adds+files[i].Dels > files[j].Adds+files[j].Dels
	})
	return files
}

// rankedIRHunks builds the ranked hunk list, capped globally by maxHunks and
// per file by maxHunksPerFile (cap applied after the global sort), each hunk
// reduced to its header, counts, and a previewLines-line preview.
func (s *Shaper) rankedIRHunks(chunks []FileChunk, maxHunks, previewLines int) []irHunk {
	var all []ScoredHunk
	for _, c := range chunks {
		if c.Priority <= 0 {
			continue
		}
		all = append(all, ExtractHunks(c.Content, c.Path, c.Priority, s.tables)...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Score > all[j].Score
	})

	perFile := make(map[string]int)
	out := make([]irHunk, 0, maxHunks)

	for _, h := range all {
		if len(out) >= maxHunks {
			break
		}
		if perFile[h.FilePath] >= maxHunksPerFile {
			continue
		}

		var (
			header  string
			adds    int
			dels    int
			preview strings.Builder
		)
		for i, line := range splitLines(h.Content) {
			if i == 0 {
				header = line
			}
			if strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++") {
				adds++
			} else if strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---") {
				dels++
			}
			if i < previewLines {
				preview.WriteString(line)
				preview.WriteByte('\n')
			}
		}

		out = append(out, irHunk{
			File:    h.FilePath,
			Header:  header,
			Adds:    adds,
			Dels:    dels,
			Score:   math.Round(h.Score*100) / 100,
			Preview: strings.TrimRight(preview.String(), "\n"),
		})
		perFile[h.FilePath]++
	}
	return out
}

// encodeIR serializes the IR document. encoding/json guarantees escaping of
// quotes, backslashes, and control characters in every string field.
func encodeIR(stat string, files []irFile, hunks []irHunk, totalFiles, totalChars int) string {
	totals := irTotals{
		FilesTotal:    totalFiles,
		FilesIncluded: len(files),
		CharsTotal:    totalChars,
	}
	for _, f := range files {
		totals.Adds += f.Adds
		totals.Dels += f.Dels
	}

	doc := irDocument{
		Stat:   strings.TrimSpace(stat),
		Totals: totals,
		Files:  files,
		Hunks:  hunks,
	}

	data, err := json.Marshal(doc)
	if err != nil {
		// Marshal of plain structs and strings cannot fail.
		return "{}"
	}
	return string(data)
}
