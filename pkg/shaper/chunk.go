package shaper

import "strings"

// FileChunk is one file's complete diff section. Chunks are created once per
// parse and never mutated afterwards.
type FileChunk struct {
	// Path is the post-image path from the "diff --git a/X b/Y" header.
	// Empty when the header carries no " b/" segment.
	Path string
	// Content is the full raw diff text for the file, newline-terminated.
	Content string
	// Priority is the file's relevance score; <= 0 means excluded.
	Priority int
	// LinesAdded and LinesRemoved count +/- lines, excluding the +++/---
	// marker lines.
	LinesAdded   int
	LinesRemoved int
}

// SplitDiffByFile splits raw unified-diff text into ordered per-file chunks.
// A line starting with "diff --git" opens a new chunk; everything up to the
// next header belongs to it. An empty diff yields no chunks. A header with
// no " b/" segment still produces a chunk, with an empty path.
func SplitDiffByFile(raw string, t Tables) []FileChunk {
	var chunks []FileChunk

	var (
		started bool
		path    string
		content strings.Builder
		adds    int
		dels    int
	)

	flush := func() {
		chunks = append(chunks, FileChunk{
			Path:         path,
			Content:      content.String(),
			Priority:     Priority(path, t),
			LinesAdded:   adds,
			LinesRemoved: dels,
		})
	}

	for _, line := range splitLines(raw) {
		if strings.HasPrefix(line, "diff --git") {
			if started {
				flush()
			}
			started = true
			path = ""
			if i := strings.LastIndex(line, " b/"); i >= 0 {
				path = line[i+len(" b/"):]
			}
			content.Reset()
			content.WriteString(line)
			content.WriteByte('\n')
			adds, dels = 0, 0
			continue
		}
		if !started {
			continue
		}
		content.WriteString(line)
		content.WriteByte('\n')
		if strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++") {
			adds++
		} else if strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---") {
			dels++
		}
	}

	if started {
		flush()
	}
	return chunks
}
