package shaper

import (
	"strings"
	"testing"
)

// hunkDiff builds a one-file diff containing n hunks, each with a unique
// marker "<marker>_<i>" and extra meaningful lines to shape its score.
func hunkDiff(path, marker string, n, extraLines int) string {
	var b strings.Builder
	b.WriteString("diff --git a/" + path + " b/" + path + "\n")
	b.WriteString("--- a/" + path + "\n")
	b.WriteString("+++ b/" + path + "\n")
	for i := 0; i < n; i++ {
		b.WriteString("@@ -1 +1 @@\n")
		b.WriteString("+" + marker + "_" + string(rune('0'+i)) + "\n")
		for j := 0; j < extraLines; j++ {
			b.WriteString("+meaningful extra line\n")
		}
	}
	return b.String()
}

func TestHunksPerFileCap(t *testing.T) {
	// One file with 5 hunks, another with 1. The big file's hunks all score
	// higher, but the cap keeps it to 3.
	raw := hunkDiff("big.go", "big", 5, 3) + hunkDiff("tiny.md", "tiny", 1, 0)
	out, stats := Shape(raw, "", 100000, AlgHunks, false)

	for i := 0; i < 3; i++ {
		if !strings.Contains(out, "+big_"+string(rune('0'+i))) {
			t.Errorf("hunk big_%d missing", i)
		}
	}
	bigCount := strings.Count(out, "+big_")
	if bigCount != 3 {
		t.Errorf("big.go contributed %d hunks, want 3", bigCount)
	}
	if !strings.Contains(out, "+tiny_0") {
		t.Error("tiny.md's only hunk should still be included")
	}
	if stats.IncludedFiles != 2 {
		t.Errorf("IncludedFiles = %d, want 2", stats.IncludedFiles)
	}
}

func TestHunksFileSeparatorOnce(t *testing.T) {
	raw := hunkDiff("a.go", "aa", 3, 1)
	out, _ := Shape(raw, "", 100000, AlgHunks, false)

	if got := strings.Count(out, "--- a.go ---"); got != 1 {
		t.Errorf("separator emitted %d times, want 1", got)
	}
}

func TestHunksBudgetSkipContinuesScan(t *testing.T) {
	tables := Tables{Scores: []PatternScore{
		{"big.go", 100},
		{"small.go", 90},
	}}

	// The big hunk outscores the small one but cannot fit; the small hunk
	// still must be packed.
	raw := hunkDiff("big.go", "big", 1, 200) + hunkDiff("small.go", "small", 1, 0)
	out, stats := New(tables).Shape(raw, "", 500, AlgHunks, false)

	if strings.Contains(out, "+big_0") {
		t.Error("oversized hunk should have been skipped")
	}
	if !strings.Contains(out, "+small_0") {
		t.Error("smaller hunk should still fit after the skip")
	}
	if !stats.Truncated {
		t.Error("Truncated = false, want true")
	}
	if !strings.Contains(out, "[... additional hunks excluded due to size limit ...]") {
		t.Error("truncation marker missing")
	}
}

func TestHunksExcludedFilesContributeNothing(t *testing.T) {
	raw := hunkDiff("main.go", "code", 1, 0) + hunkDiff("vendor/dep.go", "vendored", 2, 0)
	out, _ := Shape(raw, "", 100000, AlgHunks, false)

	if strings.Contains(out, "+vendored_") {
		t.Error("vendored hunks must never appear")
	}
}

func TestHunksDeterministic(t *testing.T) {
	raw := hunkDiff("a.go", "aa", 3, 2) + hunkDiff("b.go", "bb", 3, 2) + hunkDiff("c.md", "cc", 2, 1)
	first, _ := Shape(raw, "", 2000, AlgHunks, false)
	for i := 0; i < 5; i++ {
		next, _ := Shape(raw, "", 2000, AlgHunks, false)
		if next != first {
			t.Fatal("output differs between identical runs")
		}
	}
}
