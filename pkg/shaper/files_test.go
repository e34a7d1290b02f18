package shaper

import (
	"strings"
	"testing"
)

// fileDiff builds a minimal one-file diff with a payload line repeated n
// times so tests can control content size.
func fileDiff(path, marker string, n int) string {
	var b strings.Builder
	b.WriteString("diff --git a/" + path + " b/" + path + "\n")
	b.WriteString("--- a/" + path + "\n")
	b.WriteString("+++ b/" + path + "\n")
	b.WriteString("@@ -1 +1 @@\n")
	for i := 0; i < n; i++ {
		b.WriteString("+" + marker + "\n")
	}
	return b.String()
}

func TestFilesExcludesLockfiles(t *testing.T) {
	raw := fileDiff("main.go", "code change", 2) + fileDiff("Cargo.lock", "lock noise", 2)
	out, stats := Shape(raw, "", 10000, AlgFiles, false)

	if strings.Contains(out, "lock noise") {
		t.Error("lockfile content leaked into output")
	}
	if !strings.Contains(out, "code change") {
		t.Error("source change missing from output")
	}
	if stats.TotalFiles != 2 {
		t.Errorf("TotalFiles = %d, want 2", stats.TotalFiles)
	}
	if stats.IncludedFiles != 1 {
		t.Errorf("IncludedFiles = %d, want 1", stats.IncludedFiles)
	}
	if stats.ExcludedFiles != 1 {
		t.Errorf("ExcludedFiles = %d, want 1", stats.ExcludedFiles)
	}
	if stats.Truncated {
		t.Error("Truncated = true, want false")
	}
}

func TestFilesPriorityOrder(t *testing.T) {
	raw := fileDiff("notes.md", "md change", 2) + fileDiff("main.go", "go change", 2)
	out, _ := Shape(raw, "", 10000, AlgFiles, false)

	goPos := strings.Index(out, "+go change")
	mdPos := strings.Index(out, "+md change")
	if goPos < 0 || mdPos < 0 {
		t.Fatal("expected both patches in output")
	}
	if goPos > mdPos {
		t.Error("main.go (priority 100) should precede notes.md (priority 30)")
	}
}

func TestFilesManifestListsAllKept(t *testing.T) {
	raw := fileDiff("main.go", "x", 1) + fileDiff("notes.md", "y", 1)
	out, _ := Shape(raw, "", 10000, AlgFiles, false)

	if !strings.Contains(out, "[p:100] main.go (+1/-0)") {
		t.Errorf("manifest entry for main.go missing:\n%s", out)
	}
	if !strings.Contains(out, "[p:30] notes.md (+1/-0)") {
		t.Errorf("manifest entry for notes.md missing:\n%s", out)
	}
}

func TestFilesMonotonicCutoff(t *testing.T) {
	tables := Tables{Scores: []PatternScore{
		{"a.go", 100},
		{"b.go", 90},
		{"c.go", 80},
	}}
	raw := fileDiff("a.go", "a_payload", 2) +
		fileDiff("b.go", "b_payload", 300) +
		fileDiff("c.go", "c_payload", 2)

	out, stats := New(tables).Shape(raw, "", 800, AlgFiles, false)

	if !strings.Contains(out, "+a_payload") {
		t.Error("a.go should fit the budget")
	}
	if strings.Contains(out, "+b_payload") {
		t.Error("b.go exceeds the budget and must be skipped")
	}
	// c.go would fit, but the cutoff is monotonic: once a higher-ranked
	// file is skipped, everything after it is skipped too.
	if strings.Contains(out, "+c_payload") {
		t.Error("c.go must be skipped after the cutoff")
	}
	if !stats.Truncated {
		t.Error("Truncated = false, want true")
	}
	if stats.IncludedFiles != 1 {
		t.Errorf("IncludedFiles = %d, want 1", stats.IncludedFiles)
	}
	if !strings.Contains(out, "[... 2 files excluded due to size limit: b.go, c.go ...]") {
		t.Errorf("skip marker missing or wrong:\n%s", out)
	}
}

func TestFilesTieBreakByChangeSize(t *testing.T) {
	// Same priority (.go = 70): the larger change sorts first.
	raw := fileDiff("pkg/small.go", "small_change", 1) + fileDiff("pkg/large.go", "large_change", 5)
	out, _ := Shape(raw, "", 10000, AlgFiles, false)

	largePos := strings.Index(out, "+large_change")
	smallPos := strings.Index(out, "+small_change")
	if largePos > smallPos {
		t.Error("larger change should precede smaller change at equal priority")
	}
}

func TestFilesEmptyDiff(t *testing.T) {
	out, stats := Shape("", "", 1000, AlgFiles, false)
	if stats.TotalFiles != 0 || stats.IncludedFiles != 0 {
		t.Errorf("stats = %+v, want zero files", stats)
	}
	if !strings.Contains(out, "=== patches ===") {
		t.Error("scaffold should still be emitted for an empty diff")
	}
}
