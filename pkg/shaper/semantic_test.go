package shaper

import (
	"encoding/json"
	"strings"
	"testing"
)

func decodeIR(t *testing.T, doc string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(doc), &m); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, doc)
	}
	return m
}

func TestSemanticValidJSON(t *testing.T) {
	raw := fileDiff("main.go", "payload", 3) + fileDiff("notes.md", "docs", 2)
	out, stats := Shape(raw, "", 100000, AlgSemantic, false)

	m := decodeIR(t, out)
	for _, key := range []string{"totals", "files", "hunks"} {
		if _, ok := m[key]; !ok {
			t.Errorf("IR missing %q section", key)
		}
	}
	if stats.Truncated {
		t.Error("Truncated = true, want false")
	}

	files, ok := m["files"].([]any)
	if !ok || len(files) != 2 {
		t.Fatalf("files = %v, want 2 entries", m["files"])
	}
	f0, ok := files[0].(map[string]any)
	if !ok {
		t.Fatal("file entry is not an object")
	}
	// main.go (priority 100) sorts first.
	if f0["p"] != "main.go" {
		t.Errorf("files[0].p = %v, want main.go", f0["p"])
	}
	if f0["s"] != "M" {
		t.Errorf("files[0].s = %v, want M", f0["s"])
	}
	if f0["pri"] != float64(100) {
		t.Errorf("files[0].pri = %v, want 100", f0["pri"])
	}
}

func TestSemanticTotals(t *testing.T) {
	raw := fileDiff("main.go", "payload", 3) + fileDiff("Cargo.lock", "noise", 5)
	out, _ := Shape(raw, "", 100000, AlgSemantic, false)

	m := decodeIR(t, out)
	totals := m["totals"].(map[string]any)
	if totals["files_total"] != float64(2) {
		t.Errorf("files_total = %v, want 2", totals["files_total"])
	}
	// Excluded lockfile is counted in total but not included.
	if totals["files_included"] != float64(1) {
		t.Errorf("files_included = %v, want 1", totals["files_included"])
	}
	if totals["adds"] != float64(3) {
		t.Errorf("adds = %v, want 3", totals["adds"])
	}
	if totals["chars_total"] != float64(len(raw)) {
		t.Errorf("chars_total = %v, want %d", totals["chars_total"], len(raw))
	}
}

func TestSemanticStatusDetection(t *testing.T) {
	raw := "diff --git a/new.go b/new.go\nnew file mode 100644\n@@ -0,0 +1 @@\n+created\n" +
		"diff --git a/old.go b/old.go\ndeleted file mode 100644\n@@ -1 +0,0 @@\n-removed\n"
	out, _ := Shape(raw, "", 100000, AlgSemantic, false)

	m := decodeIR(t, out)
	statuses := map[string]string{}
	for _, f := range m["files"].([]any) {
		entry := f.(map[string]any)
		statuses[entry["p"].(string)] = entry["s"].(string)
	}
	if statuses["new.go"] != "A" {
		t.Errorf("new.go status = %q, want A", statuses["new.go"])
	}
	if statuses["old.go"] != "D" {
		t.Errorf("old.go status = %q, want D", statuses["old.go"])
	}
}

func TestSemanticEscapesSpecialCharacters(t *testing.T) {
	raw := "diff --git a/weird.go b/weird.go\n@@ -1 +1 @@\n+s := \"quoted \\\" and backslash \\\\\"\n"
	out, _ := Shape(raw, "", 100000, AlgSemantic, false)
	decodeIR(t, out)
}

func TestSemanticShrinksUnderPressure(t *testing.T) {
	raw := hunkDiff("a.go", "aa", 4, 30) + hunkDiff("b.go", "bb", 4, 30)

	wide, _ := Shape(raw, "", 1000000, AlgSemantic, false)
	narrow, narrowStats := Shape(raw, "", 2000, AlgSemantic, false)

	if len(narrow) >= len(wide) {
		t.Errorf("shrunk output (%d) not smaller than unconstrained (%d)", len(narrow), len(wide))
	}
	if len(narrow) > 2000 {
		t.Errorf("len(narrow) = %d, exceeds budget", len(narrow))
	}
	if narrowStats.OutputChars != len(narrow) {
		t.Errorf("OutputChars = %d, want %d", narrowStats.OutputChars, len(narrow))
	}
	// If the cascade was enough, the document must still parse.
	if !narrowStats.Truncated {
		decodeIR(t, narrow)
	}
}

func TestSemanticHardTruncateTinyBudget(t *testing.T) {
	raw := hunkDiff("a.go", "aa", 4, 30)
	out, stats := Shape(raw, "", 50, AlgSemantic, false)

	if !stats.Truncated {
		t.Error("Truncated = false, want true")
	}
	if len(out) > 50 {
		t.Errorf("len(out) = %d, exceeds budget 50", len(out))
	}
	if !strings.HasPrefix(out, "{") {
		t.Errorf("output should be a JSON prefix, got %q", out)
	}
}

func TestSemanticDeterministic(t *testing.T) {
	raw := hunkDiff("a.go", "aa", 3, 10) + hunkDiff("b.md", "bb", 2, 5)
	first, _ := Shape(raw, "", 3000, AlgSemantic, false)
	for i := 0; i < 5; i++ {
		next, _ := Shape(raw, "", 3000, AlgSemantic, false)
		if next != first {
			t.Fatal("output differs between identical runs")
		}
	}
}

func TestSemanticStatField(t *testing.T) {
	raw := fileDiff("main.go", "x", 1)
	out, _ := Shape(raw, " main.go | 1 +\n", 100000, AlgSemantic, false)

	m := decodeIR(t, out)
	if m["stat"] != "main.go | 1 +" {
		t.Errorf("stat = %q, want trimmed stat text", m["stat"])
	}
}
