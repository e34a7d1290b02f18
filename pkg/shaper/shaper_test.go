package shaper

import (
	"strings"
	"testing"
)

func TestAlgorithmFromNum(t *testing.T) {
	tests := []struct {
		n    int
		want Algorithm
	}{
		{1, AlgFull},
		{2, AlgFiles},
		{3, AlgHunks},
		{4, AlgSemantic},
		{0, AlgFiles},
		{99, AlgFiles},
		{-1, AlgFiles},
	}
	for _, tt := range tests {
		if got := AlgorithmFromNum(tt.n); got != tt.want {
			t.Errorf("AlgorithmFromNum(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestAlgorithmNames(t *testing.T) {
	tests := []struct {
		alg  Algorithm
		want string
	}{
		{AlgFull, "Full Diff"},
		{AlgFiles, "Selective Files"},
		{AlgHunks, "Selective Hunks"},
		{AlgSemantic, "Semantic JSON"},
	}
	for _, tt := range tests {
		if got := tt.alg.Name(); got != tt.want {
			t.Errorf("%v.Name() = %q, want %q", tt.alg, got, tt.want)
		}
	}
}

func TestShapeDispatch(t *testing.T) {
	raw := fileDiff("main.go", "payload", 2)

	tests := []struct {
		alg    Algorithm
		marker string
	}{
		{AlgFull, "=== full diff ==="},
		{AlgFiles, "=== files (by priority) ==="},
		{AlgHunks, "=== hunks (by semantic score) ==="},
		{AlgSemantic, `"totals"`},
	}
	for _, tt := range tests {
		out, stats := Shape(raw, "", 10000, tt.alg, false)
		if !strings.Contains(out, tt.marker) {
			t.Errorf("alg %v: marker %q missing from output", tt.alg, tt.marker)
		}
		if stats.Algorithm != tt.alg {
			t.Errorf("stats.Algorithm = %v, want %v", stats.Algorithm, tt.alg)
		}
	}
}

func TestShapePreviewHeader(t *testing.T) {
	raw := fileDiff("main.go", "x", 1)
	out, _ := Shape(raw, "", 5000, AlgFiles, true)

	if !strings.HasPrefix(out, "=== gitshape LLM DIFF PREVIEW ===\n") {
		t.Error("preview banner missing")
	}
	if !strings.Contains(out, "alg: 2 - Selective Files\n") {
		t.Error("banner should name the algorithm")
	}
	if !strings.Contains(out, "max_chars: 5000\n") {
		t.Error("banner should state the budget")
	}

	plain, _ := Shape(raw, "", 5000, AlgFiles, false)
	if strings.Contains(plain, "PREVIEW") {
		t.Error("banner must be absent when includeHeader is false")
	}
}

func TestStatsDisplay(t *testing.T) {
	stats := DiffStats{
		TotalFiles:      4,
		IncludedFiles:   3,
		ExcludedFiles:   1,
		TotalChars:      1000,
		OutputChars:     250,
		EstimatedTokens: 71,
		Truncated:       true,
		Algorithm:       AlgHunks,
	}
	box := stats.Display()

	for _, want := range []string{
		"╭─ Diff Stats",
		"3 - Selective Hunks",
		"3/4 included (1 excluded)",
		"1000 → 250 (75.0% reduction)",
		"~71",
		"Truncated:  yes",
	} {
		if !strings.Contains(box, want) {
			t.Errorf("Display() missing %q:\n%s", want, box)
		}
	}
}

func TestStatsDisplayZeroChars(t *testing.T) {
	box := DiffStats{Algorithm: AlgFiles}.Display()
	if !strings.Contains(box, "(0.0% reduction)") {
		t.Errorf("zero input should report 0%% reduction:\n%s", box)
	}
}

func TestEstimateTokens(t *testing.T) {
	if got := estimateTokens(35); got != 10 {
		t.Errorf("estimateTokens(35) = %d, want 10", got)
	}
	if got := estimateTokens(0); got != 0 {
		t.Errorf("estimateTokens(0) = %d, want 0", got)
	}
}

func TestShapeSameInputSameOutput(t *testing.T) {
	raw := fileDiff("main.go", "aa", 3) + fileDiff("notes.md", "bb", 2) + fileDiff("Cargo.lock", "cc", 1)
	for _, alg := range []Algorithm{AlgFull, AlgFiles, AlgHunks, AlgSemantic} {
		first, firstStats := Shape(raw, "", 1500, alg, false)
		second, secondStats := Shape(raw, "", 1500, alg, false)
		if first != second {
			t.Errorf("alg %v: output differs between runs", alg)
		}
		if firstStats != secondStats {
			t.Errorf("alg %v: stats differ between runs", alg)
		}
	}
}
