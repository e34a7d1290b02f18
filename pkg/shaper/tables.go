package shaper

import "strings"

// ExcludedScore is the sentinel priority for files that must never appear
// in ranked output (lockfiles, vendored code, build artifacts).
const ExcludedScore = -100

// DefaultScore is assigned to paths that match no pattern. Unknown files
// are plausibly relevant, so they rank above known noise instead of zero.
const DefaultScore = 20

// PatternScore maps a filename or extension pattern to a priority score.
type PatternScore struct {
	Pattern string
	Score   int
}

// Tables holds the pattern tables that drive file priority and hunk scoring.
// They are plain ordered lists so tests can inject fixtures and so the
// "highest match wins" rule stays explicit.
type Tables struct {
	// ExcludeNames are exact-name/suffix matches that exclude a file outright.
	ExcludeNames []string
	// ExcludePaths are substring matches for vendored/generated content.
	ExcludePaths []string
	// Scores is the ordered pattern table; the highest matching score wins.
	Scores []PatternScore
	// Keywords are declaration-level keywords that boost a hunk's score.
	Keywords []string
}

// DefaultTables returns the production pattern tables.
func DefaultTables() Tables {
	return Tables{
		ExcludeNames: []string{
			"Cargo.lock",
			"package-lock.json",
			"yarn.lock",
			"pnpm-lock.yaml",
			"poetry.lock",
			"Pipfile.lock",
			"go.sum",
			".gitignore",
			".DS_Store",
		},
		ExcludePaths: []string{
			"vendor/",
			"node_modules/",
			"target/",
			"dist/",
			"__pycache__/",
			".min.js",
			".min.css",
			"generated",
		},
		Scores: []PatternScore{
			// High priority - core logic
			{"main.go", 100},
			{"main.rs", 100},
			{"lib.rs", 100},
			{"mod.rs", 80},
			{".go", 70},
			{".rs", 70},
			{".py", 70},
			{".ts", 65},
			{".js", 60},
			// Medium priority - config/docs
			{"go.mod", 50},
			{"Cargo.toml", 50},
			{"pyproject.toml", 50},
			{"README.md", 40},
			{".md", 30},
			{".toml", 30},
			{".yaml", 25},
			{".yml", 25},
			// Low priority - usually noise
			{".json", 15},
			{".css", 10},
			{".svg", 5},
		},
		Keywords: []string{
			"func ", "fn ", "def ", "function ",
			"type ", "struct ", "enum ", "interface ", "trait ", "impl ",
			"class ", "pub ", "export ", "async ", "const ",
		},
	}
}

// Priority maps a file path to an integer priority. Exclusions are checked
// first; any match returns ExcludedScore. Otherwise the highest matching
// entry in the score table wins, falling back to DefaultScore.
func Priority(path string, t Tables) int {
	for _, name := range t.ExcludeNames {
		if strings.HasSuffix(path, name) {
			return ExcludedScore
		}
	}
	for _, frag := range t.ExcludePaths {
		if strings.Contains(path, frag) {
			return ExcludedScore
		}
	}

	best := DefaultScore
	for _, ps := range t.Scores {
		if ps.Score > best && (strings.HasSuffix(path, ps.Pattern) || strings.Contains(path, ps.Pattern)) {
			best = ps.Score
		}
	}
	return best
}
