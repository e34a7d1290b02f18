package gitx

import (
	"context"
	"strings"
	"unicode/utf8"
)

// ExcludePathspecs are appended to every diff invocation so lockfiles,
// build output, minified assets, and secrets never enter the raw diff.
var ExcludePathspecs = []string{
	":(exclude)*.lock",
	":(exclude)package-lock.json",
	":(exclude)yarn.lock",
	":(exclude)pnpm-lock.yaml",
	":(exclude)go.sum",
	":(exclude)dist/*",
	":(exclude)build/*",
	":(exclude)*.min.js",
	":(exclude)*.min.css",
	":(exclude)*.map",
	":(exclude).env*",
	":(exclude)target/*",
}

// Diff returns the working-tree diff. With staged set, it diffs the index;
// otherwise target (when non-empty) selects the comparison base. Output is
// truncated to maxChars at a file boundary where possible.
func (r *Runner) Diff(ctx context.Context, target string, staged bool, maxChars int) (string, error) {
	if err := SanitizeRef(target); err != nil {
		return "", err
	}

	args := []string{"diff", "--unified=3", "--no-color"}
	if staged {
		args = append(args, "--cached")
	} else if target != "" {
		args = append(args, target)
	}
	args = append(args, "--", ".")
	args = append(args, ExcludePathspecs...)

	out, err := r.Run(ctx, args...)
	if err != nil {
		return "", err
	}
	return TruncateDiff(out, maxChars), nil
}

// DiffStat returns the `git diff --stat` summary for the same selection
// rules as Diff.
func (r *Runner) DiffStat(ctx context.Context, target string, staged bool) (string, error) {
	if err := SanitizeRef(target); err != nil {
		return "", err
	}

	args := []string{"diff", "--stat", "--no-color"}
	if staged {
		args = append(args, "--cached")
	} else if target != "" {
		args = append(args, target)
	}
	return r.Run(ctx, args...)
}

// CommitDiff returns the diff introduced by a single commit, handling root
// commits via diff-tree. Returns "" when the commit is empty after
// exclusions.
func (r *Runner) CommitDiff(ctx context.Context, hash string, maxChars int) (string, error) {
	if err := SanitizeRef(hash); err != nil {
		return "", err
	}

	_, parentErr := r.Run(ctx, "rev-parse", hash+"^")

	var args []string
	if parentErr == nil {
		args = []string{"diff", hash + "^!", "--unified=3", "--", "."}
	} else {
		args = []string{"diff-tree", "--patch", "--unified=3", "--root", hash, "--", "."}
	}
	args = append(args, ExcludePathspecs...)

	out, err := r.Run(ctx, args...)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return "", nil
	}
	return TruncateDiff(out, maxChars), nil
}

// TruncateDiff cuts a diff to max characters, preferring the last file
// boundary past the midpoint so a file is not cut in half just to chase a
// boundary. The cut is never placed inside a multi-byte character.
func TruncateDiff(diff string, max int) string {
	if len(diff) <= max {
		return diff
	}

	cut := max
	for cut > 0 && !utf8.RuneStart(diff[cut]) {
		cut--
	}
	t := diff[:cut]
	if p := strings.LastIndex(t, "\ndiff --git"); p >= 0 && p > max/2 {
		t = t[:p]
	}
	return t + "\n\n[... truncated ...]"
}

// BuildRange builds a commit range like "v1.0.0..HEAD" from explicit from/to
// refs, falling back to baseBranch..branch when the current branch differs
// from the base. Returns "" when no sensible range exists.
func (r *Runner) BuildRange(ctx context.Context, from, to, baseBranch string) string {
	end := to
	if end == "" {
		end = "HEAD"
	}
	if from != "" {
		return from + ".." + end
	}

	branch := r.CurrentBranch(ctx)
	if branch == baseBranch {
		return ""
	}
	if to != "" {
		return baseBranch + ".." + end
	}
	return baseBranch + ".." + branch
}

// BuildDiffTarget builds a diff comparison target. Unlike BuildRange it
// falls back to the latest tag when already on the base branch, and uses
// the three-dot form against the base branch so only the branch's own
// changes are compared.
func (r *Runner) BuildDiffTarget(ctx context.Context, from, to, baseBranch string) string {
	end := to
	if end == "" {
		end = "HEAD"
	}
	if from != "" {
		return from + ".." + end
	}

	branch := r.CurrentBranch(ctx)
	if branch != baseBranch {
		if to != "" {
			return baseBranch + "..." + end
		}
		return baseBranch + "..." + branch
	}

	if tag := r.CurrentVersion(ctx); tag != "0.0.0" {
		return tag + ".." + end
	}
	return ""
}
