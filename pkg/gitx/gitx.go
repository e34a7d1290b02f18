// Package gitx handles git invocation for gitshape. All repository access
// goes through subprocess calls; refs and paths are validated before they
// reach the command line.
package gitx

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/gitshape-ai/gitshape/pkg/errors"
)

// validGitRefPattern matches safe git refs (branch names, tags, commits,
// ranges like v1.0.0..HEAD and rev suffixes like HEAD~3 or abc123^!).
var validGitRefPattern = regexp.MustCompile(`^[a-zA-Z0-9/_\-\.~^!]+$`)

// dangerousShellChars must be rejected to prevent shell injection.
var dangerousShellChars = []string{"|", "&", ";", "$", "(", ")", "`", "{", "}", ">", "<", "\n", "\t", "\\"}

// SanitizeRef validates that a git ref is safe to pass to git. An empty ref
// is valid and means HEAD.
func SanitizeRef(ref string) error {
	if ref == "" {
		return nil
	}
	for _, ch := range dangerousShellChars {
		if strings.Contains(ref, ch) {
			return errors.ValidationError(fmt.Sprintf("invalid git ref: contains dangerous character %q", ch), nil)
		}
	}
	if !validGitRefPattern.MatchString(ref) {
		return errors.ValidationError("invalid git ref: contains invalid characters", nil)
	}
	return nil
}

// Runner executes git commands in a base directory.
type Runner struct {
	baseDir string
}

// NewRunner creates a Runner bound to baseDir ("." for the current directory).
func NewRunner(baseDir string) *Runner {
	if baseDir == "" {
		baseDir = "."
	}
	return &Runner{baseDir: baseDir}
}

// Run executes git with the given arguments and returns stdout.
func (r *Runner) Run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.baseDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", errors.TimeoutError("git command cancelled", ctx.Err())
		}
		return "", errors.GitError(fmt.Sprintf("git %s failed: %s", strings.Join(args, " "), strings.TrimSpace(stderr.String())), err)
	}
	return stdout.String(), nil
}

// IsRepo reports whether the base directory is inside a git repository.
func (r *Runner) IsRepo(ctx context.Context) bool {
	_, err := r.Run(ctx, "rev-parse", "--git-dir")
	return err == nil
}

// GitDir returns the repository's .git directory path.
func (r *Runner) GitDir(ctx context.Context) (string, error) {
	out, err := r.Run(ctx, "rev-parse", "--git-dir")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// CurrentBranch returns the checked-out branch name, or "HEAD" when detached.
func (r *Runner) CurrentBranch(ctx context.Context) string {
	if out, err := r.Run(ctx, "branch", "--show-current"); err == nil {
		if b := strings.TrimSpace(out); b != "" {
			return b
		}
	}
	if out, err := r.Run(ctx, "rev-parse", "--abbrev-ref", "HEAD"); err == nil {
		if b := strings.TrimSpace(out); b != "" {
			return b
		}
	}
	return "HEAD"
}

// DefaultBranch returns the repository's default branch, preferring main
// over master.
func (r *Runner) DefaultBranch(ctx context.Context) string {
	for _, b := range []string{"main", "master"} {
		if _, err := r.Run(ctx, "rev-parse", "--verify", b); err == nil {
			return b
		}
	}
	return "main"
}

// CurrentVersion returns the latest reachable tag, or "0.0.0" if none.
func (r *Runner) CurrentVersion(ctx context.Context) string {
	out, err := r.Run(ctx, "describe", "--tags", "--abbrev=0")
	if err != nil {
		return "0.0.0"
	}
	if v := strings.TrimSpace(out); v != "" {
		return v
	}
	return "0.0.0"
}

// CommitInfo describes one commit from the log.
type CommitInfo struct {
	Hash    string
	Author  string
	Date    string
	Message string
}

// LogOptions filters CommitLog output. Zero values are ignored.
type LogOptions struct {
	Limit int
	Since string
	Until string
	Range string
}

// CommitLog returns commits in reverse chronological order.
func (r *Runner) CommitLog(ctx context.Context, opts LogOptions) ([]CommitInfo, error) {
	args := []string{"log", "--pretty=format:%H|%an|%ad|%s", "--date=iso"}
	if opts.Limit > 0 {
		args = append(args, fmt.Sprintf("-n%d", opts.Limit))
	}
	if opts.Since != "" {
		args = append(args, "--since="+opts.Since)
	}
	if opts.Until != "" {
		args = append(args, "--until="+opts.Until)
	}
	if opts.Range != "" {
		if err := SanitizeRef(opts.Range); err != nil {
			return nil, err
		}
		args = append(args, opts.Range)
	}

	out, err := r.Run(ctx, args...)
	if err != nil {
		return nil, err
	}

	var commits []CommitInfo
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "|", 4)
		if len(parts) < 4 {
			continue
		}
		commits = append(commits, CommitInfo{
			Hash:    parts[0],
			Author:  parts[1],
			Date:    parts[2],
			Message: parts[3],
		})
	}
	return commits, nil
}
