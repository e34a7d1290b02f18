// Package prompts holds the prompt templates sent to text-generation
// providers. Templates use {name} placeholders filled by Render.
package prompts

import "strings"

// Render substitutes {name} placeholders in a template.
func Render(template string, vars map[string]string) string {
	out := template
	for k, v := range vars {
		out = strings.ReplaceAll(out, "{"+k+"}", v)
	}
	return out
}

// CommitSystem instructs the model to write single-line commit messages.
const CommitSystem = `You generate clear and informative Git commit messages from diffs.

Rules:
1. Focus on PURPOSE, not file listings
2. Ignore build/minified files
3. No markdown. Use plain ASCII characters only. Do not use emojis or Unicode symbols. Do not use empty lines between lines.
4. Be specific

Examples:
"Add user authentication with OAuth2 support"
"Fix payment timeout with retry logic"
"Refactor database queries for connection pooling"
`

// CommitUser is the per-call commit prompt.
const CommitUser = "Generate a commit message in a single-line.\n```\n{diff}\n```\nRespond with ONLY the commit message. (single-line)"

// HistorySystem instructs the model to write structured multi-line messages
// when regenerating history.
const HistorySystem = `You are an expert software engineer who writes clear, informative Git commit messages.

## Commit Message Format
<Type>(<scope>):
<description line 1>
<description line 2 if needed>

## Types
- Feat: New feature
- Fix: Bug fix
- Refactor: Code restructuring without behavior change
- Docs: Documentation changes
- Style: Formatting, whitespace (no code logic change)
- Test: Adding or modifying tests
- Chore: Build process, dependencies, config
- Perf: Performance improvement

## Rules
1. First line: Type(scope): only, capitalized (no description on this line)
2. Following lines: describe WHAT changed and WHY
3. Scale detail to complexity: simple changes get 1-2 lines, complex changes get more
4. Use imperative mood ("Add" not "Added")
5. Be specific about impact and reasoning
6. Use plain ASCII characters only. Do not use emojis or Unicode symbols.`

// HistoryUser is the per-commit prompt for history regeneration.
const HistoryUser = `Generate a commit message for this diff.
First line: Type(scope): only (capitalized, nothing else on this line)
Following lines: describe what and why (1-5 lines depending on complexity)

**Original message (if any):** {original_message}

**Diff:**
` + "```\n{diff}\n```" + `
Respond with ONLY the commit message (no markdown, no extra explanation).`

// PRSystem instructs the model to write a PR description.
const PRSystem = `Write a PR description.

Use plain ASCII characters only. Do not use emojis or Unicode symbols.

Format:
## Summary
Brief overview.

## What Changed
- Key changes

## Why
Motivation.

## Risks
- Issues or "None"

## Testing
- How tested

## Rollout
- Deploy notes or "Standard"`

// PRUser is the per-call PR prompt.
const PRUser = `Generate PR description.

**Branch:** {branch}
**Commits:**
{commits}

**Stats:**
{stats}

**Diff:**
` + "```\n{diff}\n```\n"

// ChangelogSystem instructs the model to write release notes.
const ChangelogSystem = `Create release notes.

Use plain ASCII characters only. Do not use emojis or Unicode symbols.

Format:
# Release Notes
## Features
## Fixes
## Improvements
## Breaking Changes
## Infrastructure

Group related changes, omit empty sections.`

// ChangelogUser is the per-call changelog prompt.
const ChangelogUser = `Generate release notes.

**Range:** {range}
**Count:** {count}

**Commits:**
{commits}`

// ExplainSystem instructs the model to explain changes to non-technical
// stakeholders.
const ExplainSystem = `Explain code changes to non-technical stakeholders.
No jargon, focus on user impact, be brief.

Use plain ASCII characters only. Do not use emojis or Unicode symbols.

Format:
## What's Changing
Summary.

## User Impact
- Effects

## Risk Level
Low/Medium/High

## Actions
- QA needed`

// ExplainUser is the per-call explain prompt.
const ExplainUser = `Explain for non-technical person.

**Stats:**
{stats}

**Diff:**
` + "```\n{diff}\n```"

// BumpSystem instructs the model to recommend a semantic version bump.
const BumpSystem = `Recommend semantic version bump.
- MAJOR: Breaking changes
- MINOR: New features
- PATCH: Fixes/refactors

Use plain ASCII characters only. Do not use emojis or Unicode symbols.

Output: Recommendation + Reasoning + Breaking: Yes/No`

// BumpUser is the per-call version bump prompt.
const BumpUser = `Recommend version bump.

**Current:** {version}
**Diff:**
` + "```\n{diff}\n```"
