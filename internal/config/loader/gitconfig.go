// Package loader shells out to `git config` to read the VCS configuration
// keys spec.md §6 names, grounded on internal/vcs's exec.Command pattern
// (the teacher's internal/integration/git package does the equivalent for
// repository queries).
package loader

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// ScopeEntry is one origin-tagged key/value pair from `git config
// --show-origin`.
type ScopeEntry struct {
	Scope string // "system", "global", "local", "worktree", or "command" (unused here)
	Key   string
	Value string
}

// LoadGitConfig runs `git config --list --show-origin -z` in repoPath and
// returns every recognized entry, grouped by scope. NUL-separated output
// (-z) is used so multi-line values (rare, but legal for e.g. a commit
// template) don't get mis-split on embedded newlines.
func LoadGitConfig(repoPath string) ([]ScopeEntry, error) {
	cmd := exec.Command("git", "-C", repoPath, "config", "--list", "--show-origin", "-z")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		// No config entries at all is not an error; git exits non-zero only
		// when the repository itself can't be found.
		if stdout.Len() == 0 && stderr.Len() > 0 {
			return nil, fmt.Errorf("git config --list: %w: %s", err, stderr.String())
		}
	}
	return parseShowOrigin(stdout.String()), nil
}

func parseShowOrigin(out string) []ScopeEntry {
	var entries []ScopeEntry
	records := strings.Split(out, "\x00")
	for i := 0; i+1 < len(records); i += 2 {
		origin, rest := records[i], records[i+1]
		if origin == "" {
			continue
		}
		nl := strings.IndexByte(rest, '\n')
		var key, value string
		if nl >= 0 {
			key, value = rest[:nl], rest[nl+1:]
		} else {
			key = rest
		}
		entries = append(entries, ScopeEntry{Scope: classifyOrigin(origin), Key: key, Value: value})
	}
	return entries
}

// classifyOrigin maps a `--show-origin` prefix (e.g. "file:/etc/gitconfig",
// "command line:") to one of the scopes spec.md §6's precedence follows.
func classifyOrigin(origin string) string {
	switch {
	case strings.HasPrefix(origin, "command line:"):
		return "command"
	case strings.Contains(origin, "/etc/"):
		return "system"
	case strings.Contains(origin, ".config/git") || strings.Contains(origin, "/.gitconfig"):
		return "global"
	case strings.Contains(origin, "worktrees"):
		return "worktree"
	default:
		return "local"
	}
}
