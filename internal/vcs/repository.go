package vcs

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrNotRepository indicates the path is not a git repository.
	ErrNotRepository = errors.New("vcs: not a git repository")
	// ErrCommitNotFound indicates the hash does not resolve to a commit.
	ErrCommitNotFound = errors.New("vcs: commit not found")
)

// Repository is the VCS interface spec.md §2 names: open repository,
// resolve reference, walk commit, compute tree-to-tree delta.
type Repository interface {
	// ResolveReference resolves a ref name (branch, tag, or symbolic ref
	// such as HEAD) to a Commit.
	ResolveReference(name string) (*Commit, error)

	// GetCommit walks a single commit by hash, populating its metadata
	// but not its diff.
	GetCommit(hash string) (*Commit, error)

	// DiffCommit computes the tree-to-tree delta between hash and its
	// first parent (or the empty tree, for a root commit). Of opts, only
	// ContextLines is passed to git; the interhunk, rename, copy,
	// whitespace and blank-line fields are not applied.
	DiffCommit(hash string, opts DiffOptions) (*CommitDiff, error)
}

// DiffOptions configures delta computation (spec.md §4.9).
type DiffOptions struct {
	ContextLines      int
	InterhunkContext  int
	DetectRenames     bool
	RenameLimit       int
	DetectCopies      bool
	IgnoreWhitespace  IgnoreWhitespace
	IgnoreBlankLines  bool
}

// IgnoreWhitespace mirrors the diffIgnoreWhitespace config key (spec.md §6).
type IgnoreWhitespace int

const (
	IgnoreWhitespaceNone IgnoreWhitespace = iota
	IgnoreWhitespaceAll
	IgnoreWhitespaceChange
)

// DefaultDiffOptions matches common git defaults.
func DefaultDiffOptions() DiffOptions {
	return DiffOptions{ContextLines: 3, InterhunkContext: 0, RenameLimit: 50}
}

// gitRepository shells out to the git binary, grounded on the teacher's
// internal/integration/git.Repository (which does the same for the
// mutation-heavy surface this package drops).
type gitRepository struct {
	path string
}

// Open verifies path is inside a git working tree and returns a
// Repository bound to it.
func Open(path string) (Repository, error) {
	cmd := exec.Command("git", "-C", path, "rev-parse", "--show-toplevel")
	out, err := cmd.Output()
	if err != nil {
		return nil, ErrNotRepository
	}
	root := strings.TrimSpace(string(out))
	return &gitRepository{path: root}, nil
}

func (r *gitRepository) git(args ...string) (string, error) {
	cmd := exec.Command("git", append([]string{"-C", r.path}, args...)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, stderr.String())
	}
	return stdout.String(), nil
}

func (r *gitRepository) ResolveReference(name string) (*Commit, error) {
	out, err := r.git("rev-parse", "--verify", name)
	if err != nil {
		return nil, ErrCommitNotFound
	}
	return r.GetCommit(strings.TrimSpace(out))
}

// commitLogFormat mirrors the teacher's field layout
// (internal/integration/git/commit.go) for single-pass commit parsing.
const commitLogFormat = "%H%x1f%an%x1f%ae%x1f%at%x1f%cn%x1f%ce%x1f%ct%x1f%s%x1f%B"

func (r *gitRepository) GetCommit(hash string) (*Commit, error) {
	out, err := r.git("show", "-s", "--format="+commitLogFormat, hash)
	if err != nil {
		return nil, ErrCommitNotFound
	}
	return parseCommit(out)
}

func parseCommit(output string) (*Commit, error) {
	fields := strings.SplitN(strings.TrimRight(output, "\n"), "\x1f", 9)
	if len(fields) < 8 {
		return nil, fmt.Errorf("vcs: malformed commit output")
	}
	authoredUnix, _ := strconv.ParseInt(fields[3], 10, 64)
	committedUnix, _ := strconv.ParseInt(fields[6], 10, 64)

	c := &Commit{
		Hash:      fields[0],
		Author:    User{Name: fields[1], Email: fields[2]},
		Committer: &User{Name: fields[4], Email: fields[5]},
		Authored:  time.Unix(authoredUnix, 0),
		Committed: time.Unix(committedUnix, 0),
	}
	summary := fields[7]
	c.Summary = &summary
	if len(fields) == 9 {
		message := fields[8]
		c.Message = &message
	}
	return c, nil
}

func (r *gitRepository) DiffCommit(hash string, opts DiffOptions) (*CommitDiff, error) {
	commit, err := r.GetCommit(hash)
	if err != nil {
		return nil, err
	}

	var parent *Commit
	parentHash, err := r.git("rev-parse", hash+"^")
	diffBase := emptyTreeHash
	if err == nil {
		ph := strings.TrimSpace(parentHash)
		parent, err = r.GetCommit(ph)
		if err != nil {
			return nil, err
		}
		diffBase = ph
	}

	args := []string{"diff", diffTreeArgs(opts), diffBase, hash}
	raw, err := r.git(args...)
	if err != nil {
		return nil, err
	}

	files := parseDiff(raw)
	cd := &CommitDiff{Commit: *commit, Parent: parent, Files: files}
	cd.FilesChanged = len(files)
	for _, f := range files {
		for _, d := range f.Deltas {
			for _, l := range d.Lines {
				switch l.Origin {
				case OriginAddition:
					cd.Insertions++
				case OriginDeletion:
					cd.Deletions++
				}
			}
		}
	}
	return cd, nil
}

// emptyTreeHash is git's well-known hash for the empty tree, used as the
// diff base for root commits.
const emptyTreeHash = "4b825dc642cb6eb9a060e54bf8d69288fbee4904"

func diffTreeArgs(opts DiffOptions) string {
	return fmt.Sprintf("--unified=%d", opts.ContextLines)
}
