// Package vcs is the read-only VCS query interface spec.md §1 scopes the
// host version-control library down to: open repository, resolve
// reference, walk commit, compute tree-to-tree delta. Grounded on the
// teacher's internal/integration/git package (Repository/Commit/Diff
// shapes), trimmed to the read-only surface this tool actually needs —
// auth, remote, worktree, and branch mutation are out of scope (see
// DESIGN.md "Dropped teacher modules").
package vcs

import "time"

// ReferenceKind identifies what a Reference points at.
type ReferenceKind int

const (
	ReferenceBranch ReferenceKind = iota
	ReferenceRemote
	ReferenceTag
	ReferenceNote
	ReferenceOther
)

// Reference names a named pointer into the commit graph.
type Reference struct {
	Kind      ReferenceKind
	Name      string
	ShortName string
}

// User is a commit's author or committer identity.
type User struct {
	Name  string
	Email string
}

// String renders "Name <email>" when both are present, or whichever part
// is present alone.
func (u User) String() string {
	switch {
	case u.Name != "" && u.Email != "":
		return u.Name + " <" + u.Email + ">"
	case u.Name != "":
		return u.Name
	default:
		return u.Email
	}
}

// Commit is one node in the commit graph.
type Commit struct {
	Hash      string
	Reference *Reference
	Author    User
	Committer *User
	Authored  time.Time
	Committed time.Time
	Message   *string
	Summary   *string
}

// FileMode is a tracked-path's executable bit state.
type FileMode int

const (
	ModeNormal FileMode = iota
	ModeExecutable
	ModeLink
	ModeOther
)

// StatusKind is the kind of change a FileStatus represents.
type StatusKind int

const (
	StatusAdded StatusKind = iota
	StatusDeleted
	StatusModified
	StatusRenamed
	StatusCopied
	StatusTypeChanged
	StatusOther
)

// DiffLineOrigin identifies what role one DiffLine plays in its hunk.
type DiffLineOrigin int

const (
	OriginContext DiffLineOrigin = iota
	OriginAddition
	OriginDeletion
	OriginHeader
)

// DiffLine is one line inside a Delta.
type DiffLine struct {
	Origin    DiffLineOrigin
	Content   string
	OldLineNo *int
	NewLineNo *int
	EOF       bool
}

// Delta is one hunk header plus its lines.
type Delta struct {
	OldStart int
	OldLines int
	NewStart int
	NewLines int
	Context  string
	Lines    []DiffLine
}

// FileStatus is the change to one path between two trees.
type FileStatus struct {
	SourcePath      string
	DestinationPath string
	SourceMode      FileMode
	DestinationMode FileMode
	SourceBinary    bool
	DestinationBinary bool
	Status          StatusKind
	Deltas          []Delta
	LargestOldLine  int
	LargestNewLine  int
}

// CommitDiff bundles a commit, its parent (if any), and its file deltas.
type CommitDiff struct {
	Commit        Commit
	Parent        *Commit
	Files         []FileStatus
	FilesChanged  int
	Insertions    int
	Deletions     int
}
