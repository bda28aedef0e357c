package events

// State is the closed set of module states (spec.md §4.4).
type State int

const (
	StateList State = iota
	StateShowCommit
	StateInsert
	StateEdit
	StateConfirmAbort
	StateConfirmRebase
	StateExternalEditor
	StateError
	StateWindowSizeError
)

func (s State) String() string {
	switch s {
	case StateList:
		return "List"
	case StateShowCommit:
		return "ShowCommit"
	case StateInsert:
		return "Insert"
	case StateEdit:
		return "Edit"
	case StateConfirmAbort:
		return "ConfirmAbort"
	case StateConfirmRebase:
		return "ConfirmRebase"
	case StateExternalEditor:
		return "ExternalEditor"
	case StateError:
		return "Error"
	case StateWindowSizeError:
		return "WindowSizeError"
	default:
		return "Unknown"
	}
}

// ExitStatus is the closed set of process exit statuses (spec.md §4.4,
// §6). Numeric values are pinned per DESIGN.md's Open Question decision.
type ExitStatus int

const (
	Good          ExitStatus = 0
	ConfigError   ExitStatus = 1
	FileReadError ExitStatus = 2
	FileWriteError ExitStatus = 3
	StateErrorExit ExitStatus = 4
	AbortExit     ExitStatus = 5
	KillExit      ExitStatus = 9
)

// ArtifactKind discriminates the Artifact union.
type ArtifactKind int

const (
	ArtifactChangeState ArtifactKind = iota
	ArtifactError
	ArtifactEvent
	ArtifactExitStatus
	ArtifactExternalCommand
	ArtifactEnqueueResize
	ArtifactSearchCancel
	ArtifactSearchTerm
	ArtifactSearchable
)

// Artifact is a single output of a module's event handling (spec.md §3).
type Artifact struct {
	Kind ArtifactKind

	// ChangeState
	NextState State

	// Error
	Err         error
	ReturnState State

	// Event (echo, for logging)
	Event Event

	// ExitStatus
	Status ExitStatus

	// ExternalCommand
	Program string
	Args    []string

	// EnqueueResize
	Width, Height int

	// SearchTerm
	Term string

	// Searchable
	Searchable any
}

// ChangeState builds a state-transition artifact.
func ChangeState(s State) Artifact { return Artifact{Kind: ArtifactChangeState, NextState: s} }

// Error builds an error artifact carrying the state to return to once
// dismissed.
func Error(err error, returnState State) Artifact {
	return Artifact{Kind: ArtifactError, Err: err, ReturnState: returnState}
}

// EventArtifact echoes an event for logging; it causes no loop action.
func EventArtifact(e Event) Artifact { return Artifact{Kind: ArtifactEvent, Event: e} }

// ExitWith builds a terminal exit-status artifact.
func ExitWith(s ExitStatus) Artifact { return Artifact{Kind: ArtifactExitStatus, Status: s} }

// ExternalCommand builds a request to hand off to an external program.
func ExternalCommand(program string, args []string) Artifact {
	return Artifact{Kind: ArtifactExternalCommand, Program: program, Args: args}
}

// EnqueueResize requests a synthetic resize event be pushed back onto the
// input queue using the given last-known dimensions.
func EnqueueResize(w, h int) Artifact {
	return Artifact{Kind: ArtifactEnqueueResize, Width: w, Height: h}
}

// SearchTerm builds a search-term-update artifact.
func SearchTerm(term string) Artifact { return Artifact{Kind: ArtifactSearchTerm, Term: term} }

// SearchCancelArtifact builds a search-cancellation artifact.
func SearchCancelArtifact() Artifact { return Artifact{Kind: ArtifactSearchCancel} }

// Searchable builds a handle-to-searchable-collection artifact.
func Searchable(handle any) Artifact { return Artifact{Kind: ArtifactSearchable, Searchable: handle} }

// Results is an ordered bundle of artifacts produced by one event step.
// The process loop drains it strictly FIFO (spec.md §5 ordering
// guarantees).
type Results []Artifact

// Append appends artifacts and returns the updated Results, mirroring
// idiomatic builder use at module call sites.
func (r Results) Append(a ...Artifact) Results { return append(r, a...) }
