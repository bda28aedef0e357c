// Package diffloader implements the cancellable, asynchronous commit-diff
// loader thread (spec.md §4.9). Grounded on internal/integration/git's
// diff-parsing pipeline composed with internal/runtime's Threadable
// contract, with correlation IDs (github.com/google/uuid) so loader log
// lines can be traced across the thread boundary.
package diffloader

import (
	"sync"

	"github.com/google/uuid"

	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/logging"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/runtime"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/vcs"
)

// StatusKind is the loader's progress state for the currently requested
// commit.
type StatusKind int

const (
	StatusNew StatusKind = iota
	StatusLoading
	StatusDiffComplete
	StatusError
)

// Status is the loader's current progress snapshot.
type Status struct {
	Kind StatusKind
	N, M int // n-of-m deltas processed, while Loading.
	Err  string
	Code int
}

// controlKind discriminates the loader's control channel messages.
type controlKind int

const (
	controlLoad controlKind = iota
	controlStatusChange
)

type control struct {
	kind controlKind
	hash string
}

// UpdateHandler is invoked after each delta is processed, so the UI can
// progressively render.
type UpdateHandler func(Status)

// Loader is the diff-loader thread (spec.md §4.9, §5: "sole writer to the
// diff object").
type Loader struct {
	repo vcs.Repository
	opts vcs.DiffOptions

	mu        sync.RWMutex
	diff      *vcs.CommitDiff
	status    Status
	cancelled bool
	ended     bool

	notifier *runtime.Notifier
	control  chan control
	onUpdate UpdateHandler
	log      *logging.Logger
}

// New builds a Loader against repo, using opts for every DiffCommit call.
func New(repo vcs.Repository, opts vcs.DiffOptions, onUpdate UpdateHandler) *Loader {
	return &Loader{
		repo:     repo,
		opts:     opts,
		control:  make(chan control, 8),
		onUpdate: onUpdate,
		log:      logging.Get().WithComponent("diff"),
	}
}

// Install registers the loader as the single "diff" thread (spec.md §4.9:
// "Runs on one thread named diff").
func (l *Loader) Install(ins *runtime.Installer) {
	l.notifier = ins.Register("diff")
	go l.run()
}

// Pause marks the current load cancelled (spec.md §4.9: on pause() set
// cancelled).
func (l *Loader) Pause() {
	l.mu.Lock()
	l.cancelled = true
	l.mu.Unlock()
}

// Resume clears the cancelled flag.
func (l *Loader) Resume() {
	l.mu.Lock()
	l.cancelled = false
	l.mu.Unlock()
}

// End stops the loader thread promptly.
func (l *Loader) End() {
	l.mu.Lock()
	l.ended = true
	l.mu.Unlock()
	close(l.control)
}

// Load requests an asynchronous load of hash's CommitDiff.
func (l *Loader) Load(hash string) {
	l.control <- control{kind: controlLoad, hash: hash}
}

// Cancel resets the loader's diff and status without a new request
// (spec.md §4.7: "On cancel ... signal the loader to reset").
func (l *Loader) Cancel() {
	l.mu.Lock()
	l.diff = nil
	l.status = Status{Kind: StatusNew}
	l.cancelled = true
	l.mu.Unlock()
}

// Status returns the loader's current progress snapshot.
func (l *Loader) Status() Status {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.status
}

// Diff returns the most recently completed CommitDiff, or nil.
func (l *Loader) Diff() *vcs.CommitDiff {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.diff
}

func (l *Loader) isCancelled() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cancelled
}

func (l *Loader) setStatus(s Status) {
	l.mu.Lock()
	l.status = s
	l.mu.Unlock()
	if l.onUpdate != nil {
		l.onUpdate(s)
	}
}

// run is the loader's thread body: blocks on receive_update() (the
// control channel) per spec.md §5 suspension points.
func (l *Loader) run() {
	l.notifier.Waiting()
	for req := range l.control {
		if req.kind != controlLoad {
			continue
		}
		l.notifier.Busy()
		l.load(req.hash)
		l.notifier.Waiting()
	}
	l.notifier.Ended()
}

func (l *Loader) load(hash string) {
	correlationID := uuid.NewString()
	log := l.log.WithFields(map[string]any{"correlation_id": correlationID, "hash": hash})
	log.Debug("diff load requested")

	l.mu.Lock()
	l.cancelled = false
	l.mu.Unlock()

	l.setStatus(Status{Kind: StatusLoading, N: 0, M: 1})

	diff, err := l.repo.DiffCommit(hash, l.opts)
	if err != nil {
		log.ErrorErr("diff load failed", err)
		l.setStatus(Status{Kind: StatusError, Err: err.Error(), Code: 1})
		l.mu.Lock()
		l.cancelled = true
		l.mu.Unlock()
		return
	}

	total := len(diff.Files)
	for i := range diff.Files {
		if l.isCancelled() {
			l.mu.Lock()
			l.diff = nil
			l.mu.Unlock()
			l.setStatus(Status{Kind: StatusNew})
			return
		}
		l.setStatus(Status{Kind: StatusLoading, N: i + 1, M: total})
	}

	l.mu.Lock()
	l.diff = diff
	l.mu.Unlock()
	log.Debug("diff load complete", "files", total)
	l.setStatus(Status{Kind: StatusDiffComplete})
}
