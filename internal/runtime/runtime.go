package runtime

import "sync"

// Notifier is handed to a sub-thread at install time. It carries the
// thread's name and a reference to the shared status table, so every
// status change funnels through one critical section (spec.md §4.1).
type Notifier struct {
	Name  string
	table *StatusTable
}

// Busy reports the thread is actively working.
func (n *Notifier) Busy() { n.table.Set(n.Name, StatusBusy, "") }

// Waiting reports the thread is cooperatively idling (e.g. paused, or
// blocked on a poll/recv).
func (n *Notifier) Waiting() { n.table.Set(n.Name, StatusWaiting, "") }

// Ended reports the thread has exited its loop for good.
func (n *Notifier) Ended() { n.table.Set(n.Name, StatusEnded, "") }

// Error reports a terminal failure; no further status overwrites it.
func (n *Notifier) Error(msg string) { n.table.Set(n.Name, StatusError, msg) }

// Installer is handed to a Threadable's Install method; it registers each
// named sub-thread and returns its Notifier.
type Installer struct {
	table *StatusTable
}

// Register records a new named thread and returns its Notifier.
func (ins *Installer) Register(name string) *Notifier {
	ins.table.Register(name)
	return &Notifier{Name: name, table: ins.table}
}

// Threadable is a value that can be installed as one or more named
// threads under the Runtime (spec.md §4.1, Glossary "Threadable").
type Threadable interface {
	Install(ins *Installer)
	Pause()
	Resume()
	End()
}

// Runtime owns the status table and fans out pause/resume/end requests to
// every registered Threadable.
type Runtime struct {
	mu          sync.Mutex
	table       *StatusTable
	threadables []Threadable
}

// New builds an empty Runtime.
func New() *Runtime {
	return &Runtime{table: NewStatusTable()}
}

// StatusTable exposes the shared status table (e.g. for the process loop
// to observe a poisoned view thread).
func (r *Runtime) StatusTable() *StatusTable { return r.table }

// Install registers t and calls its Install method with a fresh
// Installer bound to this runtime's status table.
func (r *Runtime) Install(t Threadable) {
	r.mu.Lock()
	r.threadables = append(r.threadables, t)
	r.mu.Unlock()
	t.Install(&Installer{table: r.table})
}

// PauseAll fans RequestPause out to every registered Threadable. Pause is
// cooperative: each Threadable is expected to check its own paused flag.
func (r *Runtime) PauseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.threadables {
		t.Pause()
	}
}

// ResumeAll fans RequestResume out to every registered Threadable.
func (r *Runtime) ResumeAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.threadables {
		t.Resume()
	}
}

// EndAll fans RequestEnd out to every registered Threadable. End must be
// cooperative and prompt.
func (r *Runtime) EndAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.threadables {
		t.End()
	}
}

// WaitForAllEnded blocks until every registered thread reaches Ended or
// Error, polling at the default cadence, up to an overall budget of
// maxWaits iterations of the full thread set.
func (r *Runtime) WaitForAllEnded(maxWaits int) bool {
	for i := 0; i < maxWaits; i++ {
		if r.table.AllEnded() {
			return true
		}
		// Reuse the table's own polling primitive against one thread is
		// not meaningful here (we need *all* threads); fall back to a
		// short cooperative sleep between checks.
		sleepTick()
	}
	return r.table.AllEnded()
}
