// Package showcommit implements the ShowCommit module (spec.md §4.7): an
// expanded view of one commit — header, full message, file-change
// summary, then per-file diff hunks — driven by an asynchronous
// diffloader.Loader. Grounded on internal/integration/git's commit/diff
// rendering helpers, generalized from a one-shot text dump to a
// progressively-rendered, cancellable view.
package showcommit

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/backend"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/config"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/diffloader"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/events"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/module"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/module/spin"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/todo"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/vcs"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/view"
)

// Module is the ShowCommit state.
type Module struct {
	doc    *todo.Document
	loader *diffloader.Loader

	spinner *spin.Spinner
	hash    string
	styles  map[view.ColourTag]backend.Style

	// viewingDiff distinguishes the two independent scroll positions
	// spec.md §4.7 calls for: the file-status overview, and the diff
	// body entered via ShowDiff. Each sub-view keeps its own top-row
	// offset (overviewTop, diffTop) so toggling between them restores
	// position.
	viewingDiff          bool
	overviewTop, diffTop int
}

// New builds a ShowCommit module. loader may be nil (e.g. in tests);
// when nil, BuildViewData renders nothing beyond "no diff loader".
// settings supplies the configured diff colours; a nil settings leaves
// every segment unstyled.
func New(doc *todo.Document, loader *diffloader.Loader, settings *config.Settings) *Module {
	return &Module{doc: doc, loader: loader, spinner: spin.New(), styles: diffStyles(settings)}
}

func diffStyles(settings *config.Settings) map[view.ColourTag]backend.Style {
	styles := map[view.ColourTag]backend.Style{}
	if settings == nil {
		return styles
	}
	named := map[view.ColourTag]string{
		view.ColourIndicator:   "indicatorColor",
		view.ColourError:       "errorColor",
		view.ColourDiffAdd:     "diffAddColor",
		view.ColourDiffChange:  "diffChangeColor",
		view.ColourDiffRemove:  "diffRemoveColor",
		view.ColourDiffContext: "diffContextColor",
	}
	for tag, name := range named {
		styles[tag] = backend.Style{FG: settings.Colours[name]}
	}
	return styles
}

func (m *Module) styled(seg view.Segment) view.Segment {
	seg.Style = m.styles[seg.Tag]
	return seg
}

func (m *Module) Activate(previous events.State) events.Results {
	lines := m.doc.Lines()
	idx := m.doc.SelectedIndex()
	hash := ""
	if idx < len(lines) && lines[idx].Action.CommitBearing() {
		hash = lines[idx].Hash
	}
	if hash != m.hash {
		m.hash = hash
		m.viewingDiff = false
		m.overviewTop = 0
		m.diffTop = 0
		m.spinner.Reset()
		if m.loader != nil && hash != "" {
			m.loader.Load(hash)
		}
	}
	return nil
}

// Deactivate signals the loader to reset (spec.md §4.7: "On cancel ...
// signal the loader to reset"), covering both re-activation with a
// different hash (handled again in Activate) and leaving via abort.
func (m *Module) Deactivate() events.Results {
	if m.loader != nil {
		m.loader.Cancel()
	}
	return nil
}

func (m *Module) InputOptions() module.InputOptions {
	return module.OptResize | module.OptMovement
}

func (m *Module) BuildViewData(ctx module.RenderContext) (view.Data, view.Visibility) {
	if m.loader == nil {
		return view.Data{Title: true, Body: []view.ViewLine{
			view.NewViewLine(m.styled(view.Segment{Text: "no diff loader configured", Tag: view.ColourError})),
		}}, view.Visibility{}
	}

	status := m.loader.Status()
	switch status.Kind {
	case diffloader.StatusError:
		return view.Data{Title: true, Body: []view.ViewLine{
			view.NewViewLine(m.styled(view.Segment{Text: fmt.Sprintf("diff load failed: %s", status.Err), Tag: view.ColourError})),
		}}, view.Visibility{}
	case diffloader.StatusLoading, diffloader.StatusNew:
		glyph := m.spinner.Advance()
		text := fmt.Sprintf("%c loading diff (%d/%d)", glyph, status.N, status.M)
		return view.Data{Title: true, Body: []view.ViewLine{view.NewViewLine(view.Segment{Text: text})}}, view.Visibility{}
	}

	diff := m.loader.Diff()
	if diff == nil {
		return view.Data{Title: true}, view.Visibility{}
	}

	if m.viewingDiff {
		body := m.diffBody(diff)
		top := clampTop(m.diffTop, len(body))
		return view.Data{Title: true, Leading: header(diff), Body: body},
			view.Visibility{Row: top}
	}

	body := overviewBody(diff)
	top := clampTop(m.overviewTop, len(body))
	return view.Data{Title: true, Leading: header(diff), Body: body},
		view.Visibility{Row: top}
}

func clampTop(top, n int) int {
	if top >= n {
		top = n - 1
	}
	if top < 0 {
		top = 0
	}
	return top
}

func header(diff *vcs.CommitDiff) []view.ViewLine {
	c := diff.Commit
	lines := []view.ViewLine{
		view.NewViewLine(view.Segment{Text: "Commit: " + c.Hash}),
		view.NewViewLine(view.Segment{Text: "Author: " + c.Author.String()}),
	}
	if c.Committer != nil {
		lines = append(lines, view.NewViewLine(view.Segment{Text: "Committer: " + c.Committer.String()}))
	}
	lines = append(lines, view.NewViewLine(view.Segment{Text: "Date: " + humanize.Time(c.Authored)}))
	if c.Reference != nil {
		lines = append(lines, view.NewViewLine(view.Segment{Text: "Reference: " + c.Reference.Name}))
	}
	if c.Message != nil {
		for _, l := range strings.Split(*c.Message, "\n") {
			lines = append(lines, view.NewViewLine(view.Segment{Text: l}))
		}
	}
	lines = append(lines, view.NewViewLine(view.Segment{
		Text: fmt.Sprintf("%d file(s) changed, %d insertion(s), %d deletion(s)", diff.FilesChanged, diff.Insertions, diff.Deletions),
	}))
	return lines
}

// overviewBody lists one summary line per changed file (spec.md §4.7:
// "file-status overview").
func overviewBody(diff *vcs.CommitDiff) []view.ViewLine {
	out := make([]view.ViewLine, 0, len(diff.Files))
	for _, f := range diff.Files {
		out = append(out, view.NewViewLine(view.Segment{Text: statusLine(f)}))
	}
	return out
}

func statusLine(f vcs.FileStatus) string {
	path := f.DestinationPath
	if path == "" {
		path = f.SourcePath
	}
	switch f.Status {
	case vcs.StatusAdded:
		return "A  " + path
	case vcs.StatusDeleted:
		return "D  " + path
	case vcs.StatusRenamed:
		return "R  " + f.SourcePath + " -> " + f.DestinationPath
	case vcs.StatusCopied:
		return "C  " + f.SourcePath + " -> " + f.DestinationPath
	case vcs.StatusTypeChanged:
		return "T  " + path
	default:
		return "M  " + path
	}
}

// diffBody renders every file's hunks in sequence, syntax-coloured by
// diff-line origin (spec.md §4.7: "per-file deltas with syntax-colored
// hunks").
func (m *Module) diffBody(diff *vcs.CommitDiff) []view.ViewLine {
	var out []view.ViewLine
	for _, f := range diff.Files {
		out = append(out, view.NewViewLine(m.styled(view.Segment{Text: "--- " + statusLine(f), Tag: view.ColourIndicator})))
		for _, d := range f.Deltas {
			out = append(out, view.NewViewLine(m.styled(view.Segment{
				Text: fmt.Sprintf("@@ -%d,%d +%d,%d @@ %s", d.OldStart, d.OldLines, d.NewStart, d.NewLines, d.Context),
				Tag:  view.ColourDiffChange,
			})))
			for _, l := range d.Lines {
				out = append(out, view.NewViewLine(m.styled(view.Segment{Text: l.Content, Tag: diffLineColour(l.Origin)})))
			}
		}
	}
	return out
}

func diffLineColour(o vcs.DiffLineOrigin) view.ColourTag {
	switch o {
	case vcs.OriginAddition:
		return view.ColourDiffAdd
	case vcs.OriginDeletion:
		return view.ColourDiffRemove
	case vcs.OriginHeader:
		return view.ColourDiffChange
	default:
		return view.ColourDiffContext
	}
}

func (m *Module) ReadEvent(raw backend.Event, bindings map[string][]config.Binding) events.Event {
	if name, ok := module.ResolveBinding(raw, bindings); ok {
		switch name {
		case "moveUp":
			return events.NewStandard(events.ScrollUp)
		case "moveDown":
			return events.NewStandard(events.ScrollDown)
		case "movePageUp":
			return events.NewStandard(events.ScrollUp) // coarser paging not modelled separately here
		case "movePageDown":
			return events.NewStandard(events.ScrollDown)
		case "moveHome":
			return events.NewStandard(events.ScrollTop)
		case "moveEnd":
			return events.NewStandard(events.ScrollBottom)
		case "showCommit":
			return events.NewStandard(events.ShowDiff)
		case "confirmAbort":
			return events.NewStandard(events.Abort)
		}
	}
	if e, ok := module.ReadResizeOrMouse(raw); ok {
		return e
	}
	return events.Empty
}

func (m *Module) HandleEvent(e events.Event) events.Results {
	if e.Kind != events.KindStandard {
		return nil
	}
	switch e.Standard {
	case events.ShowDiff:
		if m.viewingDiff {
			m.viewingDiff = false
		} else {
			m.viewingDiff = true
		}
		return nil
	case events.Abort:
		return events.Results{events.ChangeState(events.StateConfirmAbort)}
	case events.ScrollUp:
		m.scroll(-1)
	case events.ScrollDown:
		m.scroll(1)
	case events.ScrollTop:
		m.setTop(0)
	case events.ScrollBottom:
		m.setTop(1 << 30)
	}
	return nil
}

func (m *Module) scroll(delta int) {
	if m.viewingDiff {
		m.diffTop += delta
		if m.diffTop < 0 {
			m.diffTop = 0
		}
		return
	}
	m.overviewTop += delta
	if m.overviewTop < 0 {
		m.overviewTop = 0
	}
}

func (m *Module) setTop(v int) {
	if m.viewingDiff {
		m.diffTop = v
		return
	}
	m.overviewTop = v
}

func (m *Module) HandleError(err error) events.Results { return nil }
