package config

import (
	"strconv"
	"strings"

	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/backend"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/config/layer"
	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/config/loader"
)

// Settings is the fully parsed, validated result of loading the VCS
// configuration keys spec.md §6 names.
type Settings struct {
	CommentChar string
	Editor      string

	AutoSelectNext           bool
	DiffIgnoreWhitespace     string
	DiffShowWhitespace       string
	DiffSpaceSymbol          string
	DiffTabSymbol            string
	DiffTabWidth             uint
	DiffContextLines         uint
	DiffInterhunkLines       uint
	DiffRenames              string
	DiffRenameLimit          uint
	UndoLimit                uint
	VerticalSpacingCharacter string

	Colours  map[string]backend.Colour
	Bindings map[string][]Binding
}

// Load reads `git config --list` for repoPath, merges it over the tool's
// built-in defaults and the VISUAL/EDITOR fallback, and validates every
// recognized key (spec.md §6). The first invalid value encountered is
// returned as a *Error.
func Load(repoPath string) (*Settings, error) {
	mgr := layer.NewManager()
	mgr.AddLayer(layer.NewLayerWithData("defaults", layer.SourceBuiltin, layer.PriorityBuiltin, defaultValues()))

	entries, err := loader.LoadGitConfig(repoPath)
	if err != nil {
		return nil, err
	}
	bucketed := map[string]map[string]any{}
	for _, e := range entries {
		if _, ok := Recognized[e.Key]; !ok {
			continue
		}
		if bucketed[e.Scope] == nil {
			bucketed[e.Scope] = map[string]any{}
		}
		bucketed[e.Scope][e.Key] = e.Value
	}
	for scope, data := range bucketed {
		src, prio := scopeLayer(scope)
		mgr.AddLayer(layer.NewLayerWithData(scope, src, prio, data))
	}

	if editor, ok := EditorValue(mgr); !ok {
		if fallback, found := loader.EditorFromEnv(); found {
			mgr.AddLayer(layer.NewLayerWithData("environment", layer.SourceEnvFallback, layer.PriorityEnvFallback,
				map[string]any{"core.editor": fallback}))
		}
	} else {
		_ = editor
	}

	return build(mgr.Merge())
}

// EditorValue reports whether core.editor has an effective value already.
func EditorValue(mgr *layer.Manager) (string, bool) {
	v, _, ok := mgr.Get("core.editor")
	if !ok {
		return "", false
	}
	s, _ := v.(string)
	return s, s != ""
}

func scopeLayer(scope string) (layer.Source, int) {
	switch scope {
	case "system":
		return layer.SourceSystem, layer.PrioritySystem
	case "global":
		return layer.SourceGlobal, layer.PriorityGlobal
	case "worktree":
		return layer.SourceWorktree, layer.PriorityWorktree
	default:
		return layer.SourceLocal, layer.PriorityLocal
	}
}

func defaultValues() map[string]any {
	out := map[string]any{}
	for name, k := range Recognized {
		if k.Default != "" {
			out[name] = k.Default
		}
	}
	return out
}

func build(merged map[string]any) (*Settings, error) {
	s := &Settings{Colours: map[string]backend.Colour{}, Bindings: map[string][]Binding{}}

	str := func(key string) string {
		v, _ := merged[key].(string)
		return v
	}

	s.CommentChar = str("core.commentChar")
	s.Editor = str("core.editor")

	var err error
	if s.AutoSelectNext, err = parseBool("interactive-rebase-tool.autoSelectNext", str("interactive-rebase-tool.autoSelectNext")); err != nil {
		return nil, err
	}
	if s.DiffIgnoreWhitespace, err = parseEnum("interactive-rebase-tool.diffIgnoreWhitespace", str("interactive-rebase-tool.diffIgnoreWhitespace")); err != nil {
		return nil, err
	}
	if s.DiffShowWhitespace, err = parseEnum("interactive-rebase-tool.diffShowWhitespace", str("interactive-rebase-tool.diffShowWhitespace")); err != nil {
		return nil, err
	}
	s.DiffSpaceSymbol = str("interactive-rebase-tool.diffSpaceSymbol")
	s.DiffTabSymbol = str("interactive-rebase-tool.diffTabSymbol")
	if s.DiffTabWidth, err = parseUint("interactive-rebase-tool.diffTabWidth", str("interactive-rebase-tool.diffTabWidth")); err != nil {
		return nil, err
	}
	if s.DiffContextLines, err = parseUint("interactive-rebase-tool.diffContextLines", str("interactive-rebase-tool.diffContextLines")); err != nil {
		return nil, err
	}
	if s.DiffInterhunkLines, err = parseUint("interactive-rebase-tool.diffInterhunkLines", str("interactive-rebase-tool.diffInterhunkLines")); err != nil {
		return nil, err
	}
	if s.DiffRenames, err = parseEnum("interactive-rebase-tool.diffRenames", str("interactive-rebase-tool.diffRenames")); err != nil {
		return nil, err
	}
	if s.DiffRenameLimit, err = parseUint("interactive-rebase-tool.diffRenameLimit", str("interactive-rebase-tool.diffRenameLimit")); err != nil {
		return nil, err
	}
	if s.UndoLimit, err = parseUint("interactive-rebase-tool.undoLimit", str("interactive-rebase-tool.undoLimit")); err != nil {
		return nil, err
	}
	s.VerticalSpacingCharacter = str("interactive-rebase-tool.verticalSpacingCharacter")

	for _, name := range colourNames {
		key := "interactive-rebase-tool." + name
		v := str(key)
		if v == "" {
			continue
		}
		c, err := ParseColour(key, v)
		if err != nil {
			return nil, err
		}
		s.Colours[name] = c
	}

	for _, name := range bindingActions {
		key := "interactive-rebase-tool.input" + ucFirst(name)
		v := str(key)
		if v == "" {
			continue
		}
		bindings, err := ParseBindingList(key, v)
		if err != nil {
			return nil, err
		}
		s.Bindings[name] = bindings
	}

	if conflicts := Conflicts(s.Bindings); len(conflicts) > 0 {
		c := conflicts[0]
		return nil, &Error{Key: "interactive-rebase-tool.input*", Value: c.Descriptor, Reason: "bound to both " + c.ActionA + " and " + c.ActionB}
	}

	return s, nil
}

func parseBool(key, v string) (bool, error) {
	switch strings.ToLower(v) {
	case "true", "yes", "1", "on":
		return true, nil
	case "false", "no", "0", "off", "":
		return false, nil
	default:
		return false, &Error{Key: key, Value: v, Reason: "must be a boolean"}
	}
}

func parseUint(key, v string) (uint, error) {
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, &Error{Key: key, Value: v, Reason: "must be an unsigned integer"}
	}
	return uint(n), nil
}

func parseEnum(key, v string) (string, error) {
	k := Recognized[key]
	for _, allowed := range k.Enum {
		if v == allowed {
			return v, nil
		}
	}
	return "", &Error{Key: key, Value: v, Reason: "must be one of " + strings.Join(k.Enum, "|")}
}
