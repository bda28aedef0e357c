// Package config loads and validates the closed set of VCS configuration
// keys spec.md §6 names. Grounded on the teacher's config/registry.Setting
// (type-tagged validation) and config/layer (priority merge), adapted from
// a TOML/JSON-Schema settings tree to a flat table of `git config` keys.
package config

// ValueKind is the data type one recognized key's value is parsed as.
type ValueKind int

const (
	KindString ValueKind = iota
	KindBool
	KindUint
	KindEnum
	KindColour
	KindKeyBinding
)

// Key is one recognized `git config` key name (spec.md §6).
type Key struct {
	Name    string
	Kind    ValueKind
	Enum    []string // valid literal values, when Kind == KindEnum
	Default string
}

// Recognized is the closed set of keys this tool understands; any other
// key present in `git config --list` is ignored.
var Recognized = buildRegistry()

func buildRegistry() map[string]Key {
	keys := []Key{
		{Name: "core.commentChar", Kind: KindString, Default: "#"},
		{Name: "core.editor", Kind: KindString},

		{Name: "interactive-rebase-tool.autoSelectNext", Kind: KindBool, Default: "false"},
		{Name: "interactive-rebase-tool.diffIgnoreWhitespace", Kind: KindEnum, Enum: []string{"none", "all", "change"}, Default: "none"},
		{Name: "interactive-rebase-tool.diffShowWhitespace", Kind: KindEnum, Enum: []string{"both", "trailing", "leading", "none"}, Default: "both"},
		{Name: "interactive-rebase-tool.diffSpaceSymbol", Kind: KindString, Default: "·"},
		{Name: "interactive-rebase-tool.diffTabSymbol", Kind: KindString, Default: "→"},
		{Name: "interactive-rebase-tool.diffTabWidth", Kind: KindUint, Default: "4"},
		{Name: "interactive-rebase-tool.diffContextLines", Kind: KindUint, Default: "3"},
		{Name: "interactive-rebase-tool.diffInterhunkLines", Kind: KindUint, Default: "0"},
		{Name: "interactive-rebase-tool.diffRenames", Kind: KindEnum, Enum: []string{"true", "false", "copy", "copies"}, Default: "true"},
		{Name: "interactive-rebase-tool.diffRenameLimit", Kind: KindUint, Default: "200"},
		{Name: "interactive-rebase-tool.undoLimit", Kind: KindUint, Default: "5000"},
		{Name: "interactive-rebase-tool.verticalSpacingCharacter", Kind: KindString, Default: "~"},
	}
	keys = append(keys, colourKeys()...)
	keys = append(keys, bindingKeys()...)

	m := make(map[string]Key, len(keys))
	for _, k := range keys {
		m[k.Name] = k
	}
	return m
}

// colourNames lists every `interactive-rebase-tool.*Color` key spec.md §6
// names.
var colourNames = []string{
	"foregroundColor", "indicatorColor", "errorColor",
	"diffAddColor", "diffChangeColor", "diffRemoveColor", "diffContextColor", "diffWhitespaceColor",
	"actionBreakColor", "actionDropColor", "actionEditColor", "actionExecColor", "actionFixupColor",
	"actionPickColor", "actionRewordColor", "actionSquashColor", "actionLabelColor", "actionResetColor",
	"actionMergeColor", "actionUpdateRefColor", "selectedBackgroundColor",
}

func colourKeys() []Key {
	out := make([]Key, 0, len(colourNames))
	for _, name := range colourNames {
		out = append(out, Key{Name: "interactive-rebase-tool." + name, Kind: KindColour, Default: "transparent"})
	}
	return out
}

// bindingActions lists every bindable action event spec.md §4.6/§4.8 name.
var bindingActions = []string{
	"moveUp", "moveDown", "moveLeft", "moveRight", "movePageUp", "movePageDown", "moveHome", "moveEnd",
	"toggleVisualMode", "actionPick", "actionReword", "actionEdit", "actionSquash", "actionFixup", "actionDrop",
	"swapSelectedUp", "swapSelectedDown", "toggleBreak", "openInEditor", "showCommit", "confirmAbort",
	"confirmRebase", "undo", "redo", "help", "searchStart", "searchNext", "searchPrevious", "insertLine", "removeLine",
}

// defaultBindings gives every bindable action one built-in descriptor, so
// the tool is usable without any `git config interactive-rebase-tool.input*`
// entries (DESIGN.md Open Question decision: the original tool ships
// built-in defaults for every action; this pins single, non-conflicting
// keys in the same spirit rather than leaving Bindings empty until the
// user configures it).
var defaultBindings = map[string]string{
	"moveUp":           "Up",
	"moveDown":         "Down",
	"moveLeft":         "Left",
	"moveRight":        "Right",
	"movePageUp":       "PageUp",
	"movePageDown":     "PageDown",
	"moveHome":         "Home",
	"moveEnd":          "End",
	"toggleVisualMode": "v",
	"actionPick":       "p",
	"actionReword":     "r",
	"actionEdit":       "e",
	"actionSquash":     "s",
	"actionFixup":      "f",
	"actionDrop":       "d",
	"swapSelectedUp":   "K",
	"swapSelectedDown": "J",
	"toggleBreak":      "b",
	"openInEditor":     "!",
	"showCommit":       "c",
	"confirmAbort":     "q",
	"confirmRebase":    "w",
	"undo":             "u",
	"redo":             "Control+r",
	"help":             "h",
	"searchStart":      "/",
	"searchNext":       "n",
	"searchPrevious":   "N",
	"insertLine":       "I",
	"removeLine":       "Control+k",
}

func bindingKeys() []Key {
	out := make([]Key, 0, len(bindingActions))
	for _, name := range bindingActions {
		out = append(out, Key{Name: "interactive-rebase-tool.input" + ucFirst(name), Kind: KindKeyBinding, Default: defaultBindings[name]})
	}
	return out
}

func ucFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
