package config

import "fmt"

// Conflict records two bindable actions that share a key descriptor.
type Conflict struct {
	Descriptor string
	ActionA    string
	ActionB    string
}

// Conflicts finds key-binding collisions across the whole binding table:
// a Go-native feature absent from the distilled spec, supplementing it per
// SPEC_FULL.md (the original flags a duplicate binding only at first use,
// silently letting the second action win; here every collision surfaces
// at load time as a ConfigError, which is stricter and catches the whole
// class of bugs the original's lazy check misses).
func Conflicts(bindings map[string][]Binding) []Conflict {
	seen := map[Binding]string{}
	var conflicts []Conflict

	actions := make([]string, 0, len(bindings))
	for action := range bindings {
		actions = append(actions, action)
	}
	sortStrings(actions)

	for _, action := range actions {
		for _, b := range bindings[action] {
			if owner, ok := seen[b]; ok && owner != action {
				conflicts = append(conflicts, Conflict{
					Descriptor: describe(b),
					ActionA:    owner,
					ActionB:    action,
				})
				continue
			}
			seen[b] = action
		}
	}
	return conflicts
}

func describe(b Binding) string {
	if b.Rune != 0 {
		return fmt.Sprintf("rune:%c mod:%d", b.Rune, b.Mod)
	}
	return fmt.Sprintf("key:%d mod:%d", b.Key, b.Mod)
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
