package config

import "testing"

func TestConflictsDetectsSharedDescriptor(t *testing.T) {
	j := Binding{Rune: 'j'}
	bindings := map[string][]Binding{
		"moveDown":   {j},
		"actionPick": {j},
	}
	conflicts := Conflicts(bindings)
	if len(conflicts) != 1 {
		t.Fatalf("len(conflicts) = %d, want 1: %+v", len(conflicts), conflicts)
	}
}

func TestConflictsNoneWhenDisjoint(t *testing.T) {
	bindings := map[string][]Binding{
		"moveDown": {{Rune: 'j'}},
		"moveUp":   {{Rune: 'k'}},
	}
	if got := Conflicts(bindings); len(got) != 0 {
		t.Fatalf("Conflicts() = %+v, want empty", got)
	}
}
