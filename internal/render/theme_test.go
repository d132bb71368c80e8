package render

import "testing"

func TestLookupFallsBack(t *testing.T) {
	def := Lookup(DefaultTheme)
	if Lookup("no-such-theme") != def {
		t.Fatal("unknown theme did not fall back to the default")
	}
	if Lookup("light") == def {
		t.Fatal("known theme resolved to the default")
	}
}

func TestKnownTheme(t *testing.T) {
	for _, name := range Names() {
		if !KnownTheme(name) {
			t.Fatalf("catalog theme %q not recognized", name)
		}
	}
	if KnownTheme("neon") {
		t.Fatal("unknown theme recognized")
	}
}

func TestNextThemeCycles(t *testing.T) {
	names := Names()
	seen := map[string]bool{}
	cur := names[0]
	for range names {
		seen[cur] = true
		cur = NextTheme(cur)
	}
	if cur != names[0] {
		t.Fatalf("cycle did not return to %q, ended at %q", names[0], cur)
	}
	if len(seen) != len(names) {
		t.Fatalf("cycle visited %d themes, want %d", len(seen), len(names))
	}
	if NextTheme("bogus") != DefaultTheme {
		t.Fatal("unknown theme should cycle to the default")
	}
}
