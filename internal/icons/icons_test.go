package icons

import "testing"

func TestLookup(t *testing.T) {
	meta, ok := Default.Lookup("lucide/ghost")
	if !ok || meta.DefaultLabel != "ghost" {
		t.Fatalf("unexpected lookup result: %+v %v", meta, ok)
	}
	if _, ok := Default.Lookup("lucide/definitely-not-a-thing"); ok {
		t.Fatalf("unknown key should not resolve")
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	if !Default.Known("Simple-Icons/GitHub") {
		t.Fatalf("lookup should normalize case")
	}
}

func TestGlyph(t *testing.T) {
	g, ok := Glyph("lucide/terminal")
	if !ok || g == "" {
		t.Fatalf("expected glyph for lucide/terminal, got %q %v", g, ok)
	}
	if _, ok := Glyph("nope/nope"); ok {
		t.Fatalf("unknown key should have no glyph")
	}
}

func TestKeysSortedAndComplete(t *testing.T) {
	keys := Keys()
	if len(keys) != len(catalog) {
		t.Fatalf("Keys() returned %d entries, catalog has %d", len(keys), len(catalog))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("keys not sorted: %q before %q", keys[i-1], keys[i])
		}
	}
}
