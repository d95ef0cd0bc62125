package catalog

import "testing"

func TestEntriesHaveUniqueSlugs(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range Entries {
		if e.Slug == "" || e.Title == "" {
			t.Errorf("entry %+v missing slug or title", e)
		}
		if seen[e.Slug] {
			t.Errorf("duplicate slug %q", e.Slug)
		}
		seen[e.Slug] = true
	}
}

func TestResolveExact(t *testing.T) {
	for i, e := range Entries {
		got, ok := Resolve(e.Slug)
		if !ok || got != i {
			t.Errorf("Resolve(%q) = (%d, %v), want (%d, true)", e.Slug, got, ok, i)
		}
	}
}

func TestResolveFuzzy(t *testing.T) {
	cases := map[string]string{
		"sprng":    "spring",
		"Toggle":   "toggle",
		"sequnce":  "sequence",
		"progess":  "progress",
		" morph ":  "morph",
		"easng":    "easing",
		"transfrm": "transform",
	}
	for input, want := range cases {
		i, ok := Resolve(input)
		if !ok {
			t.Errorf("Resolve(%q): no match, want %q", input, want)
			continue
		}
		if Entries[i].Slug != want {
			t.Errorf("Resolve(%q) = %q, want %q", input, Entries[i].Slug, want)
		}
	}
}

func TestResolveMiss(t *testing.T) {
	for _, input := range []string{"", "   ", "kubernetes", "zzzzzzzz"} {
		if _, ok := Resolve(input); ok {
			t.Errorf("Resolve(%q) unexpectedly matched", input)
		}
	}
}
