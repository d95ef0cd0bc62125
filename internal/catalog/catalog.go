// Package catalog holds the static registry of animation examples.
// The ordered (slug, title, blurb) list is the app's entire navigation
// surface: the catalog screen renders it and the CLI resolves slugs
// against it.
package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Entry describes one example in display order.
type Entry struct {
	Slug  string
	Title string
	Blurb string
}

// Entries is the full catalog in display order.
var Entries = []Entry{
	{Slug: "toggle", Title: "Basic toggle", Blurb: "state-triggered color and width transition"},
	{Slug: "easing", Title: "Timing curves", Blurb: "dots racing under each named easing curve"},
	{Slug: "spring", Title: "Spring", Blurb: "damped spring with overshoot and settle"},
	{Slug: "transform", Title: "Transform", Blurb: "scale and translate in one tween"},
	{Slug: "repeat", Title: "Repeat", Blurb: "auto-reversing pulse loop with delay"},
	{Slug: "sequence", Title: "Sequence", Blurb: "two chained steps with a cancellable delay"},
	{Slug: "flip", Title: "3D flip", Blurb: "card rotation faked by width through zero"},
	{Slug: "morph", Title: "Geometry morph", Blurb: "one box morphing between two layout slots"},
	{Slug: "progress", Title: "Progress", Blurb: "monotone 0 to 1 progress bar"},
	{Slug: "drag", Title: "Drag", Blurb: "mouse-drag offset with spring-back release"},
	{Slug: "fade", Title: "Fade", Blurb: "opacity crossfade via color blending"},
}

// maxSlugDistance is the levenshtein threshold for fuzzy slug resolution;
// beyond it a typo is treated as a miss rather than silently opening the
// wrong example.
const maxSlugDistance = 3

// Index returns the position of slug in Entries, or -1.
func Index(slug string) int {
	for i, e := range Entries {
		if e.Slug == slug {
			return i
		}
	}
	return -1
}

// Resolve maps user input to a catalog index: exact slug match first,
// then the nearest slug within the levenshtein threshold. The second return
// is false when nothing is close enough.
func Resolve(input string) (int, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return 0, false
	}
	if i := Index(input); i >= 0 {
		return i, true
	}
	best, bestDist := -1, maxSlugDistance+1
	for i, e := range Entries {
		d := levenshtein.ComputeDistance(input, e.Slug)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 || bestDist > maxSlugDistance {
		return 0, false
	}
	return best, true
}
