package core

import "strings"

// DefaultOrgHints are substrings that usually show up in brand, team or
// institution accounts. Matching is a guess: personal handles containing one
// of them are hidden too.
var DefaultOrgHints = []string{
	"official",
	"club",
	"school",
	"academy",
	"university",
	"college",
	"team",
	"store",
	"shop",
	"brand",
	"daily",
	"news",
	"media",
	"magazine",
	"studio",
	"agency",
	"records",
	"church",
	"foundation",
	"company",
}

// OrgFilter flags handles that look like organisations.
type OrgFilter struct {
	hints []string
}

func NewOrgFilter(hints []string) *OrgFilter {
	f := &OrgFilter{}

	for _, h := range hints {
		h = strings.ToLower(strings.TrimSpace(h))

		if h != "" {
			f.hints = append(f.hints, h)
		}
	}

	return f
}

func (f *OrgFilter) Hints() []string {
	return append([]string(nil), f.hints...)
}

func (f *OrgFilter) Matches(handle string) bool {
	if f == nil {
		return false
	}

	handle = strings.ToLower(handle)

	for _, h := range f.hints {
		if strings.Contains(handle, h) {
			return true
		}
	}

	return false
}

// Exclude returns the handles the filter does not match, preserving order.
func (f *OrgFilter) Exclude(handles []string) []string {
	kept := make([]string, 0, len(handles))

	for _, h := range handles {
		if !f.Matches(h) {
			kept = append(kept, h)
		}
	}

	return kept
}
