package domain

import "strings"

// FilterCriteria describes what a listing query keeps. An empty tag set means
// no tag filter; SearchText is ignored when blank. Immutable; the With*
// builders return modified copies.
type FilterCriteria struct {
	Tags        []Tag
	NSFWEnabled bool
	SearchText  string
}

func (c FilterCriteria) HasTagFilter() bool {
	return len(c.Tags) > 0
}

func (c FilterCriteria) HasSearchFilter() bool {
	return strings.TrimSpace(c.SearchText) != ""
}

func (c FilterCriteria) WithTags(tags []Tag) FilterCriteria {
	out := c
	out.Tags = append([]Tag(nil), tags...)
	return out
}

func (c FilterCriteria) WithNSFW(enabled bool) FilterCriteria {
	out := c
	out.NSFWEnabled = enabled
	return out
}

func (c FilterCriteria) WithSearchText(text string) FilterCriteria {
	out := c
	out.SearchText = text
	return out
}

// matchesFilter is the shared predicate behind Bot/Server/Template
// MatchesFilter. Order matters: the NSFW gate rejects before tag or search
// matching gets a say. Tag matching is OR across tags (any overlap qualifies).
func matchesFilter(c FilterCriteria, nsfw bool, tags []Tag, name, description string) bool {
	if nsfw && !c.NSFWEnabled {
		return false
	}

	if c.HasTagFilter() {
		overlap := false
	outer:
		for _, have := range tags {
			for _, want := range c.Tags {
				if have.Name() == want.Name() {
					overlap = true
					break outer
				}
			}
		}
		if !overlap {
			return false
		}
	}

	if c.HasSearchFilter() {
		needle := strings.ToLower(c.SearchText)
		if !strings.Contains(strings.ToLower(name), needle) &&
			!strings.Contains(strings.ToLower(description), needle) {
			return false
		}
	}

	return true
}
