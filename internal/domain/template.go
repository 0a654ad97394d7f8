package domain

import "strings"

// TemplateLinks groups the outbound links of a template listing. The share
// URL comes through as-is from upstream and is not validated.
type TemplateLinks struct {
	ShareURL string
}

// Template is a listed server template. It has no imagery, and its
// Statistics count is always zero (the API exposes votes only).
type Template struct {
	ID          int64
	Name        string
	Description string
	Introduce   string
	NSFW        bool
	Statistics  Statistics
	Tags        []Tag
	Links       TemplateLinks
	Timestamps  Timestamps
	Pinned      bool
}

func NewTemplate(t Template) (*Template, error) {
	if strings.TrimSpace(t.Name) == "" {
		return nil, invalidArg("name", "template name cannot be empty")
	}
	return &t, nil
}

// Equal compares by identity only.
func (t *Template) Equal(other *Template) bool {
	return other != nil && t.ID == other.ID
}

func (t *Template) MatchesFilter(c FilterCriteria) bool {
	return matchesFilter(c, t.NSFW, t.Tags, t.Name, t.Description)
}

func (t *Template) HasTag(tag Tag) bool {
	for _, tg := range t.Tags {
		if tg == tag {
			return true
		}
	}
	return false
}
