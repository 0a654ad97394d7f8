package domain

import "strings"

// Tag is a lowercase category label validated against a per-kind vocabulary.
// Tags compare equal by name.
type Tag struct {
	name string
}

// Vocabularies mirror the DCTW listing categories. Anything outside them is
// rejected at construction; upstream records carrying unknown tags drop them
// during mapping instead.
var (
	botTagVocabulary = vocabulary(
		"music", "minigames", "fun", "utility", "management",
		"customizable", "automation", "roleplay", "nsfw",
	)

	// "programing" is a long-standing upstream typo that real records use.
	serverTagVocabulary = vocabulary(
		"gaming", "community", "anime", "art", "hangout",
		"programming", "programing", "acting", "nsfw", "roleplay", "politics",
	)

	templateTagVocabulary = vocabulary(
		"community", "gaming", "anime", "art", "nsfw",
	)
)

func vocabulary(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

func newTag(name string, valid map[string]struct{}, kind string) (Tag, error) {
	if name == "" {
		return Tag{}, invalidArg("name", "tag name cannot be empty")
	}
	lowered := strings.ToLower(name)
	if len(valid) > 0 {
		if _, ok := valid[lowered]; !ok {
			return Tag{}, invalidArg("name", "unknown "+kind+" tag: "+lowered)
		}
	}
	return Tag{name: lowered}, nil
}

// NewBotTag builds a bot category tag.
func NewBotTag(name string) (Tag, error) {
	return newTag(name, botTagVocabulary, "bot")
}

// NewServerTag builds a server category tag.
func NewServerTag(name string) (Tag, error) {
	return newTag(name, serverTagVocabulary, "server")
}

// NewTemplateTag builds a template category tag.
func NewTemplateTag(name string) (Tag, error) {
	return newTag(name, templateTagVocabulary, "template")
}

func (t Tag) Name() string   { return t.name }
func (t Tag) String() string { return t.name }
