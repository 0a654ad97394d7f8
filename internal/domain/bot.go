package domain

import "strings"

// BotLinks groups the outbound links of a bot listing. Only the invite is a
// validated URL; support server and website are free-form and may be empty.
type BotLinks struct {
	Invite        URL
	SupportServer string
	Website       string
}

// Bot is a listed Discord bot. Identity is the ID alone; everything else is
// descriptive state.
type Bot struct {
	ID          int64
	Name        string
	Avatar      URL
	Banner      *URL
	Description string
	Introduce   string
	Status      ContentStatus
	Verified    bool
	Partnered   bool
	NSFW        bool
	Statistics  Statistics
	Tags        []Tag
	Links       BotLinks
	Timestamps  Timestamps
	Pinned      bool
}

// NewBot validates and returns the bot. The name must be non-blank; value
// object fields are assumed to have been built through their own constructors.
func NewBot(b Bot) (*Bot, error) {
	if strings.TrimSpace(b.Name) == "" {
		return nil, invalidArg("name", "bot name cannot be empty")
	}
	return &b, nil
}

// Equal compares by identity only.
func (b *Bot) Equal(other *Bot) bool {
	return other != nil && b.ID == other.ID
}

func (b *Bot) IsOnline() bool    { return b.Status.IsOnline() }
func (b *Bot) IsAvailable() bool { return b.Status.IsAvailable() }

// MatchesFilter reports whether the bot passes the criteria. Pure; see
// matchesFilter for the gate ordering.
func (b *Bot) MatchesFilter(c FilterCriteria) bool {
	return matchesFilter(c, b.NSFW, b.Tags, b.Name, b.Description)
}

func (b *Bot) HasTag(tag Tag) bool {
	for _, t := range b.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
