package domain

import (
	"testing"
	"time"
)

func mustBotTag(t *testing.T, name string) Tag {
	t.Helper()
	tag, err := NewBotTag(name)
	if err != nil {
		t.Fatalf("NewBotTag(%q): %v", name, err)
	}
	return tag
}

func testBot(t *testing.T, id int64, name string, nsfw bool, tagNames ...string) *Bot {
	t.Helper()
	avatar, err := NewURL("https://cdn.example.com/a.png")
	if err != nil {
		t.Fatal(err)
	}
	invite, err := NewURL("https://discord.com/invite/x")
	if err != nil {
		t.Fatal(err)
	}
	stats, err := NewStatistics(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	ts, err := NewTimestamps(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	tags := make([]Tag, 0, len(tagNames))
	for _, n := range tagNames {
		tags = append(tags, mustBotTag(t, n))
	}
	bot, err := NewBot(Bot{
		ID:          id,
		Name:        name,
		Avatar:      avatar,
		Description: "a helpful assistant",
		NSFW:        nsfw,
		Statistics:  stats,
		Tags:        tags,
		Links:       BotLinks{Invite: invite},
		Timestamps:  ts,
	})
	if err != nil {
		t.Fatal(err)
	}
	return bot
}

func TestMatchesFilterNSFWGate(t *testing.T) {
	nsfwBot := testBot(t, 1, "Lewd", true, "nsfw", "fun")

	// The gate fires before tag matching: even an explicit nsfw tag filter
	// cannot surface NSFW content while the toggle is off.
	criteria := FilterCriteria{}.WithTags([]Tag{mustBotTag(t, "nsfw")})
	if nsfwBot.MatchesFilter(criteria) {
		t.Error("nsfw bot matched with nsfw disabled")
	}
	if !nsfwBot.MatchesFilter(criteria.WithNSFW(true)) {
		t.Error("nsfw bot should match once nsfw is enabled")
	}
}

func TestMatchesFilterTags(t *testing.T) {
	bot := testBot(t, 1, "Helper", false, "music", "fun")

	overlap := FilterCriteria{}.WithTags([]Tag{mustBotTag(t, "fun"), mustBotTag(t, "utility")})
	if !bot.MatchesFilter(overlap) {
		t.Error("any tag overlap should match")
	}

	disjoint := FilterCriteria{}.WithTags([]Tag{mustBotTag(t, "utility"), mustBotTag(t, "automation")})
	if bot.MatchesFilter(disjoint) {
		t.Error("no tag overlap should not match")
	}

	if !bot.MatchesFilter(FilterCriteria{}) {
		t.Error("empty criteria should match a safe bot")
	}
}

func TestMatchesFilterSearch(t *testing.T) {
	bot := testBot(t, 1, "MusicMaster", false, "music")

	tests := []struct {
		name   string
		search string
		want   bool
	}{
		{name: "name substring", search: "master", want: true},
		{name: "case insensitive", search: "MUSIC", want: true},
		{name: "description substring", search: "helpful", want: true},
		{name: "no match", search: "trivia", want: false},
		{name: "blank search is no filter", search: "   ", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bot.MatchesFilter(FilterCriteria{}.WithSearchText(tt.search))
			if got != tt.want {
				t.Errorf("search %q = %v, want %v", tt.search, got, tt.want)
			}
		})
	}
}

func TestMatchesFilterIsPure(t *testing.T) {
	bot := testBot(t, 1, "Helper", false, "fun")
	criteria := FilterCriteria{}.WithTags([]Tag{mustBotTag(t, "fun")}).WithSearchText("help")

	first := bot.MatchesFilter(criteria)
	second := bot.MatchesFilter(criteria)
	if first != second {
		t.Error("MatchesFilter must be idempotent")
	}
}

func TestFilterCriteriaBuilders(t *testing.T) {
	base := FilterCriteria{}
	withTags := base.WithTags([]Tag{mustBotTag(t, "fun")})

	if base.HasTagFilter() {
		t.Error("builder mutated the original criteria")
	}
	if !withTags.HasTagFilter() {
		t.Error("WithTags copy should carry the tag filter")
	}
	if base.HasSearchFilter() || !base.WithSearchText("x").HasSearchFilter() {
		t.Error("HasSearchFilter should reflect non-blank search text only")
	}
}
