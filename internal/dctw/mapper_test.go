package dctw

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/nyankohost/dctw/internal/domain"
)

func validBotRecord() BotRecord {
	return BotRecord{
		ID:        123,
		Name:      "Helper",
		AvatarURL: "https://cdn.example.com/a.png",
		Status:    "online",
		Votes:     10,
		Servers:   200,
		Tags:      []string{"music", "fun"},
		InviteURL: "https://discord.com/invite/abc",
		CreatedAt: "2024-01-15T10:00:00Z",
		BumpedAt:  "2024-02-01T08:30:00Z",
	}
}

func TestMapBot(t *testing.T) {
	m := NewMapper()

	bot, err := m.MapBot(validBotRecord())
	if err != nil {
		t.Fatal(err)
	}
	if bot.ID != 123 || bot.Name != "Helper" {
		t.Errorf("bot = %d %q", bot.ID, bot.Name)
	}
	if bot.Status != domain.StatusOnline {
		t.Errorf("status = %s, want online", bot.Status)
	}
	if bot.Statistics.Votes() != 10 || bot.Statistics.Servers() != 200 {
		t.Errorf("stats = %d/%d", bot.Statistics.Votes(), bot.Statistics.Servers())
	}
	want := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	if !bot.Timestamps.CreatedAt().Equal(want) {
		t.Errorf("created_at = %v, want %v", bot.Timestamps.CreatedAt(), want)
	}
}

func TestMapBotFallbacks(t *testing.T) {
	m := NewMapper()

	rec := validBotRecord()
	rec.Name = "   "
	rec.AvatarURL = ""
	rec.InviteURL = ""

	bot, err := m.MapBot(rec)
	if err != nil {
		t.Fatal(err)
	}
	if bot.Name != "Bot 123" {
		t.Errorf("blank name fallback = %q, want \"Bot 123\"", bot.Name)
	}
	if bot.Avatar.Value() != DefaultAvatarURL {
		t.Errorf("avatar fallback = %q", bot.Avatar.Value())
	}
	if bot.Links.Invite.Value() != DefaultInviteURL {
		t.Errorf("invite fallback = %q", bot.Links.Invite.Value())
	}
}

func TestMapBotDropsUnknownTags(t *testing.T) {
	m := NewMapper()

	rec := validBotRecord()
	rec.Tags = []string{"music", "spam", "gaming", "fun"}

	bot, err := m.MapBot(rec)
	if err != nil {
		t.Fatal(err)
	}
	got := make([]string, len(bot.Tags))
	for i, tag := range bot.Tags {
		got[i] = tag.Name()
	}
	if diff := cmp.Diff([]string{"music", "fun"}, got); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
}

func TestMapBotBanner(t *testing.T) {
	m := NewMapper()

	rec := validBotRecord()
	bot, err := m.MapBot(rec)
	if err != nil {
		t.Fatal(err)
	}
	if bot.Banner != nil {
		t.Error("absent banner stays nil, no placeholder")
	}

	rec.BannerURL = "https://cdn.example.com/banner.png"
	bot, err = m.MapBot(rec)
	if err != nil {
		t.Fatal(err)
	}
	if bot.Banner == nil || bot.Banner.Value() != rec.BannerURL {
		t.Error("present banner should map through")
	}

	// A malformed banner is a hard failure, unlike an absent one.
	rec.BannerURL = "not-a-url"
	if _, err := m.MapBot(rec); err == nil {
		t.Error("malformed banner must abort the record")
	}
}

func TestMapBotUnparseableTimestampFallsBackToNow(t *testing.T) {
	m := NewMapper()

	rec := validBotRecord()
	rec.CreatedAt = "last tuesday"
	rec.BumpedAt = ""

	before := time.Now().UTC()
	bot, err := m.MapBot(rec)
	if err != nil {
		t.Fatal(err)
	}
	after := time.Now().UTC()

	created := bot.Timestamps.CreatedAt()
	if created.Before(before) || created.After(after) {
		t.Errorf("created_at = %v, want within [%v, %v]", created, before, after)
	}
}

func TestMapBotsBatchFailure(t *testing.T) {
	m := NewMapper()

	bad := validBotRecord()
	bad.ID = 999
	bad.Votes = -1

	if _, err := m.MapBots([]BotRecord{validBotRecord(), bad}); err == nil {
		t.Error("one bad record must fail the whole batch")
	}
}

func TestMapServerAcceptsTypoTag(t *testing.T) {
	m := NewMapper()

	server, err := m.MapServer(ServerRecord{
		ID:        5,
		Name:      "Dev Hangout",
		IconURL:   "https://cdn.example.com/i.png",
		Tags:      []string{"programing"},
		InviteURL: "https://discord.com/invite/dev",
		CreatedAt: "2024-01-01T00:00:00Z",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(server.Tags) != 1 || server.Tags[0].Name() != "programing" {
		t.Errorf("tags = %v, the upstream typo must survive mapping", server.Tags)
	}
}

func TestMapTemplateCountIsZero(t *testing.T) {
	m := NewMapper()

	tpl, err := m.MapTemplate(TemplateRecord{
		ID:        9,
		Name:      "Starter",
		Votes:     40,
		ShareURL:  "https://discord.new/abc",
		CreatedAt: "2024-01-01T00:00:00Z",
		Pinned:    true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if tpl.Statistics.Votes() != 40 || tpl.Statistics.Count() != 0 {
		t.Errorf("stats = %d/%d, count must be fixed at zero", tpl.Statistics.Votes(), tpl.Statistics.Count())
	}
	if !tpl.Pinned {
		t.Error("pinned flag lost in mapping")
	}
}

func TestBotRecordRoundTrip(t *testing.T) {
	m := NewMapper()

	bot, err := m.MapBot(validBotRecord())
	if err != nil {
		t.Fatal(err)
	}

	// Serializing and re-mapping must land on the same entity; this is the
	// exact path cached listings take.
	again, err := m.MapBot(m.BotRecord(bot))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(validBotRecord(), m.BotRecord(again)); diff != "" {
		t.Errorf("cache round trip drifted (-want +got):\n%s", diff)
	}
}

func TestMapBotNaiveTimestamp(t *testing.T) {
	m := NewMapper()

	rec := validBotRecord()
	rec.CreatedAt = "2024-01-15T10:00:00"

	bot, err := m.MapBot(rec)
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	if !bot.Timestamps.CreatedAt().Equal(want) {
		t.Errorf("offset-less timestamp = %v, want %v read as UTC", bot.Timestamps.CreatedAt(), want)
	}
}
