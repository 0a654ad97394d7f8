package domain

import (
	"testing"
	"time"
)

func testBotAt(t *testing.T, id int64, name string, votes, servers int, created time.Time) *Bot {
	t.Helper()
	bot := testBot(t, id, name, false)
	stats, err := NewStatistics(votes, servers)
	if err != nil {
		t.Fatal(err)
	}
	ts, err := NewTimestamps(created, time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	bot.Statistics = stats
	bot.Timestamps = ts
	return bot
}

func TestCollectionStaleness(t *testing.T) {
	t0 := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	current := t0

	coll := NewBotCollection()
	coll.now = func() time.Time { return current }

	if !coll.IsStale() {
		t.Error("a never-loaded collection must be stale")
	}

	coll.Load([]*Bot{testBot(t, 1, "A", false)})

	current = t0.Add(59 * time.Second)
	if coll.IsStale() {
		t.Error("collection should still be fresh at 59s")
	}

	current = t0.Add(61 * time.Second)
	if !coll.IsStale() {
		t.Error("collection should be stale past the 60s TTL")
	}

	coll.Clear()
	if coll.Count() != 0 || !coll.IsStale() {
		t.Error("Clear must empty the collection and reset staleness")
	}
}

func TestCollectionLoadEvent(t *testing.T) {
	coll := NewBotCollection()

	event := coll.Load([]*Bot{testBot(t, 1, "A", false), testBot(t, 2, "B", false)})
	loaded, ok := event.(BotsLoaded)
	if !ok {
		t.Fatalf("Load returned %T, want BotsLoaded", event)
	}
	if loaded.Count != 2 {
		t.Errorf("BotsLoaded.Count = %d, want 2", loaded.Count)
	}

	// An empty fetch is a valid load, not an error.
	event = coll.Load(nil)
	if event.(BotsLoaded).Count != 0 {
		t.Error("empty load should report count 0")
	}
	if coll.IsStale() {
		t.Error("empty load still refreshes the snapshot")
	}
}

func TestBotCollectionSortBy(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := testBotAt(t, 1, "A", 10, 5, base.Add(2*time.Hour))
	b := testBotAt(t, 2, "B", 30, 1, base.Add(1*time.Hour))
	c := testBotAt(t, 3, "C", 20, 9, base.Add(3*time.Hour))

	coll := NewBotCollection()
	coll.Load([]*Bot{a, b, c})

	tests := []struct {
		option SortOption
		want   []int64
	}{
		{SortNewest, []int64{3, 1, 2}},
		{SortVotes, []int64{2, 3, 1}},
		{SortServers, []int64{3, 1, 2}},
	}
	for _, tt := range tests {
		got := coll.SortBy(coll.Bots(), tt.option)
		for i, id := range tt.want {
			if got[i].ID != id {
				t.Errorf("SortBy(%s)[%d] = %d, want %d", tt.option, i, got[i].ID, id)
			}
		}
	}

	// Members only applies to servers; for bots the input comes back as is.
	unchanged := coll.SortBy([]*Bot{a, b, c}, SortMembers)
	for i, want := range []int64{1, 2, 3} {
		if unchanged[i].ID != want {
			t.Errorf("unsupported sort changed order at %d: got %d, want %d", i, unchanged[i].ID, want)
		}
	}
}

func TestBotCollectionSortStability(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := testBotAt(t, 1, "A", 10, 0, base)
	b := testBotAt(t, 2, "B", 10, 0, base)

	coll := NewBotCollection()
	sorted := coll.SortBy([]*Bot{a, b}, SortVotes)
	if sorted[0].ID != 1 || sorted[1].ID != 2 {
		t.Error("equal keys must keep their input order")
	}
}

func TestCollectionFindByID(t *testing.T) {
	coll := NewBotCollection()
	coll.Load([]*Bot{testBot(t, 7, "Lucky", false)})

	if got := coll.FindByID(7); got == nil || got.ID != 7 {
		t.Error("FindByID should return the loaded bot")
	}
	if got := coll.FindByID(999); got != nil {
		t.Error("FindByID on a missing id must return nil, not error")
	}
}

func testTemplate(t *testing.T, id int64, votes int, pinned bool) *Template {
	t.Helper()
	stats, err := NewStatistics(votes, 0)
	if err != nil {
		t.Fatal(err)
	}
	ts, err := NewTimestamps(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	tpl, err := NewTemplate(Template{
		ID:         id,
		Name:       "T",
		Statistics: stats,
		Timestamps: ts,
		Pinned:     pinned,
	})
	if err != nil {
		t.Fatal(err)
	}
	return tpl
}

func TestTemplateCollectionPinnedFirst(t *testing.T) {
	a := testTemplate(t, 1, 10, false)
	b := testTemplate(t, 2, 1, true)
	c := testTemplate(t, 3, 20, false)

	coll := NewTemplateCollection()
	coll.Load([]*Template{a, b, c})

	// Pinned wins over votes: B leads despite the lowest vote count.
	sorted := coll.SortBy(coll.Templates(), SortVotes)
	for i, want := range []int64{2, 3, 1} {
		if sorted[i].ID != want {
			t.Errorf("votes sort [%d] = %d, want %d", i, sorted[i].ID, want)
		}
	}

	// The pinned pass applies even for an option templates do not support.
	sorted = coll.SortBy([]*Template{a, b, c}, SortMembers)
	if sorted[0].ID != 2 {
		t.Error("pinned template must lead even with an unsupported sort option")
	}
}
