package domain

import (
	"sort"
	"time"
)

// DefaultCacheTTL is how long a loaded collection snapshot stays fresh.
const DefaultCacheTTL = 60 * time.Second

// snapshot is the shared staleness bookkeeping of the three collections.
// A collection is built empty for one discovery call, loaded once, queried,
// then discarded.
type snapshot struct {
	lastUpdated time.Time
	cacheTTL    time.Duration
	now         func() time.Time
}

func newSnapshot() snapshot {
	return snapshot{cacheTTL: DefaultCacheTTL, now: time.Now}
}

func (s *snapshot) stamp() { s.lastUpdated = s.now() }

func (s *snapshot) reset() { s.lastUpdated = time.Time{} }

// IsStale reports whether the snapshot was never loaded or outlived its TTL.
func (s *snapshot) IsStale() bool {
	if s.lastUpdated.IsZero() {
		return true
	}
	return s.now().Sub(s.lastUpdated) > s.cacheTTL
}

func (s *snapshot) LastUpdated() time.Time { return s.lastUpdated }

// BotCollection holds one loaded snapshot of bots in insertion order.
type BotCollection struct {
	snapshot
	bots []*Bot
}

func NewBotCollection() *BotCollection {
	return &BotCollection{snapshot: newSnapshot()}
}

func (c *BotCollection) Bots() []*Bot {
	return append([]*Bot(nil), c.bots...)
}

func (c *BotCollection) Count() int { return len(c.bots) }

// Load replaces the whole snapshot. An empty list is a valid result, not an
// error. This is the only mutator besides Clear.
func (c *BotCollection) Load(bots []*Bot) Event {
	c.bots = bots
	c.stamp()
	return BotsLoaded{Count: len(bots)}
}

// FilterBy returns the stable subsequence matching the criteria.
func (c *BotCollection) FilterBy(criteria FilterCriteria) []*Bot {
	out := make([]*Bot, 0, len(c.bots))
	for _, b := range c.bots {
		if b.MatchesFilter(criteria) {
			out = append(out, b)
		}
	}
	return out
}

// SortBy orders the given list without touching the stored snapshot.
// Unsupported options (members, for bots) return the list unchanged.
func (c *BotCollection) SortBy(bots []*Bot, option SortOption) []*Bot {
	sorted := append([]*Bot(nil), bots...)
	switch option {
	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Timestamps.CreatedAt().After(sorted[j].Timestamps.CreatedAt())
		})
	case SortVotes:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Statistics.Votes() > sorted[j].Statistics.Votes()
		})
	case SortServers:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Statistics.Servers() > sorted[j].Statistics.Servers()
		})
	case SortBumped:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Timestamps.BumpedAt().After(sorted[j].Timestamps.BumpedAt())
		})
	default:
		return bots
	}
	return sorted
}

// FindByID scans the snapshot; nil means not loaded here, not an error.
func (c *BotCollection) FindByID(id int64) *Bot {
	for _, b := range c.bots {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func (c *BotCollection) Clear() {
	c.bots = nil
	c.reset()
}

// ServerCollection holds one loaded snapshot of servers in insertion order.
type ServerCollection struct {
	snapshot
	servers []*Server
}

func NewServerCollection() *ServerCollection {
	return &ServerCollection{snapshot: newSnapshot()}
}

func (c *ServerCollection) Servers() []*Server {
	return append([]*Server(nil), c.servers...)
}

func (c *ServerCollection) Count() int { return len(c.servers) }

func (c *ServerCollection) Load(servers []*Server) Event {
	c.servers = servers
	c.stamp()
	return ServersLoaded{Count: len(servers)}
}

func (c *ServerCollection) FilterBy(criteria FilterCriteria) []*Server {
	out := make([]*Server, 0, len(c.servers))
	for _, s := range c.servers {
		if s.MatchesFilter(criteria) {
			out = append(out, s)
		}
	}
	return out
}

// SortBy orders the given list without touching the stored snapshot.
// Unsupported options (servers, for servers) return the list unchanged.
func (c *ServerCollection) SortBy(servers []*Server, option SortOption) []*Server {
	sorted := append([]*Server(nil), servers...)
	switch option {
	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Timestamps.CreatedAt().After(sorted[j].Timestamps.CreatedAt())
		})
	case SortVotes:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Statistics.Votes() > sorted[j].Statistics.Votes()
		})
	case SortMembers:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Statistics.Members() > sorted[j].Statistics.Members()
		})
	case SortBumped:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Timestamps.BumpedAt().After(sorted[j].Timestamps.BumpedAt())
		})
	default:
		return servers
	}
	return sorted
}

func (c *ServerCollection) FindByID(id int64) *Server {
	for _, s := range c.servers {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func (c *ServerCollection) Clear() {
	c.servers = nil
	c.reset()
}

// TemplateCollection holds one loaded snapshot of templates in insertion order.
type TemplateCollection struct {
	snapshot
	templates []*Template
}

func NewTemplateCollection() *TemplateCollection {
	return &TemplateCollection{snapshot: newSnapshot()}
}

func (c *TemplateCollection) Templates() []*Template {
	return append([]*Template(nil), c.templates...)
}

func (c *TemplateCollection) Count() int { return len(c.templates) }

func (c *TemplateCollection) Load(templates []*Template) Event {
	c.templates = templates
	c.stamp()
	return TemplatesLoaded{Count: len(templates)}
}

func (c *TemplateCollection) FilterBy(criteria FilterCriteria) []*Template {
	out := make([]*Template, 0, len(c.templates))
	for _, t := range c.templates {
		if t.MatchesFilter(criteria) {
			out = append(out, t)
		}
	}
	return out
}

// SortBy applies the primary key, then stable-sorts pinned templates to the
// top regardless of that key. Both passes are stable so ties keep their
// earlier relative order. The pinned pass runs even for unknown options.
func (c *TemplateCollection) SortBy(templates []*Template, option SortOption) []*Template {
	sorted := append([]*Template(nil), templates...)
	switch option {
	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Timestamps.CreatedAt().After(sorted[j].Timestamps.CreatedAt())
		})
	case SortVotes:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Statistics.Votes() > sorted[j].Statistics.Votes()
		})
	case SortBumped:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Timestamps.BumpedAt().After(sorted[j].Timestamps.BumpedAt())
		})
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Pinned && !sorted[j].Pinned
	})
	return sorted
}

func (c *TemplateCollection) FindByID(id int64) *Template {
	for _, t := range c.templates {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (c *TemplateCollection) Clear() {
	c.templates = nil
	c.reset()
}
