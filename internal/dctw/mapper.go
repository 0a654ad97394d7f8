package dctw

import (
	"fmt"
	"strings"
	"time"

	"github.com/nyankohost/dctw/internal/domain"
)

const (
	// DefaultAvatarURL stands in for listings without an avatar or icon.
	DefaultAvatarURL = "https://cdn.discordapp.com/embed/avatars/0.png"
	// DefaultInviteURL stands in for listings without an invite link.
	DefaultInviteURL = "https://discord.com/oauth2/authorize?client_id=0"
)

// Mapper converts raw records into validated domain entities. The fallback
// policy is uniform across entity types: blank name becomes "{Type} {id}",
// blank avatar/icon becomes the placeholder, blank invite becomes the
// fallback invite, unknown tags are dropped, unparseable timestamps become
// now. Banner is genuinely optional and gets no placeholder. A record that
// still fails validation after the fallbacks aborts the whole batch.
type Mapper struct{}

func NewMapper() *Mapper {
	return &Mapper{}
}

// MapBots maps a full fetch. One bad record fails the batch.
func (m *Mapper) MapBots(records []BotRecord) ([]*domain.Bot, error) {
	bots := make([]*domain.Bot, 0, len(records))
	for _, rec := range records {
		bot, err := m.MapBot(rec)
		if err != nil {
			return nil, err
		}
		bots = append(bots, bot)
	}
	return bots, nil
}

func (m *Mapper) MapBot(rec BotRecord) (*domain.Bot, error) {
	name := strings.TrimSpace(rec.Name)
	if name == "" {
		name = fmt.Sprintf("Bot %d", rec.ID)
	}

	avatar, err := m.imageOrDefault(rec.AvatarURL)
	if err != nil {
		return nil, fmt.Errorf("bot %d: avatar: %w", rec.ID, err)
	}
	invite, err := m.inviteOrDefault(rec.InviteURL)
	if err != nil {
		return nil, fmt.Errorf("bot %d: invite: %w", rec.ID, err)
	}
	banner, err := m.optionalBanner(rec.BannerURL)
	if err != nil {
		return nil, fmt.Errorf("bot %d: banner: %w", rec.ID, err)
	}
	stats, err := domain.NewStatistics(rec.Votes, rec.Servers)
	if err != nil {
		return nil, fmt.Errorf("bot %d: statistics: %w", rec.ID, err)
	}
	timestamps, err := domain.NewTimestamps(m.parseTime(rec.CreatedAt), m.parseTime(rec.BumpedAt))
	if err != nil {
		return nil, fmt.Errorf("bot %d: timestamps: %w", rec.ID, err)
	}

	return domain.NewBot(domain.Bot{
		ID:          rec.ID,
		Name:        name,
		Avatar:      avatar,
		Banner:      banner,
		Description: rec.Description,
		Introduce:   rec.Introduce,
		Status:      domain.StatusFromString(rec.Status),
		Verified:    rec.Verified,
		Partnered:   rec.IsPartnered,
		NSFW:        rec.NSFW,
		Statistics:  stats,
		Tags:        m.mapTags(rec.Tags, domain.NewBotTag),
		Links: domain.BotLinks{
			Invite:        invite,
			SupportServer: rec.ServerURL,
			Website:       rec.WebURL,
		},
		Timestamps: timestamps,
		Pinned:     rec.Pinned,
	})
}

// BotRecord serializes a bot back into the wire shape for caching.
func (m *Mapper) BotRecord(b *domain.Bot) BotRecord {
	return BotRecord{
		ID:          b.ID,
		Name:        b.Name,
		AvatarURL:   b.Avatar.Value(),
		BannerURL:   m.bannerValue(b.Banner),
		Description: b.Description,
		Introduce:   b.Introduce,
		Status:      string(b.Status),
		Verified:    b.Verified,
		IsPartnered: b.Partnered,
		NSFW:        b.NSFW,
		Votes:       b.Statistics.Votes(),
		Servers:     b.Statistics.Servers(),
		Tags:        m.tagNames(b.Tags),
		InviteURL:   b.Links.Invite.Value(),
		ServerURL:   b.Links.SupportServer,
		WebURL:      b.Links.Website,
		CreatedAt:   b.Timestamps.CreatedAt().Format(time.RFC3339),
		BumpedAt:    b.Timestamps.BumpedAt().Format(time.RFC3339),
		Pinned:      b.Pinned,
	}
}

// MapServers maps a full fetch. One bad record fails the batch.
func (m *Mapper) MapServers(records []ServerRecord) ([]*domain.Server, error) {
	servers := make([]*domain.Server, 0, len(records))
	for _, rec := range records {
		server, err := m.MapServer(rec)
		if err != nil {
			return nil, err
		}
		servers = append(servers, server)
	}
	return servers, nil
}

func (m *Mapper) MapServer(rec ServerRecord) (*domain.Server, error) {
	name := strings.TrimSpace(rec.Name)
	if name == "" {
		name = fmt.Sprintf("Server %d", rec.ID)
	}

	icon, err := m.imageOrDefault(rec.IconURL)
	if err != nil {
		return nil, fmt.Errorf("server %d: icon: %w", rec.ID, err)
	}
	invite, err := m.inviteOrDefault(rec.InviteURL)
	if err != nil {
		return nil, fmt.Errorf("server %d: invite: %w", rec.ID, err)
	}
	banner, err := m.optionalBanner(rec.BannerURL)
	if err != nil {
		return nil, fmt.Errorf("server %d: banner: %w", rec.ID, err)
	}
	stats, err := domain.NewStatistics(rec.Votes, rec.Members)
	if err != nil {
		return nil, fmt.Errorf("server %d: statistics: %w", rec.ID, err)
	}
	timestamps, err := domain.NewTimestamps(m.parseTime(rec.CreatedAt), m.parseTime(rec.BumpedAt))
	if err != nil {
		return nil, fmt.Errorf("server %d: timestamps: %w", rec.ID, err)
	}

	return domain.NewServer(domain.Server{
		ID:          rec.ID,
		Name:        name,
		Icon:        icon,
		Banner:      banner,
		Description: rec.Description,
		Introduce:   rec.Introduce,
		Partnered:   rec.IsPartnered,
		NSFW:        rec.NSFW,
		Statistics:  stats,
		Tags:        m.mapTags(rec.Tags, domain.NewServerTag),
		Links:       domain.ServerLinks{Invite: invite},
		Timestamps:  timestamps,
		Pinned:      rec.Pinned,
	})
}

// ServerRecord serializes a server back into the wire shape for caching.
func (m *Mapper) ServerRecord(s *domain.Server) ServerRecord {
	return ServerRecord{
		ID:          s.ID,
		Name:        s.Name,
		IconURL:     s.Icon.Value(),
		BannerURL:   m.bannerValue(s.Banner),
		Description: s.Description,
		Introduce:   s.Introduce,
		IsPartnered: s.Partnered,
		NSFW:        s.NSFW,
		Votes:       s.Statistics.Votes(),
		Members:     s.Statistics.Members(),
		Tags:        m.tagNames(s.Tags),
		InviteURL:   s.Links.Invite.Value(),
		CreatedAt:   s.Timestamps.CreatedAt().Format(time.RFC3339),
		BumpedAt:    s.Timestamps.BumpedAt().Format(time.RFC3339),
		Pinned:      s.Pinned,
	}
}

// MapTemplates maps a full fetch. One bad record fails the batch.
func (m *Mapper) MapTemplates(records []TemplateRecord) ([]*domain.Template, error) {
	templates := make([]*domain.Template, 0, len(records))
	for _, rec := range records {
		template, err := m.MapTemplate(rec)
		if err != nil {
			return nil, err
		}
		templates = append(templates, template)
	}
	return templates, nil
}

func (m *Mapper) MapTemplate(rec TemplateRecord) (*domain.Template, error) {
	name := strings.TrimSpace(rec.Name)
	if name == "" {
		name = fmt.Sprintf("Template %d", rec.ID)
	}

	// Templates have no population counter upstream; count is fixed at zero.
	stats, err := domain.NewStatistics(rec.Votes, 0)
	if err != nil {
		return nil, fmt.Errorf("template %d: statistics: %w", rec.ID, err)
	}
	timestamps, err := domain.NewTimestamps(m.parseTime(rec.CreatedAt), m.parseTime(rec.BumpedAt))
	if err != nil {
		return nil, fmt.Errorf("template %d: timestamps: %w", rec.ID, err)
	}

	return domain.NewTemplate(domain.Template{
		ID:          rec.ID,
		Name:        name,
		Description: rec.Description,
		Introduce:   rec.Introduce,
		NSFW:        rec.NSFW,
		Statistics:  stats,
		Tags:        m.mapTags(rec.Tags, domain.NewTemplateTag),
		Links:       domain.TemplateLinks{ShareURL: rec.ShareURL},
		Timestamps:  timestamps,
		Pinned:      rec.Pinned,
	})
}

// TemplateRecord serializes a template back into the wire shape for caching.
func (m *Mapper) TemplateRecord(t *domain.Template) TemplateRecord {
	return TemplateRecord{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Introduce:   t.Introduce,
		NSFW:        t.NSFW,
		Votes:       t.Statistics.Votes(),
		Tags:        m.tagNames(t.Tags),
		ShareURL:    t.Links.ShareURL,
		CreatedAt:   t.Timestamps.CreatedAt().Format(time.RFC3339),
		BumpedAt:    t.Timestamps.BumpedAt().Format(time.RFC3339),
		Pinned:      t.Pinned,
	}
}

// mapTags keeps whitelist members and silently drops the rest.
func (m *Mapper) mapTags(names []string, build func(string) (domain.Tag, error)) []domain.Tag {
	tags := make([]domain.Tag, 0, len(names))
	for _, name := range names {
		if tag, err := build(name); err == nil {
			tags = append(tags, tag)
		}
	}
	return tags
}

func (m *Mapper) tagNames(tags []domain.Tag) []string {
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.Name()
	}
	return names
}

func (m *Mapper) imageOrDefault(raw string) (domain.URL, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		value = DefaultAvatarURL
	}
	return domain.NewURL(value)
}

func (m *Mapper) inviteOrDefault(raw string) (domain.URL, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		value = DefaultInviteURL
	}
	return domain.NewURL(value)
}

func (m *Mapper) optionalBanner(raw string) (*domain.URL, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}
	banner, err := domain.NewURL(value)
	if err != nil {
		return nil, err
	}
	return &banner, nil
}

// parseTime accepts RFC 3339 (Z suffix included) and the offset-less variant
// upstream sometimes emits, falling back to now for anything unparseable.
func (m *Mapper) parseTime(value string) time.Time {
	if value == "" {
		return time.Now().UTC()
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02T15:04:05", value); err == nil {
		return t.UTC()
	}
	return time.Now().UTC()
}

func (m *Mapper) bannerValue(banner *domain.URL) string {
	if banner == nil {
		return ""
	}
	return banner.Value()
}
