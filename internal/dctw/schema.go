package dctw

// Raw records mirror the DCTW API wire shape. The same shapes are used as
// cache entries, so cached data re-runs the full validating mapping on the
// way back out.

// BotRecord is a raw bot listing as returned by GET /bots.
type BotRecord struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	AvatarURL   string   `json:"avatar_url"`
	BannerURL   string   `json:"banner_url,omitempty"`
	Description string   `json:"description"`
	Introduce   string   `json:"introduce"`
	Status      string   `json:"status"`
	Verified    bool     `json:"verified"`
	IsPartnered bool     `json:"is_partnered"`
	NSFW        bool     `json:"nsfw"`
	Votes       int      `json:"votes"`
	Servers     int      `json:"servers"`
	Tags        []string `json:"tags"`
	InviteURL   string   `json:"invite_url"`
	ServerURL   string   `json:"server_url,omitempty"`
	WebURL      string   `json:"web_url,omitempty"`
	CreatedAt   string   `json:"created_at"`
	BumpedAt    string   `json:"bumped_at"`
	Pinned      bool     `json:"pinned"`
}

// ServerRecord is a raw server listing as returned by GET /servers.
type ServerRecord struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	IconURL     string   `json:"icon_url"`
	BannerURL   string   `json:"banner_url,omitempty"`
	Description string   `json:"description"`
	Introduce   string   `json:"introduce"`
	IsPartnered bool     `json:"is_partnered"`
	NSFW        bool     `json:"nsfw"`
	Votes       int      `json:"votes"`
	Members     int      `json:"members"`
	Tags        []string `json:"tags"`
	InviteURL   string   `json:"invite_url"`
	CreatedAt   string   `json:"created_at"`
	BumpedAt    string   `json:"bumped_at"`
	Pinned      bool     `json:"pinned"`
}

// TemplateRecord is a raw template listing as returned by GET /templates.
type TemplateRecord struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Introduce   string   `json:"introduce"`
	NSFW        bool     `json:"nsfw"`
	Votes       int      `json:"votes"`
	Tags        []string `json:"tags"`
	ShareURL    string   `json:"share_url"`
	CreatedAt   string   `json:"created_at"`
	BumpedAt    string   `json:"bumped_at"`
	Pinned      bool     `json:"pinned"`
}
