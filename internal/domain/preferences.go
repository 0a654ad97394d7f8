package domain

// ConfigVersion stamps persisted preference records.
const ConfigVersion = 5

// PreferencesRecord is the flat persisted shape of UserPreferences. Cached
// and stored data round-trips through FromPreferencesRecord so defaults are
// re-applied for any key a stored document is missing.
type PreferencesRecord struct {
	ConfigVersion int    `json:"config_version"`
	Theme         string `json:"theme"`
	APIKey        string `json:"apikey"`
	NSFW          bool   `json:"nsfw"`
	UpdateCheck   string `json:"app_update_check"`
	HomeIndex     int    `json:"home_index"`
}

// UserPreferences is the single mutable settings aggregate of a session.
// Mutators return a typed Event describing what changed, or nil when the
// mutation was a no-op. It is not safe for concurrent mutation; a single
// active editor is assumed.
type UserPreferences struct {
	theme       Theme
	apiKey      APIKey
	nsfw        NSFWFilter
	updateCheck UpdateCheck
	homeIndex   int
}

// NewUserPreferences returns the defaults: system theme, no API key, NSFW
// hidden, popup update checks, home tab 0.
func NewUserPreferences() *UserPreferences {
	return &UserPreferences{
		theme:       ThemeSystem,
		updateCheck: UpdateCheckPopup,
	}
}

func (p *UserPreferences) Theme() Theme             { return p.theme }
func (p *UserPreferences) APIKey() APIKey           { return p.apiKey }
func (p *UserPreferences) NSFW() NSFWFilter         { return p.nsfw }
func (p *UserPreferences) UpdateCheck() UpdateCheck { return p.updateCheck }
func (p *UserPreferences) HomeIndex() int           { return p.homeIndex }

// ChangeTheme is a no-op (nil event) when the theme is unchanged.
func (p *UserPreferences) ChangeTheme(theme Theme) Event {
	if p.theme == theme {
		return nil
	}
	old := p.theme
	p.theme = theme
	return ThemeChanged{Old: old, New: theme}
}

func (p *UserPreferences) UpdateAPIKey(key APIKey) Event {
	p.apiKey = key
	return APIKeyUpdated{}
}

func (p *UserPreferences) ToggleNSFW() Event {
	p.nsfw = p.nsfw.Toggle()
	return NSFWFilterToggled{Enabled: p.nsfw.Enabled()}
}

// SetNSFW is a no-op (nil event) when the value is unchanged.
func (p *UserPreferences) SetNSFW(enabled bool) Event {
	if p.nsfw.Enabled() == enabled {
		return nil
	}
	p.nsfw = NSFWFilter(enabled)
	return NSFWFilterToggled{Enabled: enabled}
}

func (p *UserPreferences) ChangeUpdateCheck(mode UpdateCheck) Event {
	if p.updateCheck == mode {
		return nil
	}
	p.updateCheck = mode
	return UpdateCheckChanged{Mode: mode}
}

// SetHomeIndex silently ignores anything outside 0..2 (bots, servers,
// templates). No clamp, no error.
func (p *UserPreferences) SetHomeIndex(index int) {
	if index < 0 || index > 2 {
		return
	}
	p.homeIndex = index
}

func (p *UserPreferences) ToRecord() PreferencesRecord {
	return PreferencesRecord{
		ConfigVersion: ConfigVersion,
		Theme:         string(p.theme),
		APIKey:        p.apiKey.Value(),
		NSFW:          p.nsfw.Enabled(),
		UpdateCheck:   string(p.updateCheck),
		HomeIndex:     p.homeIndex,
	}
}

// FromPreferencesRecord rebuilds the aggregate, applying defaults for every
// missing or unparseable field.
func FromPreferencesRecord(rec PreferencesRecord) *UserPreferences {
	return &UserPreferences{
		theme:       ThemeFromString(rec.Theme),
		apiKey:      NewAPIKey(rec.APIKey),
		nsfw:        NSFWFilter(rec.NSFW),
		updateCheck: UpdateCheckFromString(rec.UpdateCheck),
		homeIndex:   rec.HomeIndex,
	}
}
