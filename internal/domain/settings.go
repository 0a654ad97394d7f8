package domain

import "strings"

// Theme is the UI color scheme preference.
type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

// ThemeFromString parses a theme, falling back to system.
func ThemeFromString(value string) Theme {
	switch Theme(strings.ToLower(value)) {
	case ThemeLight:
		return ThemeLight
	case ThemeDark:
		return ThemeDark
	default:
		return ThemeSystem
	}
}

// UpdateCheck is how the app surfaces new releases.
type UpdateCheck string

const (
	UpdateCheckPopup  UpdateCheck = "popup"
	UpdateCheckNotify UpdateCheck = "notify"
	UpdateCheckNone   UpdateCheck = "none"
)

// UpdateCheckFromString parses an update-check mode, falling back to popup.
func UpdateCheckFromString(value string) UpdateCheck {
	switch UpdateCheck(strings.ToLower(value)) {
	case UpdateCheckNotify:
		return UpdateCheckNotify
	case UpdateCheckNone:
		return UpdateCheckNone
	default:
		return UpdateCheckPopup
	}
}

func (u UpdateCheck) IsEnabled() bool { return u != UpdateCheckNone }

// APIKey wraps the optional DCTW API key. String() masks the secret so it is
// safe to log or display.
type APIKey struct {
	key string
}

func NewAPIKey(key string) APIKey {
	return APIKey{key: strings.TrimSpace(key)}
}

func (k APIKey) Value() string { return k.key }

func (k APIKey) IsSet() bool { return k.key != "" }

func (k APIKey) String() string {
	if !k.IsSet() {
		return ""
	}
	if len(k.key) > 8 {
		return k.key[:4] + "..." + k.key[len(k.key)-4:]
	}
	return "****"
}

// NSFWFilter is the show-NSFW-content toggle.
type NSFWFilter bool

func (f NSFWFilter) Enabled() bool       { return bool(f) }
func (f NSFWFilter) Toggle() NSFWFilter  { return !f }
func (f NSFWFilter) Enable() NSFWFilter  { return true }
func (f NSFWFilter) Disable() NSFWFilter { return false }
