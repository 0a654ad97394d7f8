package domain

// Event is a typed record of an aggregate mutation, returned directly from
// the mutator that produced it. Mutators that turn out to be no-ops return
// nil instead.
type Event interface {
	EventName() string
}

type BotsLoaded struct{ Count int }

func (BotsLoaded) EventName() string { return "discovery.bots_loaded" }

type ServersLoaded struct{ Count int }

func (ServersLoaded) EventName() string { return "discovery.servers_loaded" }

type TemplatesLoaded struct{ Count int }

func (TemplatesLoaded) EventName() string { return "discovery.templates_loaded" }

type ThemeChanged struct {
	Old Theme
	New Theme
}

func (ThemeChanged) EventName() string { return "preferences.theme_changed" }

type APIKeyUpdated struct{}

func (APIKeyUpdated) EventName() string { return "preferences.api_key_updated" }

type NSFWFilterToggled struct{ Enabled bool }

func (NSFWFilterToggled) EventName() string { return "preferences.nsfw_toggled" }

type UpdateCheckChanged struct{ Mode UpdateCheck }

func (UpdateCheckChanged) EventName() string { return "preferences.update_check_changed" }
