package domain

import "strings"

// ContentStatus is the presence of a listed bot.
type ContentStatus string

const (
	StatusOnline  ContentStatus = "online"
	StatusIdle    ContentStatus = "idle"
	StatusDND     ContentStatus = "dnd"
	StatusOffline ContentStatus = "offline"
	StatusUnknown ContentStatus = "unknown"
)

// StatusFromString parses a status string, falling back to unknown.
func StatusFromString(value string) ContentStatus {
	switch ContentStatus(strings.ToLower(value)) {
	case StatusOnline:
		return StatusOnline
	case StatusIdle:
		return StatusIdle
	case StatusDND:
		return StatusDND
	case StatusOffline:
		return StatusOffline
	default:
		return StatusUnknown
	}
}

func (s ContentStatus) IsOnline() bool { return s == StatusOnline }

func (s ContentStatus) IsAvailable() bool {
	return s == StatusOnline || s == StatusIdle
}
