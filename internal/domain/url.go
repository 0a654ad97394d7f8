package domain

import "strings"

// URL wraps a trimmed absolute http(s) URL. Avatar, banner and invite URLs
// all share these rules; the role is carried by the field holding the value.
type URL struct {
	value string
}

func NewURL(raw string) (URL, error) {
	if raw == "" {
		return URL{}, invalidArg("url", "url cannot be empty")
	}
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		return URL{}, invalidArg("url", "invalid url format: "+trimmed)
	}
	return URL{value: trimmed}, nil
}

func (u URL) Value() string  { return u.value }
func (u URL) String() string { return u.value }
