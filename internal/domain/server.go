package domain

import "strings"

// ServerLinks groups the outbound links of a server listing.
type ServerLinks struct {
	Invite URL
}

// Server is a listed Discord server. Compared to Bot it carries an icon
// instead of an avatar and has no presence or verification state.
type Server struct {
	ID          int64
	Name        string
	Icon        URL
	Banner      *URL
	Description string
	Introduce   string
	Partnered   bool
	NSFW        bool
	Statistics  Statistics
	Tags        []Tag
	Links       ServerLinks
	Timestamps  Timestamps
	Pinned      bool
}

func NewServer(s Server) (*Server, error) {
	if strings.TrimSpace(s.Name) == "" {
		return nil, invalidArg("name", "server name cannot be empty")
	}
	return &s, nil
}

// Equal compares by identity only.
func (s *Server) Equal(other *Server) bool {
	return other != nil && s.ID == other.ID
}

func (s *Server) MatchesFilter(c FilterCriteria) bool {
	return matchesFilter(c, s.NSFW, s.Tags, s.Name, s.Description)
}

func (s *Server) HasTag(tag Tag) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
