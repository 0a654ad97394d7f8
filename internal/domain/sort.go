package domain

import "strings"

// SortOption selects the ordering of a listing. Every key sorts descending.
// Servers only applies to bots, Members only to servers; a collection asked
// for an option it does not support returns the list unchanged.
type SortOption string

const (
	SortNewest  SortOption = "newest"
	SortVotes   SortOption = "votes"
	SortServers SortOption = "servers"
	SortMembers SortOption = "members"
	SortBumped  SortOption = "bumped"
)

// SortOptionFromString parses a sort option, falling back to newest.
func SortOptionFromString(value string) SortOption {
	switch SortOption(strings.ToLower(value)) {
	case SortVotes:
		return SortVotes
	case SortServers:
		return SortServers
	case SortMembers:
		return SortMembers
	case SortBumped:
		return SortBumped
	default:
		return SortNewest
	}
}
