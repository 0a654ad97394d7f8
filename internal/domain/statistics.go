package domain

// Statistics carries the vote and population counters of a listing.
// The generic count is read as "servers" for a Bot and "members" for a Server.
type Statistics struct {
	votes int
	count int
}

func NewStatistics(votes, count int) (Statistics, error) {
	if votes < 0 {
		return Statistics{}, invalidArg("votes", "votes cannot be negative")
	}
	if count < 0 {
		return Statistics{}, invalidArg("count", "count cannot be negative")
	}
	return Statistics{votes: votes, count: count}, nil
}

func (s Statistics) Votes() int { return s.votes }

// Count is the generic population counter.
func (s Statistics) Count() int { return s.count }

// Servers is the bot reading of Count.
func (s Statistics) Servers() int { return s.count }

// Members is the server reading of Count.
func (s Statistics) Members() int { return s.count }

func (s Statistics) WithVotes(votes int) (Statistics, error) {
	return NewStatistics(votes, s.count)
}

func (s Statistics) WithCount(count int) (Statistics, error) {
	return NewStatistics(s.votes, count)
}
