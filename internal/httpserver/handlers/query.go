package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/nyankohost/dctw/internal/domain"
)

// parseListQuery turns the common listing query params into filter criteria
// and a sort option. Tag names that fail the given constructor are dropped,
// matching how unknown tags are treated everywhere else.
func parseListQuery(r *http.Request, newTag func(string) (domain.Tag, error)) (domain.FilterCriteria, domain.SortOption) {
	q := r.URL.Query()

	criteria := domain.FilterCriteria{}
	if raw := q.Get("tags"); raw != "" {
		var tags []domain.Tag
		for _, name := range strings.Split(raw, ",") {
			tag, err := newTag(strings.TrimSpace(name))
			if err != nil {
				continue
			}
			tags = append(tags, tag)
		}
		criteria = criteria.WithTags(tags)
	}
	if nsfw, err := strconv.ParseBool(q.Get("nsfw")); err == nil {
		criteria = criteria.WithNSFW(nsfw)
	}
	if search := q.Get("q"); search != "" {
		criteria = criteria.WithSearchText(search)
	}

	return criteria, domain.SortOptionFromString(q.Get("sort"))
}

// parseID reads the {id} route param as an int64.
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
