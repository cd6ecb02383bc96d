package paginate

import (
	"net/url"
	"strconv"

	"github.com/carmegar/blogpage/database/repository/pagination"
)

// NewFrom reads page and limit from the query string. The fallback is the
// route's own default page size; explicit limits are honoured up to the
// global maximum.
func NewFrom(u *url.URL, fallback int) pagination.Paginate {
	values := u.Query()

	if fallback < 1 || fallback > pagination.MaxLimit {
		fallback = pagination.MaxLimit
	}

	page := pagination.MinPage
	limit := fallback

	if raw := values.Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page = parsed
		}
	}

	if raw := values.Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	if page < pagination.MinPage {
		page = pagination.MinPage
	}

	if limit < 1 {
		limit = fallback
	}

	if limit > pagination.MaxLimit {
		limit = pagination.MaxLimit
	}

	return pagination.Paginate{
		Page:  page,
		Limit: limit,
	}
}
