package params

import (
	"net/url"
	"strings"
)

// ParseLink extracts parameter overrides from a share link. It accepts a
// full URL, a bare query string, or a query string with a leading "?".
// A malformed link yields no overrides rather than an error.
func ParseLink(link string) url.Values {
	link = strings.TrimSpace(link)
	if link == "" {
		return url.Values{}
	}

	if u, err := url.Parse(link); err == nil && u.RawQuery != "" {
		if q, err := url.ParseQuery(u.RawQuery); err == nil {
			return q
		}
	}

	q, err := url.ParseQuery(strings.TrimPrefix(link, "?"))
	if err != nil {
		return url.Values{}
	}
	return q
}

// OverridesFromArgs collects key=value pairs from leftover command-line
// arguments. Malformed arguments are skipped.
func OverridesFromArgs(args []string) url.Values {
	q := url.Values{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			continue
		}
		q.Set(key, value)
	}
	return q
}

// ApplyQuery loads one value per present key into the store without
// notification. Query values take precedence over whatever was loaded
// before, so callers apply the durable snapshot first and the query second.
func (s *Store) ApplyQuery(q url.Values) {
	overrides := make(map[string]string, len(q))
	for key := range q {
		overrides[key] = q.Get(key)
	}
	s.Load(overrides)
}

// Link returns the canonical query string for the current parameters:
// every non-empty value present, empty values absent, keys sorted. This is
// the share-link counterpart of keeping the page URL in sync with state.
func (s *Store) Link() string {
	q := url.Values{}
	for k, v := range s.Snapshot() {
		if v == "" {
			continue
		}
		q.Set(k, v)
	}
	return q.Encode()
}

// DetailQuery returns the full current snapshot as query values with the
// drill-down keys appended. detailID may be empty, in which case only
// detail-type is added.
func (s *Store) DetailQuery(detailType, detailID string) url.Values {
	q := url.Values{}
	for k, v := range s.Snapshot() {
		if v == "" {
			continue
		}
		q.Set(k, v)
	}
	q.Set(KeyDetailType, detailType)
	if detailID != "" {
		q.Set(KeyDetailID, detailID)
	}
	return q
}
