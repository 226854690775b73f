package share

import (
	"net/url"
	"strings"
)

const (
	// DefaultRoute is the path the shared view is served from.
	DefaultRoute = "/shared"
	// DefaultParam is the query parameter carrying the token.
	DefaultParam = "data"
)

// Link builds share URLs against a viewer base URL.
type Link struct {
	BaseURL string
	Route   string
	Param   string
}

func (l Link) route() string {
	route := strings.TrimSpace(l.Route)
	if route == "" {
		route = DefaultRoute
	}
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	return route
}

func (l Link) param() string {
	if p := strings.TrimSpace(l.Param); p != "" {
		return p
	}
	return DefaultParam
}

// URL returns the shared view URL for token. Tokens only use URL-safe
// symbols and are appended without escaping.
func (l Link) URL(token string) string {
	base := strings.TrimRight(strings.TrimSpace(l.BaseURL), "/")
	return base + l.route() + "?" + l.param() + "=" + token
}

// TokenFrom accepts either a bare token or a full share URL and returns
// the token. An empty string is returned when a URL has no token.
func (l Link) TokenFrom(input string) string {
	input = strings.TrimSpace(input)
	if !strings.Contains(input, "?") && !strings.Contains(input, "://") {
		return input
	}
	u, err := url.Parse(input)
	if err != nil {
		return ""
	}
	return tokenFromQuery(u.RawQuery, l.param())
}

// tokenFromQuery reads the token without form-decoding so '+' symbols
// survive. Spaces from earlier decoding are handled by the decompressor.
func tokenFromQuery(rawQuery, param string) string {
	for _, pair := range strings.Split(rawQuery, "&") {
		key, value, _ := strings.Cut(pair, "=")
		if key != param {
			continue
		}
		if unescaped, err := url.PathUnescape(value); err == nil {
			return unescaped
		}
		return value
	}
	return ""
}

// TokenFromQuery extracts the token for param from a raw query string.
func TokenFromQuery(rawQuery, param string) string {
	if strings.TrimSpace(param) == "" {
		param = DefaultParam
	}
	return tokenFromQuery(rawQuery, param)
}
