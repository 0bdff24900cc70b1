package render

import "strings"

// HostName extracts the host of a story URL for display, dropping the
// scheme, the path and a leading "www.". Scheme-less input is accepted.
func HostName(rawURL string) string {
	host := rawURL
	if _, rest, ok := strings.Cut(host, "://"); ok {
		host = rest
	}
	if i := strings.IndexAny(host, "/?#"); i >= 0 {
		host = host[:i]
	}
	return strings.TrimPrefix(host, "www.")
}
