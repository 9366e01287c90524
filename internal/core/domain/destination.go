package domain

import (
	"net/url"
	"strings"
)

// PlaceholderDomain is shown whenever the final URL is missing or unparsable
const PlaceholderDomain = "example.com"

// PathSeparator prefixes every display path segment
const PathSeparator = " › "

// DestinationSpec is where the ad sends users and how its URL is displayed
type DestinationSpec struct {
	FinalURL string `yaml:"final_url"`
	Path1    string `yaml:"path1"`
	Path2    string `yaml:"path2"`
}

// Domain returns the lowercased hostname of FinalURL. Values without a scheme
// are treated as https URLs. Invalid input falls back to PlaceholderDomain.
func (d DestinationSpec) Domain() string {
	raw := strings.TrimSpace(d.FinalURL)
	if raw == "" {
		return PlaceholderDomain
	}
	if !hasScheme(raw) {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return PlaceholderDomain
	}
	return strings.ToLower(u.Hostname())
}

// hasScheme reports whether raw starts with "<scheme>://" ahead of any path, query or fragment
func hasScheme(raw string) bool {
	i := strings.Index(raw, "://")
	return i > 0 && !strings.ContainsAny(raw[:i], "/?#")
}

// DisplayPath renders the non-empty path segments, e.g. " › shoes › sale"
func (d DestinationSpec) DisplayPath() string {
	var b strings.Builder
	for _, seg := range []string{d.Path1, d.Path2} {
		if seg == "" {
			continue
		}
		b.WriteString(PathSeparator)
		b.WriteString(seg)
	}
	return b.String()
}
