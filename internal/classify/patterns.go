// Package classify decides which observed networks belong to the user's
// organization and splits the rest into known and unknown vendor buckets.
package classify

import (
	"strings"
)

// patternSeparator delimits organization patterns in user-entered text.
const patternSeparator = ","

// PatternSet is a normalized set of organization SSID patterns: lower-cased,
// trimmed and non-empty. Order carries no meaning.
type PatternSet []string

// ParsePatterns normalizes a comma-delimited pattern string.
func ParsePatterns(text string) PatternSet {
	if text == "" {
		return nil
	}

	var set PatternSet
	seen := make(map[string]struct{})
	for _, token := range strings.Split(text, patternSeparator) {
		p := strings.ToLower(strings.TrimSpace(token))
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		set = append(set, p)
	}

	return set
}

// Matches reports whether ssid belongs to the organization. A pattern matches
// when it is contained in the SSID or the SSID is contained in it, ignoring case.
func (p PatternSet) Matches(ssid string) bool {
	if len(p) == 0 || ssid == "" {
		return false
	}

	name := strings.ToLower(ssid)
	for _, pattern := range p {
		if strings.Contains(name, pattern) || strings.Contains(pattern, name) {
			return true
		}
	}

	return false
}

// IsOrganizationNetwork reports whether ssid matches any pattern in the
// comma-delimited patterns text.
func IsOrganizationNetwork(ssid, patterns string) bool {
	if patterns == "" || ssid == "" {
		return false
	}
	return ParsePatterns(patterns).Matches(ssid)
}
