// Package safety provides host filtering, confirmation tracking, and audit
// logging for the hashnode-mcp tool surface.
package safety

import "path/filepath"

// HostFilter controls which publication hosts the tools may target, using an
// allowlist and a denylist. Glob patterns (as understood by filepath.Match)
// are supported in both lists, so "*.hashnode.dev" matches every default
// subdomain.
//
// Rules:
//   - If both lists are empty (or nil), every host is allowed.
//   - Denylist always takes priority over the allowlist.
//   - If a non-empty allowlist is present, a host must match at least one
//     allowlist pattern to be permitted (after the denylist check).
type HostFilter struct {
	allowlist []string
	denylist  []string
}

// NewHostFilter constructs a HostFilter from the provided allowlist and
// denylist pattern slices. Either or both may be nil or empty.
func NewHostFilter(allowlist, denylist []string) *HostFilter {
	return &HostFilter{
		allowlist: allowlist,
		denylist:  denylist,
	}
}

// IsAllowed reports whether host is permitted by this filter.
func (f *HostFilter) IsAllowed(host string) bool {
	// Denylist wins first.
	for _, pattern := range f.denylist {
		if matchGlob(pattern, host) {
			return false
		}
	}

	// If the allowlist is empty (or nil), everything not denied is allowed.
	if len(f.allowlist) == 0 {
		return true
	}

	// Host must match at least one allowlist pattern.
	for _, pattern := range f.allowlist {
		if matchGlob(pattern, host) {
			return true
		}
	}

	return false
}

// matchGlob returns true when name matches the given glob pattern.
// filepath.Match errors (malformed patterns) are treated as non-matching.
func matchGlob(pattern, name string) bool {
	matched, err := filepath.Match(pattern, name)
	if err != nil {
		return false
	}
	return matched
}
