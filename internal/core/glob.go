package core

import (
	"strings"
)

// matchPattern reports whether a "source/layer/name" path matches a glob
// pattern. Matching is segment-wise: both sides split on "/", a "*" segment
// matches exactly one candidate segment, any other segment matches literally.
// Wildcards never cross segment boundaries, so segment counts must agree.
func matchPattern(pattern, candidate string) bool {
	ps := strings.Split(pattern, "/")
	cs := strings.Split(candidate, "/")
	if len(ps) != len(cs) {
		return false
	}
	for i, p := range ps {
		if p == "*" {
			continue
		}
		if p != cs[i] {
			return false
		}
	}
	return true
}

// matchAny reports whether the path matches any of the given patterns.
func matchAny(patterns []string, candidate string) bool {
	for _, p := range patterns {
		if matchPattern(p, candidate) {
			return true
		}
	}
	return false
}
