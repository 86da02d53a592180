package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchPattern(t *testing.T) {
	cases := []struct {
		Name      string
		Pattern   string
		Candidate string
		Expect    bool
	}{
		{"Literal", "us/ca/oak", "us/ca/oak", true},
		{"LiteralMiss", "us/ca/oak", "us/ca/marin", false},
		{"TrailingWildcard", "us/ca/*", "us/ca/oak", true},
		{"TrailingWildcardMiss", "us/ca/*", "us/or/multnomah", false},
		{"MiddleWildcard", "us/*/oak", "us/ca/oak", true},
		{"AllWildcards", "*/*/*", "us/ca/oak", true},
		{"WildcardIsOneSegment", "us/*", "us/ca/oak", false},
		{"NoCrossSegment", "us/ca/*", "us/ca/oak/extra", false},
		{"ShortCandidate", "us/ca/*", "us/ca", false},
		{"StarNotSubstring", "us/c*/oak", "us/ca/oak", false},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t, c.Expect, matchPattern(c.Pattern, c.Candidate))
		})
	}
}

func TestMatchAnyOrderIndependent(t *testing.T) {
	candidates := []string{"us/ca/oak", "us/wa/king", "us/or/multnomah"}
	patterns := [][]string{
		{"us/ca/*", "us/wa/*"},
		{"us/wa/*", "us/ca/*"},
	}

	for _, ps := range patterns {
		matched := []string{}
		for _, c := range candidates {
			if matchAny(ps, c) {
				matched = append(matched, c)
			}
		}
		assert.Equal(t, []string{"us/ca/oak", "us/wa/king"}, matched)
	}
}
