package harness

import (
	"fmt"
	"regexp"
	"strings"
)

// Filter decides whether a test case with the given name should run.
type Filter func(name string) bool

// RegexFilters is the -run/-skip pair of pattern lists a driver collects
// from its command line.
type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

// AsFilter reports whether a case name survives both lists: it must match at
// least one MustMatch pattern, when any are given, and no MustNotMatch
// pattern.
func (r RegexFilters) AsFilter(name string) bool {
	if r.MustMatch.IsDefined() && !r.MustMatch.AnyMatch(name) {
		return false
	}
	return !r.MustNotMatch.AnyMatch(name)
}

// RegexList accumulates regex patterns. It implements flag.Value, so the
// same flag can be given more than once.
type RegexList struct {
	patterns []*regexp.Regexp
}

func (r *RegexList) Set(value string) error {
	rx, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	r.patterns = append(r.patterns, rx)
	return nil
}

func (r RegexList) String() string {
	var quoted []string
	for _, p := range r.patterns {
		quoted = append(quoted, `"`+p.String()+`"`)
	}
	return strings.Join(quoted, " or ")
}

func (r RegexList) IsDefined() bool { return len(r.patterns) > 0 }

func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}
