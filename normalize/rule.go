// rule.go defines a single rewrite rule and an ordered list of them.

package normalize

import (
	"fmt"
	"strings"

	"github.com/grafana/regexp"
)

// Rule replaces every match of Pattern with Replacement.
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// MustRule compiles the pattern and panics if it is invalid.
func MustRule(pattern, replacement string) Rule {
	return Rule{
		Pattern:     regexp.MustCompile(pattern),
		Replacement: replacement,
	}
}

func (r Rule) Apply(s string) string {
	if r.Pattern == nil {
		return s
	}
	return r.Pattern.ReplaceAllLiteralString(s, r.Replacement)
}

func (r Rule) String() string {
	if r.Pattern == nil {
		return fmt.Sprintf("<nil> -> %q", r.Replacement)
	}
	return fmt.Sprintf("%q -> %q", r.Pattern.String(), r.Replacement)
}

// Rules are applied in slice order; every rule sees the output of the previous one.
type Rules []Rule

func (s Rules) Apply(in string) string {
	for _, rule := range s {
		in = rule.Apply(in)
	}
	return in
}

func (s Rules) String() string {
	var result []string
	for idx, rule := range s {
		result = append(result, fmt.Sprintf("%d: %s", idx+1, rule))
	}
	return strings.Join(result, "\n")
}
