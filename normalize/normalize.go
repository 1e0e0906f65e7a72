// Package normalize turns the raw rendering of a captured expression into
// a short condition string suitable for an assertion message.
package normalize

import (
	"strings"
)

var (
	// RuleClosurePrefix removes the "value(<captured>)." prefix that is
	// printed before a member of a captured variable.
	RuleClosurePrefix = MustRule(`value\([^)]*\)\.`, "")

	// RuleEmptyCallMember removes "()." left by a no-arg call followed by a member access.
	RuleEmptyCallMember = MustRule(`\(\)\.`, "")

	// RuleLambdaHeader removes the "() =>" header of a nullary lambda.
	RuleLambdaHeader = MustRule(`\(\) =>`, "")

	// RuleNot replaces the textual negation with "!".
	//
	// There is no word-boundary check: an identifier like "NotifyFlag"
	// becomes "!ifyFlag".
	RuleNot = MustRule(`Not`, "!")
)

// DefaultRules is the rule list used by Default.
var DefaultRules = Rules{
	RuleClosurePrefix,
	RuleEmptyCallMember,
	RuleLambdaHeader,
	RuleNot,
}

// Default is the normalizer used by Normalize.
var Default = New(DefaultRules...)

// Normalizer applies Rules and then trims surrounding whitespace.
//
// It holds no mutable state and is safe for concurrent use.
type Normalizer struct {
	Rules Rules
}

func New(rules ...Rule) Normalizer {
	return Normalizer{
		Rules: rules,
	}
}

func (n Normalizer) Normalize(raw string) string {
	return strings.TrimSpace(n.Rules.Apply(raw))
}

// Normalize is a shorthand for Default.Normalize.
func Normalize(raw string) string {
	return Default.Normalize(raw)
}

// Func adapts a plain function to the Interface.
type Func func(string) string

func (fn Func) Normalize(raw string) string {
	return fn(raw)
}

// Interface is anything that can normalize an expression text.
type Interface interface {
	Normalize(raw string) string
}

var (
	_ Interface = Normalizer{}
	_ Interface = Func(nil)
)
