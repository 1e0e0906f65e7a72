// Package condition provides predicates that can be both evaluated and
// printed, so a failed check can describe itself.
package condition

import (
	"context"
	"fmt"
)

// Condition is a zero-argument predicate. String renders the expression
// itself (not its result), Match evaluates it.
type Condition interface {
	fmt.Stringer
	Match(context.Context) bool
}

// LambdaHeader is what Source puts in front of the rendered expression.
const LambdaHeader = "() => "

// Source returns the raw rendering of the condition as a nullary lambda,
// e.g. "() => value(*main.queue).Count > 0".
func Source(cond Condition) string {
	if cond == nil {
		return LambdaHeader + "<nil>"
	}
	return LambdaHeader + cond.String()
}
