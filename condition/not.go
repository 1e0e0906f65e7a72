package condition

import (
	"context"
	"fmt"
)

// Not negates Condition. A Not without a Condition never matches.
type Not struct {
	Condition Condition
}

var _ Condition = (*Not)(nil)

func (n Not) String() string {
	return fmt.Sprintf("Not(%s)", stringOf(n.Condition))
}

func (n Not) Match(ctx context.Context) bool {
	if n.Condition == nil {
		return false
	}
	return !n.Condition.Match(ctx)
}
