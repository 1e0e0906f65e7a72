package condition

import (
	"context"
)

// IsT matches when the boolean operand is true. A nil operand never matches.
type IsT struct {
	Getter Getter[bool]
}

var _ Condition = IsT{}

func Is(getter Getter[bool]) IsT {
	return IsT{
		Getter: getter,
	}
}

func (c IsT) String() string {
	return stringOf(c.Getter)
}

func (c IsT) Match(ctx context.Context) bool {
	if c.Getter == nil {
		return false
	}
	return c.Getter.Get(ctx)
}
