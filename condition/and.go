package condition

import (
	"context"
	"fmt"
	"strings"
)

// And matches when every item does; a nil item never matches.
type And []Condition

var _ Condition = (And)(nil)

func (s *And) Add(item Condition) *And {
	*s = append(*s, item)
	return s
}

func (s And) String() string {
	var result []string
	for _, cond := range s {
		result = append(result, stringOf(cond))
	}
	return fmt.Sprintf("(%s)", strings.Join(result, " && "))
}

func (s And) Match(ctx context.Context) bool {
	for _, item := range s {
		if item == nil || !item.Match(ctx) {
			return false
		}
	}
	return true
}
