package condition

import (
	"context"
	"fmt"
)

// Function is an opaque predicate; it cannot describe its own body.
type Function func(context.Context) bool

var _ Condition = (Function)(nil)

func (fn Function) String() string {
	return fmt.Sprintf("<custom_function:%p>", fn)
}

func (fn Function) Match(ctx context.Context) bool {
	return fn(ctx)
}

// FuncT is a predicate paired with the source text it was written from.
type FuncT struct {
	Source   string
	Function func() bool
}

var _ Condition = FuncT{}

// Func pairs a closure with its own source text, for expressions the
// node types of this package cannot express:
//
//	condition.Func("len(queue) < cap(queue)", func() bool { return len(queue) < cap(queue) })
func Func(source string, fn func() bool) FuncT {
	return FuncT{
		Source:   source,
		Function: fn,
	}
}

func (f FuncT) String() string {
	return f.Source
}

func (f FuncT) Match(context.Context) bool {
	if f.Function == nil {
		return false
	}
	return f.Function()
}
