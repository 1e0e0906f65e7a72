package condition

import (
	"context"

	"github.com/go-ng/xatomic"
)

type AtomicT[T any] struct {
	Name  string
	Value *xatomic.Value[T]
}

var _ Getter[int64] = AtomicT[int64]{}

// Atomic reads the value with Load each time the condition is evaluated.
func Atomic[T any](name string, v *xatomic.Value[T]) AtomicT[T] {
	return AtomicT[T]{
		Name:  name,
		Value: v,
	}
}

func (g AtomicT[T]) Get(context.Context) T {
	if g.Value == nil {
		var zeroValue T
		return zeroValue
	}
	return g.Value.Load()
}

func (g AtomicT[T]) String() string {
	return g.Name
}
