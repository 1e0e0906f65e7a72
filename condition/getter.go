// getter.go defines the operands comparisons are built from.

package condition

import (
	"context"
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// Getter yields a value when evaluated and describes where the value
// comes from when printed.
type Getter[T any] interface {
	fmt.Stringer
	Get(context.Context) T
}

type ConstT[T any] struct {
	Value T
}

var _ Getter[int] = ConstT[int]{}

func Const[T any](v T) ConstT[T] {
	return ConstT[T]{
		Value: v,
	}
}

func (g ConstT[T]) Get(context.Context) T {
	return g.Value
}

func (g ConstT[T]) String() string {
	switch v := any(g.Value).(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case fmt.Stringer:
		return v.String()
	}
	return spew.Sprintf("%v", g.Value)
}

type VariableT[T any] struct {
	Name    string
	Pointer *T
}

var _ Getter[int] = VariableT[int]{}

func Variable[T any](name string, pointer *T) VariableT[T] {
	return VariableT[T]{
		Name:    name,
		Pointer: pointer,
	}
}

func (g VariableT[T]) Get(context.Context) T {
	if g.Pointer == nil {
		var zeroValue T
		return zeroValue
	}
	return *g.Pointer
}

func (g VariableT[T]) String() string {
	return g.Name
}

// FieldT reads a field of a captured value. It prints the way expression
// printers show a closure member: "value(<owner type>).<name>".
type FieldT[T any] struct {
	Owner   any
	Name    string
	Pointer *T
}

var _ Getter[int] = FieldT[int]{}

func Field[T any](owner any, name string, pointer *T) FieldT[T] {
	return FieldT[T]{
		Owner:   owner,
		Name:    name,
		Pointer: pointer,
	}
}

func (g FieldT[T]) Get(context.Context) T {
	if g.Pointer == nil {
		var zeroValue T
		return zeroValue
	}
	return *g.Pointer
}

func (g FieldT[T]) String() string {
	return fmt.Sprintf("value(%T).%s", g.Owner, g.Name)
}

type MethodT[T any] struct {
	Receiver string
	Name     string
	Function func() T
}

var _ Getter[int] = MethodT[int]{}

// Method is a no-argument method call, printed as "<receiver>.<name>()".
func Method[T any](receiver, name string, fn func() T) MethodT[T] {
	return MethodT[T]{
		Receiver: receiver,
		Name:     name,
		Function: fn,
	}
}

// Len is a shorthand for Method(receiver, "Len", fn).
func Len(receiver string, fn func() int) MethodT[int] {
	return Method(receiver, "Len", fn)
}

func (g MethodT[T]) Get(context.Context) T {
	if g.Function == nil {
		var zeroValue T
		return zeroValue
	}
	return g.Function()
}

func (g MethodT[T]) String() string {
	if g.Receiver == "" {
		return fmt.Sprintf("%s()", g.Name)
	}
	return fmt.Sprintf("%s.%s()", g.Receiver, g.Name)
}
