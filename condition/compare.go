// compare.go implements binary comparisons between two operands.

package condition

import (
	"cmp"
	"context"
	"fmt"
)

type Operator int

const (
	OperatorUndefined = Operator(iota)
	OperatorEqual
	OperatorNotEqual
	OperatorGreater
	OperatorGreaterOrEqual
	OperatorLess
	OperatorLessOrEqual
)

func (op Operator) String() string {
	switch op {
	case OperatorEqual:
		return "=="
	case OperatorNotEqual:
		return "!="
	case OperatorGreater:
		return ">"
	case OperatorGreaterOrEqual:
		return ">="
	case OperatorLess:
		return "<"
	case OperatorLessOrEqual:
		return "<="
	default:
		return fmt.Sprintf("<unknown_operator:%d>", int(op))
	}
}

func compare[T cmp.Ordered](op Operator, left, right T) bool {
	c := cmp.Compare(left, right)
	switch op {
	case OperatorEqual:
		return c == 0
	case OperatorNotEqual:
		return c != 0
	case OperatorGreater:
		return c > 0
	case OperatorGreaterOrEqual:
		return c >= 0
	case OperatorLess:
		return c < 0
	case OperatorLessOrEqual:
		return c <= 0
	default:
		return false
	}
}

type CompareT[T cmp.Ordered] struct {
	Left     Getter[T]
	Operator Operator
	Right    Getter[T]
}

var _ Condition = CompareT[int]{}

func Compare[T cmp.Ordered](left Getter[T], op Operator, right Getter[T]) CompareT[T] {
	return CompareT[T]{
		Left:     left,
		Operator: op,
		Right:    right,
	}
}

func Equal[T cmp.Ordered](left, right Getter[T]) CompareT[T] {
	return Compare(left, OperatorEqual, right)
}

func NotEqual[T cmp.Ordered](left, right Getter[T]) CompareT[T] {
	return Compare(left, OperatorNotEqual, right)
}

func Greater[T cmp.Ordered](left, right Getter[T]) CompareT[T] {
	return Compare(left, OperatorGreater, right)
}

func GreaterOrEqual[T cmp.Ordered](left, right Getter[T]) CompareT[T] {
	return Compare(left, OperatorGreaterOrEqual, right)
}

func Less[T cmp.Ordered](left, right Getter[T]) CompareT[T] {
	return Compare(left, OperatorLess, right)
}

func LessOrEqual[T cmp.Ordered](left, right Getter[T]) CompareT[T] {
	return Compare(left, OperatorLessOrEqual, right)
}

func (c CompareT[T]) String() string {
	return fmt.Sprintf("%s %s %s", stringOf(c.Left), c.Operator, stringOf(c.Right))
}

// Match is false if any of the operands is nil.
func (c CompareT[T]) Match(ctx context.Context) bool {
	if c.Left == nil || c.Right == nil {
		return false
	}
	return compare(c.Operator, c.Left.Get(ctx), c.Right.Get(ctx))
}
