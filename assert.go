// Package guard checks conditions at runtime and, when one does not hold,
// reports it with a message derived from the condition itself:
//
//	c := &queue{}
//	err := guard.Check(ctx, condition.Greater[int](
//		condition.Field(c, "Count", &c.Count),
//		condition.Const(0),
//	))
//	// err.Error() == "'Count > 0' is not met."
package guard

import (
	"context"
	"fmt"
	"reflect"

	"github.com/xaionaro-go/guard/condition"
	"github.com/xaionaro-go/guard/logger"
)

// FormatMessage builds the failure message for an already normalized condition text.
func FormatMessage(normalizedCondition string) string {
	return fmt.Sprintf("'%s' is not met.", normalizedCondition)
}

// Describe returns the message a failure of the condition would carry.
// It does not evaluate the condition.
func Describe(cond condition.Condition, opts ...Option) string {
	cfg := Options(opts).config()
	return FormatMessage(cfg.Normalizer.Normalize(condition.Source(cond)))
}

// Check evaluates the condition once. It returns nil if the condition holds
// and ErrAssertionFailed otherwise.
func Check(
	ctx context.Context,
	cond condition.Condition,
	opts ...Option,
) error {
	return CheckAs[ErrAssertionFailed](ctx, cond, opts...)
}

// CheckAs is the same as Check, but a failure is reported as an E built by
// calling FromMessage on the zero value of E.
//
// If FromMessage returns an error or a nil failure, ErrConstruction is
// returned instead; a panic inside FromMessage is not recovered.
func CheckAs[E Kind[E]](
	ctx context.Context,
	cond condition.Condition,
	opts ...Option,
) error {
	if cond == nil {
		return ErrNilCondition{}
	}
	if cond.Match(ctx) {
		return nil
	}

	message := Describe(cond, opts...)
	logger.Tracef(ctx, "condition not met: %s", message)

	var kind E
	failure, err := kind.FromMessage(message)
	if err == nil && isNil(failure) {
		err = ErrNilFailure{}
	}
	if err != nil {
		return ErrConstruction{
			Kind: fmt.Sprintf("%T", kind),
			Err:  err,
		}
	}
	return failure
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Assert panics with the error Check returns, if any.
func Assert(
	ctx context.Context,
	cond condition.Condition,
	opts ...Option,
) {
	if err := Check(ctx, cond, opts...); err != nil {
		panic(err)
	}
}

// AssertAs panics with the error CheckAs returns, if any.
func AssertAs[E Kind[E]](
	ctx context.Context,
	cond condition.Condition,
	opts ...Option,
) {
	if err := CheckAs[E](ctx, cond, opts...); err != nil {
		panic(err)
	}
}
