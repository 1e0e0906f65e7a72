package guard

// Kind is an error type that can be constructed from a failure message.
//
// FromMessage is called on the zero value of the type, so it must not
// depend on the receiver's content, and it must return a non-nil failure.
//
//	type ErrBadState struct{ Message string }
//
//	func (e ErrBadState) Error() string { return e.Message }
//
//	func (ErrBadState) FromMessage(msg string) (ErrBadState, error) {
//		return ErrBadState{Message: msg}, nil
//	}
//
// Pointer types work as well, as long as FromMessage does not dereference
// the nil receiver.
type Kind[E error] interface {
	error
	FromMessage(message string) (E, error)
}

var _ Kind[ErrAssertionFailed] = ErrAssertionFailed{}
