package machine

import (
	"errors"

	"github.com/ezrec/bfi/translate"
)

var f = translate.From

var (
	ErrOutOfRange     = errors.New(f("data pointer out of range"))
	ErrTapeSize       = errors.New(f("tape size must be positive"))
	ErrPolicy         = errors.New(f("policy invalid"))
	ErrProgramMissing = errors.New(f("program missing"))
	ErrChannelMissing = errors.New(f("channel missing"))
)

type ErrPolicyName string

func (err ErrPolicyName) Error() string {
	return f("'%v' is not a policy (fatal, wrap, grow)", string(err))
}

func (err ErrPolicyName) Is(target error) bool {
	return target == ErrPolicy
}

// ErrRuntime indicates the machine state at a runtime error.
type ErrRuntime struct {
	Pc      int
	Line    int
	Column  int
	Pointer int
	Err     error
}

func (err *ErrRuntime) Error() string {
	return f("pc %d line %d column %d pointer %d: %v", err.Pc, err.Line, err.Column, err.Pointer, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
