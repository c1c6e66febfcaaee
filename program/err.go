package program

import (
	"errors"

	"github.com/ezrec/bfi/translate"
)

var f = translate.From

var (
	ErrUnbalancedBrackets = errors.New(f("unbalanced brackets"))
)

// ErrSyntax locates a validation failure in the source text.
type ErrSyntax struct {
	Position
	Err error
}

func (err *ErrSyntax) Error() string {
	return f("line %d column %d: %v", err.Line, err.Column, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
