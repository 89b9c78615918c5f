package internal

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// DefaultWorkers returns a worker count that takes runtime.NumCPU() into
// account.
func DefaultWorkers() int {
	return 2 * runtime.NumCPU()
}

// PanicError is a recovered panic, converted to an error.
type PanicError struct {
	Value any
	Stack []byte
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("panic: %v\n%s", p.Value, p.Stack)
}

// Unwrap returns the panic value if it was an error.
func (p *PanicError) Unwrap() error {
	if err, isError := p.Value.(error); isError {
		return err
	}
	return nil
}

// WrapPanic adds stack trace information to a recovered panic. It returns nil
// if p is nil.
func WrapPanic(p any) error {
	if p == nil {
		return nil
	}
	return &PanicError{Value: p, Stack: debug.Stack()}
}
