// Package error defines domain-specific errors for the CashEase application.
//
// Every domain carries its own code type (AUTH-, EXP-, GOL-, ...) so that
// controllers can switch on codes without string matching. Codes follow
// PREFIX-XXYYYY where XX is the category and YYYY the specific error.
package error

// Coded is an error tagged with a domain code. The wrapped error is usually
// one of the sentinels declared next to the code type.
type Coded[C ~string] struct {
	Code    C
	Message string
	Err     error
}

func (e *Coded[C]) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Coded[C]) Unwrap() error { return e.Err }

func newCoded[C ~string](code C, message string, err error) *Coded[C] {
	return &Coded[C]{Code: code, Message: message, Err: err}
}
