package loaderr

import "errors"

// CodeOf returns the code of the first *Error in err's chain, or "" when the
// chain carries none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code()
	}
	return ""
}

// HasCode reports whether err's chain carries an *Error with the given code.
func HasCode(err error, code Code) bool {
	return CodeOf(err) == code
}
