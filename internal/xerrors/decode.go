package xerrors

import "fmt"

// decodeError is a malformed result frame: the layout produced by the
// engine's encoder violated the offset-table contract. Fatal to the
// partition, never retried.
type decodeError struct {
	reason string
}

func Decode(format string, args ...interface{}) error {
	return WithStackTrace(
		&decodeError{reason: fmt.Sprintf(format, args...)},
		WithSkipDepth(1),
	)
}

func (e *decodeError) Error() string {
	return "decode error: " + e.reason
}

func IsDecodeError(err error) bool {
	if err == nil {
		return false
	}
	var de *decodeError

	return As(err, &de)
}
