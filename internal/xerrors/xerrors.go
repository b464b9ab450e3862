// Package xerrors contains the connector's error taxonomy and helpers for
// wrapping errors with caller identification.
package xerrors

import "errors"

func Is(err error, targets ...error) bool {
	if len(targets) == 0 {
		panic("empty targets")
	}
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

func As(err error, targets ...interface{}) bool {
	if len(targets) == 0 {
		panic("empty targets")
	}
	for _, target := range targets {
		if errors.As(err, target) {
			return true
		}
	}

	return false
}

func Join(errs ...error) error {
	return errors.Join(errs...)
}
