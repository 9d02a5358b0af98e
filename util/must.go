package util

import "fmt"

// Must panics if err is non-nil. It is intended for errors that indicate a programming mistake, such as marking an
// undefined flag as hidden.
func Must(err error) {
	if err != nil {
		panic(fmt.Errorf("unexpected error: %v", err))
	}
}
