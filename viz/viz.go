// Package viz wires the command line tools together: flag parsing,
// single runs, and parallel multi-job runs.
package viz

import "fmt"

func handle(format string) func(...any) error {
	return func(args ...any) error {
		return fmt.Errorf(format, args...)
	}
}

func Must(e error) {
	if e != nil {
		panic(e)
	}
}
