package locale

import "github.com/wippyai/mp-runtime/errors"

// SetFaultHandler swaps the process-ending fault path for tests and
// returns a restore function.
func SetFaultHandler(fn func(*errors.Error)) func() {
	old := fault
	fault = fn
	return func() { fault = old }
}
