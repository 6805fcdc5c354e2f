package ds

import (
	"fmt"
)

type (
	// ErrUnreachableCode marks a state the caller believed impossible,
	// such as an unknown UI mode.
	ErrUnreachableCode struct {
		Caller string
		State  any
	}
)

func (r ErrUnreachableCode) Error() string {
	if r.State == nil {
		return fmt.Sprintf("%s: unreachable code", r.Caller)
	}
	return fmt.Sprintf(`%s: unreachable code with state "%v"`, r.Caller, r.State)
}
