package ds

import (
	"encoding/json"
	"fmt"
)

// DumpJSON renders t as indented JSON for console output. Marshalling errors
// are rendered in place of the value.
func DumpJSON[T any](t T) string {
	tBytes, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("DumpJSON error %w", err).Error()
	}

	return string(tBytes)
}
