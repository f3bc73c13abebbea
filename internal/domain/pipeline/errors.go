package pipeline

import (
	"errors"
	"fmt"
)

// ContentSafetyError signals a strict-mode safety rejection. It is the only
// pipeline failure callers are expected to branch on; everything else is a
// generic failure.
type ContentSafetyError struct {
	Reason string
}

func (e *ContentSafetyError) Error() string {
	return fmt.Sprintf("content blocked by safety policy: %s", e.Reason)
}

// IsContentBlocked reports whether err wraps a strict-mode safety rejection.
func IsContentBlocked(err error) bool {
	var safetyErr *ContentSafetyError
	return errors.As(err, &safetyErr)
}
