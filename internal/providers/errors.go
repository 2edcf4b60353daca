package providers

import (
	"errors"
	"fmt"
)

// ErrUnavailable indicates the upstream source could not be reached.
var ErrUnavailable = errors.New("source unavailable")

// MalformedError captures payloads that arrived but carried an explicit
// error indicator instead of records. It is a failure, not an empty result.
type MalformedError struct {
	Source    string
	Sport     string
	Indicator string
}

func (e *MalformedError) Error() string {
	msg := e.Indicator
	if msg == "" {
		msg = "payload carried an error indicator"
	}
	if e.Sport != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Source, msg, e.Sport)
	}
	return fmt.Sprintf("%s: %s", e.Source, msg)
}

// AsMalformedError attempts to unwrap an error into a MalformedError.
func AsMalformedError(err error) (*MalformedError, bool) {
	var mErr *MalformedError
	if errors.As(err, &mErr) {
		return mErr, true
	}
	return nil, false
}
