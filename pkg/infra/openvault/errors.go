package openvault

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// StatusError reports a non-success status from the upstream so handlers
// can relay the original code and detail text.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, string(e.Body))
}

// AsStatusError unwraps err into a StatusError when the upstream answered
// with a non-success status rather than failing at the transport level.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}

func readAll(resp *http.Response) ([]byte, error) {
	if resp.Body == nil {
		return nil, nil
	}
	return io.ReadAll(resp.Body)
}
