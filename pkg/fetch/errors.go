package fetch

import (
	"fmt"

	"github.com/samvad-hq/poc-httpclient/pkg/clients"
)

// NetworkError reports a request that could not be sent or answered.
type NetworkError struct {
	Client clients.Name
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s GET %s: %v", e.Client, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// StatusError reports a non-2xx response in strict mode.
type StatusError struct {
	Client     clients.Name
	URL        string
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s GET %s: http status %d: %s", e.Client, e.URL, e.StatusCode, Snippet(e.Body, 512))
}
