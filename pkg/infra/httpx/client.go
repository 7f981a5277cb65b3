package httpx

import "net/http"

// Client is the outbound HTTP abstraction used by the upstream adapters.
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}
