package clients

import (
	"context"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/samvad-hq/poc-httpclient/pkg/httpclient"
)

// Handle is a reusable client bound to one definition.
type Handle struct {
	def    Definition
	client *httpclient.RestyClient
}

func newHandle(def Definition, opts Options) *Handle {
	return &Handle{
		def: def,
		client: httpclient.NewRestyClient(httpclient.Settings{
			BaseURL:   def.BaseURL,
			Headers:   def.Headers,
			Timeout:   opts.Timeout,
			Transport: opts.Transport,
		}),
	}
}

func (h *Handle) Name() Name      { return h.def.Name }
func (h *Handle) BaseURL() string { return h.def.BaseURL }

// Headers returns a copy of the default headers.
func (h *Handle) Headers() map[string]string { return copyHeaders(h.def.Headers) }

// Transport returns the shared resty client backing this handle.
func (h *Handle) Transport() *resty.Client { return h.client.Resty() }

// Get issues a GET for path, resolved against the base URL unless absolute.
func (h *Handle) Get(ctx context.Context, path string) (httpclient.Response, error) {
	return h.client.Get(ctx, path, nil)
}

// URL returns the address a request for path will be sent to.
func (h *Handle) URL(path string) string {
	if u, err := url.Parse(path); err == nil && u.IsAbs() {
		return path
	}
	if h.def.BaseURL == "" {
		return path
	}
	return strings.TrimRight(h.def.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}
