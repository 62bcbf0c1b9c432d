package httpclient

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Settings describes how a RestyClient is built.
type Settings struct {
	BaseURL   string
	Headers   map[string]string
	Timeout   time.Duration
	Transport http.RoundTripper
}

// RestyClient adapts resty.Client to the httpclient.Client interface.
type RestyClient struct {
	client *resty.Client
}

// NewRestyClient creates a RestyClient from the given settings.
func NewRestyClient(s Settings) *RestyClient {
	return &RestyClient{client: newRestyBaseClient(s)}
}

// newRestyBaseClient creates a new resty.Client carrying base URL, default headers and timeout.
func newRestyBaseClient(s Settings) *resty.Client {
	c := resty.New()
	if s.Transport != nil {
		c.SetTransport(s.Transport)
	}
	if s.Timeout > 0 {
		c.SetTimeout(s.Timeout)
	}
	if s.BaseURL != "" {
		c.SetBaseURL(s.BaseURL)
	}
	if len(s.Headers) > 0 {
		c.SetHeaders(s.Headers)
	}
	return c
}

// Resty exposes the underlying resty.Client. It is the pooled transport shared by every request.
func (r *RestyClient) Resty() *resty.Client { return r.client }

// Get performs an HTTP GET request with the specified context, URL, and extra headers.
// Relative URLs are resolved against the configured base URL.
func (r *RestyClient) Get(ctx context.Context, url string, headers map[string]string) (Response, error) {
	req := r.client.R().SetContext(ctx)
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}
	resp, err := req.Get(url)
	if err != nil {
		return nil, err
	}
	return &restyResponseAdapter{resp: resp}, nil
}

// restyResponseAdapter adapts resty.Response to the httpclient.Response interface.
type restyResponseAdapter struct {
	resp *resty.Response
}

func (r *restyResponseAdapter) Body() []byte            { return r.resp.Body() }
func (r *restyResponseAdapter) StatusCode() int         { return r.resp.StatusCode() }
func (r *restyResponseAdapter) Status() string          { return r.resp.Status() }
func (r *restyResponseAdapter) Duration() time.Duration { return r.resp.Time() }

func (r *restyResponseAdapter) URL() string {
	if raw := r.resp.RawResponse; raw != nil && raw.Request != nil && raw.Request.URL != nil {
		return raw.Request.URL.String()
	}
	if r.resp.Request != nil {
		return r.resp.Request.URL
	}
	return ""
}
