package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/samvad-hq/poc-httpclient/pkg/clients"
)

// ClientSource hands out named client handles. *clients.Registry satisfies it.
type ClientSource interface {
	Client(name clients.Name) (*clients.Handle, error)
}

// Options controls a single call.
type Options struct {
	// Strict turns non-2xx responses into a *StatusError.
	Strict bool
	// Observer, when set, is called after each request issued by Many and Repeated.
	Observer func(Outcome)
}

// Result is the outcome of one GET.
type Result struct {
	StatusCode int
	Status     string
	Success    bool
	Body       []byte
	URL        string
	Duration   time.Duration
}

// Single issues one GET for path through the client registered as name.
func Single(ctx context.Context, src ClientSource, name clients.Name, path string, opts Options) (Result, error) {
	if src == nil {
		return Result{}, fmt.Errorf("client source is nil")
	}
	h, err := src.Client(name)
	if err != nil {
		return Result{}, fmt.Errorf("resolve client: %w", err)
	}

	target := h.URL(path)
	resp, err := h.Get(ctx, path)
	if err != nil {
		return Result{}, &NetworkError{Client: name, URL: target, Err: err}
	}

	if u := resp.URL(); u != "" {
		target = u
	}
	res := Result{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Success:    resp.StatusCode() >= 200 && resp.StatusCode() <= 299,
		Body:       resp.Body(),
		URL:        target,
		Duration:   resp.Duration(),
	}
	if opts.Strict && !res.Success {
		return res, &StatusError{
			Client:     name,
			URL:        target,
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Body:       res.Body,
		}
	}
	return res, nil
}
