package fetch

import (
	"context"

	"github.com/samvad-hq/poc-httpclient/pkg/clients"
)

// Outcome pairs one request of a group with its result or error.
type Outcome struct {
	Index  int
	Path   string
	Result Result
	Err    error
}

// Many issues one GET per path, sequentially and in order.
// A failed request never stops the ones after it.
func Many(ctx context.Context, src ClientSource, name clients.Name, paths []string, opts Options) []Outcome {
	out := make([]Outcome, 0, len(paths))
	for i, p := range paths {
		out = append(out, run(ctx, src, name, i, p, opts))
	}
	return out
}

// Repeated issues count sequential GETs for the same path.
func Repeated(ctx context.Context, src ClientSource, name clients.Name, path string, count int, opts Options) []Outcome {
	if count <= 0 {
		return nil
	}
	out := make([]Outcome, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, run(ctx, src, name, i, path, opts))
	}
	return out
}

func run(ctx context.Context, src ClientSource, name clients.Name, i int, path string, opts Options) Outcome {
	res, err := Single(ctx, src, name, path, opts)
	o := Outcome{Index: i, Path: path, Result: res, Err: err}
	if opts.Observer != nil {
		opts.Observer(o)
	}
	return o
}
