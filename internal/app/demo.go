package app

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/samvad-hq/poc-httpclient/internal/config"
	"github.com/samvad-hq/poc-httpclient/internal/logger"
	"github.com/samvad-hq/poc-httpclient/internal/report"
	"github.com/samvad-hq/poc-httpclient/internal/storage"
	"github.com/samvad-hq/poc-httpclient/pkg/clients"
	"github.com/samvad-hq/poc-httpclient/pkg/fetch"
)

const (
	dogImagePath     = "/api/breeds/image/random"
	siteSnippetRunes = 20
)

// Summary counts the requests issued by a run.
type Summary struct {
	Requests int
	Failures int
}

// Demo runs the fixed sequence of demonstration calls.
type Demo struct {
	cfg   *config.Config
	reg   fetch.ClientSource
	out   *report.Reporter
	store storage.Store
	log   logger.Logger
	newID func() string

	summary Summary
}

// NewDemo wires a demo runtime. A nil store or logger disables that concern.
func NewDemo(cfg *config.Config, reg fetch.ClientSource, out *report.Reporter, store storage.Store, log logger.Logger) (*Demo, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if reg == nil {
		return nil, fmt.Errorf("client registry must not be nil")
	}
	if out == nil {
		return nil, fmt.Errorf("reporter must not be nil")
	}
	if store == nil {
		store, _ = storage.NewStore("none", "", storage.Options{})
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Demo{
		cfg:   cfg,
		reg:   reg,
		out:   out,
		store: store,
		log:   log,
		newID: func() string { return uuid.NewString()[:3] },
	}, nil
}

// BuildRegistry registers the clients from cfg.ClientsFile, or the built-in set when it is empty.
func BuildRegistry(cfg *config.Config, opts clients.Options) (*clients.Registry, error) {
	defs := clients.DefaultDefinitions(cfg.UserAgent)
	if cfg.ClientsFile != "" {
		loaded, err := clients.LoadDefinitions(cfg.ClientsFile)
		if err != nil {
			return nil, fmt.Errorf("load clients: %w", err)
		}
		defs = loaded
	}
	if opts.Timeout <= 0 {
		opts.Timeout = cfg.RequestTimeout
	}

	reg := clients.NewRegistry(opts)
	if err := clients.RegisterAll(reg, defs); err != nil {
		return nil, err
	}
	return reg, nil
}

// Run executes every step in order. A failed request is reported and never stops the run.
func (d *Demo) Run(ctx context.Context) Summary {
	start := time.Now()
	d.summary = Summary{}

	d.dogImage(ctx)
	d.dogImages(ctx, d.cfg.DogImageCount)
	if d.cfg.GitHubUser != "" {
		d.gitHubInfo(ctx, d.cfg.GitHubUser)
	}
	d.gitHubInfoAll(ctx, d.cfg.GitHubUsers)
	if d.cfg.SitesEnabled {
		d.websites(ctx, d.cfg.Sites)
	}

	d.log.InfoObj("demo run completed", "run_meta", map[string]any{
		"requests":   d.summary.Requests,
		"failures":   d.summary.Failures,
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
	return d.summary
}

func (d *Demo) strict() fetch.Options {
	return fetch.Options{Strict: d.cfg.StrictStatus}
}

func (d *Demo) dogImage(ctx context.Context) {
	res, err := fetch.Single(ctx, d.reg, clients.DogAPI, dogImagePath, d.strict())
	d.showDog(fetch.Outcome{Path: dogImagePath, Result: res, Err: err})
}

func (d *Demo) dogImages(ctx context.Context, count int) {
	opts := d.strict()
	opts.Observer = d.showDog
	fetch.Repeated(ctx, d.reg, clients.DogAPI, dogImagePath, count, opts)
}

func (d *Demo) showDog(o fetch.Outcome) {
	d.track(clients.DogAPI, o)
	d.out.Header("Dog Request Data  " + d.newID())
	if o.Err != nil {
		d.out.Response(o.Err.Error(), true)
		return
	}
	d.out.Line(string(o.Result.Body))
}

func (d *Demo) gitHubInfo(ctx context.Context, user string) {
	path := userPath(user)
	res, err := fetch.Single(ctx, d.reg, clients.GitHubAPI, path, d.strict())
	d.showGitHub(user, fetch.Outcome{Path: path, Result: res, Err: err})
}

func (d *Demo) gitHubInfoAll(ctx context.Context, users []string) {
	paths := make([]string, len(users))
	for i, u := range users {
		paths[i] = userPath(u)
	}
	opts := d.strict()
	opts.Observer = func(o fetch.Outcome) { d.showGitHub(users[o.Index], o) }
	fetch.Many(ctx, d.reg, clients.GitHubAPI, paths, opts)
}

func (d *Demo) showGitHub(user string, o fetch.Outcome) {
	d.track(clients.GitHubAPI, o)
	d.out.Header("Git Hub Account Info - " + user)
	if o.Err != nil {
		d.out.Response(o.Err.Error(), true)
		return
	}
	d.out.JSON(string(o.Result.Body))
}

func (d *Demo) websites(ctx context.Context, sites []string) {
	d.out.Header("Using HttpClient class to call single Request")
	fetch.Many(ctx, d.reg, clients.Basic, sites, fetch.Options{
		Strict: true,
		Observer: func(o fetch.Outcome) {
			d.track(clients.Basic, o)
			if o.Err != nil {
				d.out.Response("Error: "+o.Err.Error(), true)
				return
			}
			d.out.Response(fmt.Sprintf("Content returned from %s statuscode:%d IsSuccessCode:%t",
				o.Result.URL, o.Result.StatusCode, o.Result.Success), false)
			if title := fetch.PageTitle(o.Result.Body); title != "" {
				d.out.Line(title)
				return
			}
			d.out.Line(fetch.Snippet(o.Result.Body, siteSnippetRunes))
		},
	})
}

// track counts, logs and records one outcome.
func (d *Demo) track(name clients.Name, o fetch.Outcome) {
	d.summary.Requests++
	rec := storage.Record{
		Client:     name.String(),
		Path:       o.Path,
		URL:        o.Result.URL,
		StatusCode: o.Result.StatusCode,
		At:         time.Now().UTC(),
	}

	if o.Err != nil {
		d.summary.Failures++
		rec.Error = o.Err.Error()
		d.log.WarnObj("request failed", "request_error", map[string]any{
			"client": name.String(),
			"path":   o.Path,
			"kind":   errorKind(o.Err),
			"error":  o.Err.Error(),
		})
	} else {
		d.log.DebugObj("request completed", "request_result", map[string]any{
			"client":      name.String(),
			"url":         o.Result.URL,
			"status":      o.Result.StatusCode,
			"duration_ms": o.Result.Duration.Milliseconds(),
		})
	}

	if err := d.store.Record(rec); err != nil {
		d.log.ErrorObj("history record failed", "error", err)
	}
}

func errorKind(err error) string {
	var netErr *fetch.NetworkError
	var statusErr *fetch.StatusError
	switch {
	case errors.Is(err, clients.ErrClientNotFound):
		return "configuration"
	case errors.As(err, &netErr):
		return "network"
	case errors.As(err, &statusErr):
		return "http_status"
	default:
		return "unknown"
	}
}

func userPath(user string) string {
	return "/users/" + url.PathEscape(user)
}
