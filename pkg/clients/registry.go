package clients

import (
	"fmt"
	"net/http"
	"sync"
	"time"
)

const defaultTimeout = 30 * time.Second

// Options controls how handles are built.
type Options struct {
	Timeout   time.Duration
	Transport http.RoundTripper // nil uses resty's pooled default transport
	Logger    Logger
}

// Registry maps client names to their definitions and lazily built handles.
type Registry struct {
	mu      sync.RWMutex
	order   []Name
	entries map[string]*entry
	opts    Options
	log     Logger
}

type entry struct {
	def    Definition
	once   sync.Once
	handle *Handle
}

// NewRegistry returns an empty registry.
func NewRegistry(opts Options) *Registry {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	return &Registry{
		entries: make(map[string]*entry),
		opts:    opts,
		log:     ensureLogger(opts.Logger),
	}
}

// Register adds def under its name. A name can be registered only once.
func (r *Registry) Register(def Definition) error {
	def = sanitizeDefinition(def)
	if err := validateDefinition(def); err != nil {
		return err
	}

	key := def.Name.key()
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[key]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateClient, def.Name)
	}
	r.entries[key] = &entry{def: def}
	r.order = append(r.order, def.Name)
	return nil
}

// RegisterAll registers defs in order and stops at the first failure.
func RegisterAll(r *Registry, defs []Definition) error {
	for i, def := range defs {
		if err := r.Register(def); err != nil {
			return fmt.Errorf("register client #%d: %w", i, err)
		}
	}
	return nil
}

// Client returns the handle for name, building it on first use.
// Every later call for the same name returns the same handle and transport.
func (r *Registry) Client(name Name) (*Handle, error) {
	r.mu.RLock()
	e := r.entries[name.key()]
	r.mu.RUnlock()
	if e == nil {
		return nil, fmt.Errorf("%w: %q", ErrClientNotFound, name)
	}

	e.once.Do(func() {
		e.handle = newHandle(e.def, r.opts)
		r.log.DebugObj("http client created", "client_meta", map[string]any{
			"name":     e.def.Name.String(),
			"base_url": e.def.BaseURL,
			"timeout":  r.opts.Timeout.String(),
		})
	})
	return e.handle, nil
}

// Names returns registered names in registration order.
func (r *Registry) Names() []Name {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Name, len(r.order))
	copy(out, r.order)
	return out
}

// Definition returns a copy of the definition registered under name.
func (r *Registry) Definition(name Name) (Definition, bool) {
	r.mu.RLock()
	e := r.entries[name.key()]
	r.mu.RUnlock()
	if e == nil {
		return Definition{}, false
	}
	def := e.def
	def.Headers = copyHeaders(def.Headers)
	return def, true
}
