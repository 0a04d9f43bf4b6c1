package location

import (
	"context"
	"sync"
)

// Context keys for router propagation
type contextKey int

const (
	contextKeyRouter contextKey = iota
)

// RouterConfig holds the settings a Router is built from.
type RouterConfig struct {
	Base          string
	CaseFolding   CaseFolding
	Source        Source
	SourceFactory SourceFactory
	Logger        Logger
}

type Option func(*RouterConfig)

// WithBase mounts the router at base.
func WithBase(base string) Option {
	return func(c *RouterConfig) {
		c.Base = base
	}
}

// WithSource uses source as the location store.
func WithSource(source Source) Option {
	return func(c *RouterConfig) {
		c.Source = source
	}
}

// WithSourceFactory builds the location store when no Source is given.
func WithSourceFactory(factory SourceFactory) Option {
	return func(c *RouterConfig) {
		c.SourceFactory = factory
	}
}

func WithCaseFolding(mode CaseFolding) Option {
	return func(c *RouterConfig) {
		c.CaseFolding = mode
	}
}

func WithLogger(logger Logger) Option {
	return func(c *RouterConfig) {
		c.Logger = logger
	}
}

// Router carries the location configuration (base and source) handed
// down to hooks. Routers are immutable; Nest derives child routers.
type Router struct {
	base   Base
	source Source
	logger Logger
	cache  *navigatorCache
	parent *Router
	owned  bool
}

// New builds a Router. Without a source it uses DefaultSource.
func New(opts ...Option) *Router {
	config := RouterConfig{}
	for _, opt := range opts {
		opt(&config)
	}

	source := config.Source
	owned := false
	if source == nil && config.SourceFactory != nil {
		source = config.SourceFactory()
		owned = true
	}
	if source == nil {
		source = DefaultSource()
		owned = true
	}

	if config.Logger == nil {
		config.Logger = &defaultLogger{}
	}

	return &Router{
		base:   NewBase(config.Base, WithBaseCaseFolding(config.CaseFolding)),
		source: source,
		logger: config.Logger,
		cache:  newNavigatorCache(),
		owned:  owned,
	}
}

var (
	defaultRouter     *Router
	defaultRouterOnce sync.Once
)

// Default returns the router used when a context carries none.
func Default() *Router {
	defaultRouterOnce.Do(func() {
		defaultRouter = New()
	})
	return defaultRouter
}

func (r *Router) Base() Base {
	return r.base
}

func (r *Router) Source() Source {
	return r.source
}

func (r *Router) Logger() Logger {
	return r.logger
}

// Parent returns the router r was nested in, or nil.
func (r *Router) Parent() *Router {
	return r.parent
}

// Location returns the current location relative to the base.
func (r *Router) Location() string {
	return r.base.Strip(r.source.Current())
}

// Search returns the current query string when the source tracks one.
func (r *Router) Search() string {
	if s, ok := r.source.(SearchSource); ok {
		return s.Search()
	}
	return ""
}

// State returns the current history state when the source keeps one.
func (r *Router) State() any {
	if s, ok := r.source.(StateSource); ok {
		return s.State()
	}
	return nil
}

// Navigator returns the memoized navigator for this source and base.
func (r *Router) Navigator() *Navigator {
	return r.cache.get(r.source, r.base, r.logger)
}

func (r *Router) Navigate(to string, opts ...NavigateOption) {
	r.Navigator().Navigate(to, opts...)
}

func (r *Router) Href(to string) string {
	return r.Navigator().Href(to)
}

// Nest returns a router mounted at base below r. It shares r's source
// and navigator cache.
func (r *Router) Nest(base string) *Router {
	return &Router{
		base:   r.base.Nest(base),
		source: r.source,
		logger: r.logger,
		cache:  r.cache,
		parent: r,
	}
}

// Close releases the source when the router built it from a factory
// or DefaultSource, e.g. the window of a configured browser or hash
// source. Sources passed with WithSource belong to the caller and
// nested routers never close anything.
func (r *Router) Close() {
	if !r.owned {
		return
	}
	if c, ok := r.source.(interface{ Close() }); ok {
		c.Close()
	}
}

// NewContext returns a copy of ctx carrying r.
func NewContext(ctx context.Context, r *Router) context.Context {
	return context.WithValue(ctx, contextKeyRouter, r)
}

// FromContext returns the router carried by ctx, or Default.
func FromContext(ctx context.Context) *Router {
	if ctx != nil {
		if r, ok := ctx.Value(contextKeyRouter).(*Router); ok && r != nil {
			return r
		}
	}
	return Default()
}
