package ssr

import (
	"context"
	"net/http"

	"github.com/gobwas/glob"
	"github.com/gofiber/fiber/v2"

	"github.com/goliatone/go-location"
)

// Config for the request router middleware. Skip applies to New and
// Next to NewFiber. Exclude holds glob patterns, e.g. "/assets/**",
// matched against the raw request path by both. LocalsKey is the fiber
// locals key holding the router.
type Config struct {
	Skip        func(r *http.Request) bool
	Next        func(c *fiber.Ctx) bool
	Exclude     []string
	Base        string
	CaseFolding location.CaseFolding
	LocalsKey   string
	Logger      location.Logger
}

var ConfigDefault = Config{
	Skip:        nil,
	Next:        nil,
	Exclude:     nil,
	Base:        "",
	CaseFolding: location.CaseFoldingSimple,
	LocalsKey:   "location_router",
}

// New returns net/http middleware that attaches a request scoped router
// to the request context.
func New(config ...Config) func(http.Handler) http.Handler {
	cfg := configDefault(config...)
	excluded := compileExclude(cfg.Exclude)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.EscapedPath()
			if (cfg.Skip != nil && cfg.Skip(r)) || excluded(path) {
				next.ServeHTTP(w, r)
				return
			}

			router := cfg.router(NewSource(path, r.URL.RawQuery))
			next.ServeHTTP(w, r.WithContext(location.NewContext(r.Context(), router)))
		})
	}
}

// NewFiber is the Fiber flavour of New. The router is stored both in
// the locals under LocalsKey and in the user context.
func NewFiber(config ...Config) fiber.Handler {
	cfg := configDefault(config...)
	excluded := compileExclude(cfg.Exclude)

	return func(c *fiber.Ctx) error {
		uri := c.Request().URI()
		path := string(uri.PathOriginal())
		if (cfg.Next != nil && cfg.Next(c)) || excluded(path) {
			return c.Next()
		}

		router := cfg.router(NewSource(path, string(uri.QueryString())))

		c.Locals(cfg.LocalsKey, router)
		c.SetUserContext(location.NewContext(c.UserContext(), router))

		return c.Next()
	}
}

// compileExclude panics on an invalid pattern, like glob.MustCompile.
func compileExclude(patterns []string) func(path string) bool {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		globs = append(globs, glob.MustCompile(p, '/'))
	}

	return func(path string) bool {
		for _, g := range globs {
			if g.Match(path) {
				return true
			}
		}
		return false
	}
}

func (cfg Config) router(src *Source) *location.Router {
	opts := []location.Option{
		location.WithBase(cfg.Base),
		location.WithCaseFolding(cfg.CaseFolding),
		location.WithSource(src),
	}
	if cfg.Logger != nil {
		opts = append(opts, location.WithLogger(cfg.Logger))
	}
	return location.New(opts...)
}

// FromFiber returns the router stored by NewFiber, falling back to the
// user context and then location.Default.
func FromFiber(c *fiber.Ctx, key ...string) *location.Router {
	k := ConfigDefault.LocalsKey
	if len(key) > 0 && key[0] != "" {
		k = key[0]
	}
	if r, ok := c.Locals(k).(*location.Router); ok && r != nil {
		return r
	}
	return location.FromContext(c.UserContext())
}

// RedirectTo reports the redirect recorded by a navigation made while
// handling the request carried by ctx.
func RedirectTo(ctx context.Context) (string, bool) {
	src, ok := location.FromContext(ctx).Source().(*Source)
	if !ok {
		return "", false
	}
	return src.Redirect()
}

// Redirect writes a redirect response when one was recorded and reports
// whether it did.
func Redirect(w http.ResponseWriter, r *http.Request, status ...int) bool {
	to, ok := RedirectTo(r.Context())
	if !ok {
		return false
	}
	http.Redirect(w, r, to, statusCode(status))
	return true
}

// RedirectFiber is the Fiber flavour of Redirect.
func RedirectFiber(c *fiber.Ctx, status ...int) (bool, error) {
	src, ok := FromFiber(c).Source().(*Source)
	if !ok {
		return false, nil
	}
	to, ok := src.Redirect()
	if !ok {
		return false, nil
	}
	return true, c.Redirect(to, statusCode(status))
}

func statusCode(status []int) int {
	if len(status) > 0 && status[0] != 0 {
		return status[0]
	}
	return http.StatusFound
}

func configDefault(config ...Config) Config {
	if len(config) == 0 {
		return ConfigDefault
	}

	cfg := config[0]

	if cfg.CaseFolding == "" {
		cfg.CaseFolding = ConfigDefault.CaseFolding
	}

	if cfg.LocalsKey == "" {
		cfg.LocalsKey = ConfigDefault.LocalsKey
	}

	return cfg
}
