package ringviz

import "github.com/ringviz/ringviz/cache"

// config holds optional per-pass configuration for a Resolver.
type config struct {
	autoAlpha  bool
	alphaSteps int
	store      cache.Store
	static     bool
	rebuild    bool
	surface    Surface
}

// Option configures a Resolver during creation.
//
// Example:
//
//	r := ringviz.NewResolver(table,
//	    ringviz.WithAutoAlpha(5),
//	    ringviz.WithListCache(cache.NewFileStore("colors.dat")),
//	)
type Option func(*config)

// WithAutoAlpha enables automatic transparency-tier derivation with the
// given number of steps. For steps = N, each resolved base color gains
// N+1 derived names base_a0 … base_aN, where base_ai has opacity
// 1 - i/(N+1). Non-positive steps leave derivation disabled.
func WithAutoAlpha(steps int) Option {
	return func(c *config) {
		c.autoAlpha = steps > 0
		c.alphaSteps = steps
	}
}

// WithListCache attaches a persistent store for resolved list patterns.
// Without a store, list patterns are re-matched on every pass.
func WithListCache(s cache.Store) Option {
	return func(c *config) {
		c.store = s
	}
}

// WithStaticCache marks cache entries written by this pass as static:
// later passes trust them regardless of namespace-hash mismatches.
func WithStaticCache() Option {
	return func(c *config) {
		c.static = true
	}
}

// WithRebuildCache forces list patterns to be re-matched this pass,
// ignoring any existing cache entry. The rebuilt entry is written back.
func WithRebuildCache() Option {
	return func(c *config) {
		c.rebuild = true
	}
}

// WithSurface attaches a drawing surface. When present, every resolved
// literal is allocated on it immediately and Resolver.Allocator exposes
// the resulting handles.
func WithSurface(s Surface) Option {
	return func(c *config) {
		c.surface = s
	}
}
