package ringviz

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/ringviz/ringviz/cache"
)

// tierSuffix matches the auto-generated transparency tier naming
// convention: a base name followed by _a<step>.
var tierSuffix = regexp.MustCompile(`_a(\d+)$`)

// Resolver resolves every name in a color table down to a concrete
// Literal. It owns the resolved-name universe for one render pass and is
// passed explicitly to allocators and style builders; there is no shared
// global table.
//
// Resolution runs in four fixed passes, each processing names in
// lexicographic order for determinism:
//
//  1. literal pass: entries with RGB/HSV/hex syntax convert directly
//  2. alias pass: chains of name references are followed to a literal,
//     with cycle detection
//  3. transparency pass: if enabled, tier names base_a0…base_aN are
//     synthesized from each resolved literal
//  4. list pass: list patterns match against the universe built by
//     passes 1–3, consulting the persistent cache when one is attached
//
// The pass order is fixed because later passes depend on the name
// universe built by earlier ones.
type Resolver struct {
	table *Table
	cfg   config

	resolved map[string]Literal
	lists    map[string][]string
	alloc    *Allocator
	built    bool
}

// NewResolver creates a resolver over a color table. The table must be
// fully populated before the first Resolve call.
func NewResolver(t *Table, opts ...Option) *Resolver {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	r := &Resolver{
		table:    t,
		cfg:      cfg,
		resolved: make(map[string]Literal),
		lists:    make(map[string][]string),
	}
	if cfg.surface != nil {
		r.alloc = NewAllocator(cfg.surface)
	}
	return r
}

// Build runs all resolution passes. It is called implicitly by the first
// Resolve or List call; calling it again is a no-op. Any configuration
// error (conflicting definitions are caught earlier, at Define time;
// cycles, undefined targets, out-of-range alpha and unmatched patterns
// are caught here) aborts the pass.
func (r *Resolver) Build() error {
	if r.built {
		return nil
	}

	names := r.table.Names()
	if err := r.literalPass(names); err != nil {
		return err
	}
	if err := r.aliasPass(names); err != nil {
		return err
	}
	if err := r.transparencyPass(); err != nil {
		return err
	}
	if err := r.listPass(names); err != nil {
		return err
	}
	r.built = true
	return nil
}

// Resolve returns the fully dereferenced literal for a color name.
// A name that is itself literal RGB/HSV/hex syntax resolves on demand.
func (r *Resolver) Resolve(name string) (Literal, error) {
	if err := r.Build(); err != nil {
		return Literal{}, err
	}
	name = strings.ToLower(strings.TrimSpace(name))

	if lit, ok := r.resolved[name]; ok {
		return lit, nil
	}
	if candidates, ok := r.lists[name]; ok {
		// A list color dereferences to its first candidate.
		return r.Resolve(candidates[0])
	}

	// Inline literal syntax used directly as a color reference.
	if def, err := ParseDefinition(name); err == nil {
		if lit, ok := def.(Literal); ok {
			r.resolved[name] = lit
			if r.alloc != nil {
				if _, err := r.alloc.Allocate(name, lit); err != nil {
					return Literal{}, err
				}
			}
			return lit, nil
		}
	}
	return Literal{}, fmt.Errorf("%w: %q", ErrUndefinedColor, name)
}

// List returns the ordered candidate names of a list-pattern color.
func (r *Resolver) List(name string) ([]string, error) {
	if err := r.Build(); err != nil {
		return nil, err
	}
	name = strings.ToLower(strings.TrimSpace(name))
	candidates, ok := r.lists[name]
	if !ok {
		return nil, fmt.Errorf("%w: no list color %q", ErrUndefinedColor, name)
	}
	return candidates, nil
}

// Names returns the resolved name universe in lexicographic order,
// including derived transparency tiers.
func (r *Resolver) Names() []string {
	return slices.Sorted(maps.Keys(r.resolved))
}

// Allocator returns the allocator bound to the configured surface, or nil
// when no surface is attached.
func (r *Resolver) Allocator() *Allocator { return r.alloc }

// literalPass resolves and allocates every entry with literal syntax.
func (r *Resolver) literalPass(names []string) error {
	for _, name := range names {
		def, _ := r.table.Lookup(name)
		lit, ok := def.(Literal)
		if !ok {
			continue
		}
		r.resolved[name] = lit
		if err := r.allocate(name, lit); err != nil {
			return err
		}
	}
	return nil
}

// aliasPass follows name references until they terminate at a literal,
// recording visited names so a revisit fails as a cycle.
func (r *Resolver) aliasPass(names []string) error {
	for _, name := range names {
		def, _ := r.table.Lookup(name)
		alias, ok := def.(Alias)
		if !ok {
			continue
		}

		visited := map[string]bool{name: true}
		chain := []string{name}
		cur := alias.Target
		for {
			if visited[cur] {
				return fmt.Errorf("%w: %s -> %s", ErrColorCycle, strings.Join(chain, " -> "), cur)
			}
			visited[cur] = true
			chain = append(chain, cur)

			next, ok := r.table.Lookup(cur)
			if !ok {
				return fmt.Errorf("%w: %q (via %s)", ErrUndefinedColor, cur, strings.Join(chain, " -> "))
			}
			switch d := next.(type) {
			case Literal:
				r.resolved[name] = d
				if err := r.allocate(name, d); err != nil {
					return err
				}
			case Alias:
				cur = d.Target
				continue
			case ListPattern:
				return fmt.Errorf("ringviz: alias %q terminates at list pattern %q; aliases must reach a literal", name, cur)
			}
			break
		}
	}
	return nil
}

// transparencyPass synthesizes tier names base_a0…base_aN for every
// resolved literal. Tier 0 is a transparency-disabled synonym of the
// base. Names that already carry a tier suffix are never re-tiered, and
// a full tier set is generated per base color, never partially.
func (r *Resolver) transparencyPass() error {
	if !r.cfg.autoAlpha {
		return nil
	}
	steps := r.cfg.alphaSteps

	for _, base := range slices.Sorted(maps.Keys(r.resolved)) {
		if tierSuffix.MatchString(base) {
			continue
		}
		cr, cg, cb := r.baseChannels(base)
		for i := 0; i <= steps; i++ {
			tier := fmt.Sprintf("%s_a%d", base, i)
			if _, exists := r.resolved[tier]; exists {
				continue
			}
			lit := Literal{R: cr, G: cg, B: cb, A: 1 - float64(i)/float64(steps+1)}
			r.resolved[tier] = lit
			if err := r.allocate(tier, lit); err != nil {
				return err
			}
		}
	}
	return nil
}

// baseChannels returns the RGB channels to derive tiers from. When the
// base color is already allocated on a surface, the channels are read
// back from the surface handle rather than the table literal.
func (r *Resolver) baseChannels(base string) (cr, cg, cb uint8) {
	if r.alloc != nil {
		if ac, ok := r.alloc.Lookup(base); ok {
			if cr, cg, cb, _, ok := r.alloc.Channels(ac.Handle); ok {
				return cr, cg, cb
			}
		}
	}
	lit := r.resolved[base]
	return lit.R, lit.G, lit.B
}

// listPass resolves every list-pattern color against the universe built
// by the earlier passes, consulting and refreshing the persistent cache.
func (r *Resolver) listPass(names []string) error {
	var listNames []string
	for _, name := range names {
		if _, ok := r.table.defs[name].(ListPattern); ok {
			listNames = append(listNames, name)
		}
	}
	if len(listNames) == 0 {
		return nil
	}

	// The fingerprint covers the configured namespace only: the set of
	// names, not their definitions (see the cache package doc).
	hash := cache.NamespaceHash(r.table.Names())

	var cached cache.Entry
	if r.cfg.store != nil && !r.cfg.rebuild {
		if e, ok := r.cfg.store.Get(hash); ok {
			cached = e
			Logger().Debug("list cache hit", "hash", hash, "lists", len(e.Lists))
		}
	}

	universe := slices.Sorted(maps.Keys(r.resolved))
	computed := false
	for _, name := range listNames {
		if candidates, ok := cached.Lists[name]; ok {
			r.lists[name] = candidates
			continue
		}
		lp := r.table.defs[name].(ListPattern)
		candidates, err := ResolveList(lp, universe)
		if err != nil {
			return fmt.Errorf("list color %q: %w", name, err)
		}
		r.lists[name] = candidates
		computed = true
	}

	if computed && r.cfg.store != nil {
		entry := cache.Entry{
			Hash:      hash,
			Static:    r.cfg.static,
			CreatedAt: time.Now(),
			Lists:     maps.Clone(r.lists),
		}
		if err := r.cfg.store.Put(entry); err != nil {
			// Caching is an optimization, never a correctness requirement.
			Logger().Warn("list cache write failed", "error", err)
		}
	}
	return nil
}

// allocate sends a resolved literal to the surface allocator, if any.
// Allocation failure is fatal for the pass.
func (r *Resolver) allocate(name string, lit Literal) error {
	if r.alloc == nil {
		return nil
	}
	_, err := r.alloc.Allocate(name, lit)
	return err
}
