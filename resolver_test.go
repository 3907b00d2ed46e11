package ringviz

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/ringviz/ringviz/cache"
)

func mustTable(t *testing.T, defs map[string]string) *Table {
	t.Helper()
	tab := NewTable()
	if err := tab.DefineAll(defs); err != nil {
		t.Fatalf("DefineAll: %v", err)
	}
	return tab
}

func TestResolve_AliasChain(t *testing.T) {
	tab := mustTable(t, map[string]string{
		"red":  "255,0,0",
		"pink": "red",
		"rose": "pink",
	})
	r := NewResolver(tab)

	rose, err := r.Resolve("rose")
	if err != nil {
		t.Fatalf("Resolve(rose): %v", err)
	}
	want := Literal{R: 255, A: 1}
	if rose != want {
		t.Errorf("Resolve(rose) = %#v, want %#v", rose, want)
	}

	// The chain head resolves to the same literal as every link.
	pink, _ := r.Resolve("pink")
	if pink != rose {
		t.Errorf("Resolve(pink) = %#v, want %#v", pink, rose)
	}
}

func TestResolve_Cycle(t *testing.T) {
	tab := mustTable(t, map[string]string{
		"a": "b",
		"b": "a",
	})
	r := NewResolver(tab)
	_, err := r.Resolve("a")
	if !errors.Is(err, ErrColorCycle) {
		t.Fatalf("error = %v, want ErrColorCycle", err)
	}
}

func TestResolve_LongCycle(t *testing.T) {
	tab := mustTable(t, map[string]string{
		"a": "b",
		"b": "c",
		"c": "a",
	})
	_, err := NewResolver(tab).Resolve("a")
	if !errors.Is(err, ErrColorCycle) {
		t.Fatalf("error = %v, want ErrColorCycle", err)
	}
}

func TestResolve_UndefinedTarget(t *testing.T) {
	tab := mustTable(t, map[string]string{"a": "ghost"})
	_, err := NewResolver(tab).Resolve("a")
	if !errors.Is(err, ErrUndefinedColor) {
		t.Fatalf("error = %v, want ErrUndefinedColor", err)
	}
}

func TestResolve_Undefined(t *testing.T) {
	tab := mustTable(t, map[string]string{"red": "255,0,0"})
	_, err := NewResolver(tab).Resolve("mauve")
	if !errors.Is(err, ErrUndefinedColor) {
		t.Fatalf("error = %v, want ErrUndefinedColor", err)
	}
}

func TestResolve_InlineLiteral(t *testing.T) {
	r := NewResolver(NewTable())
	got, err := r.Resolve("0,128,255")
	if err != nil {
		t.Fatalf("Resolve inline literal: %v", err)
	}
	if got != (Literal{G: 128, B: 255, A: 1}) {
		t.Errorf("Resolve(0,128,255) = %#v", got)
	}
}

func TestTransparencyTiers(t *testing.T) {
	const steps = 5
	tab := mustTable(t, map[string]string{"red": "255,0,0"})
	r := NewResolver(tab, WithAutoAlpha(steps))
	if err := r.Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}

	// Exactly steps+1 derived names on top of the base color.
	names := r.Names()
	if len(names) != steps+2 {
		t.Fatalf("universe = %v, want base + %d tiers", names, steps+1)
	}

	a0, err := r.Resolve("red_a0")
	if err != nil {
		t.Fatalf("Resolve(red_a0): %v", err)
	}
	if a0.A != 1 {
		t.Errorf("red_a0 opacity = %v, want 1 (transparency-disabled synonym)", a0.A)
	}

	a5, _ := r.Resolve("red_a5")
	if want := 1.0 / (steps + 1); !near(a5.A, want) {
		t.Errorf("red_a5 opacity = %v, want %v", a5.A, want)
	}
	a2, _ := r.Resolve("red_a2")
	if want := 1 - 2.0/(steps+1); !near(a2.A, want) {
		t.Errorf("red_a2 opacity = %v, want %v", a2.A, want)
	}

	// Tier channels reuse the base literal's channels.
	if a2.R != 255 || a2.G != 0 || a2.B != 0 {
		t.Errorf("red_a2 channels = (%d,%d,%d), want (255,0,0)", a2.R, a2.G, a2.B)
	}
}

func TestTransparencyTiers_NoRetier(t *testing.T) {
	tab := mustTable(t, map[string]string{
		"red":    "255,0,0",
		"odd_a1": "0,255,0",
	})
	r := NewResolver(tab, WithAutoAlpha(2))
	if err := r.Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}
	// Tier-suffixed names are never re-tiered.
	for _, name := range r.Names() {
		if strings.HasPrefix(name, "odd_a1_a") {
			t.Errorf("tier-suffixed name was re-tiered: %v", r.Names())
		}
	}
}

func TestResolve_ListColor(t *testing.T) {
	tab := mustTable(t, map[string]string{
		"chr1":   "255,0,0",
		"chr2":   "0,255,0",
		"chr10":  "0,0,255",
		"chrset": "rev(chr.*)",
	})
	r := NewResolver(tab)

	got, err := r.List("chrset")
	if err != nil {
		t.Fatalf("List(chrset): %v", err)
	}
	want := []string{"chr10", "chr2", "chr1"}
	if !slices.Equal(got, want) {
		t.Errorf("List(chrset) = %v, want %v", got, want)
	}

	// A list color dereferences to its first candidate's literal.
	lit, err := r.Resolve("chrset")
	if err != nil {
		t.Fatalf("Resolve(chrset): %v", err)
	}
	if lit != (Literal{B: 255, A: 1}) {
		t.Errorf("Resolve(chrset) = %#v, want chr10's literal", lit)
	}
}

func TestResolve_ListUnmatched(t *testing.T) {
	tab := mustTable(t, map[string]string{
		"red": "255,0,0",
		"bad": "nope[0-9]+",
	})
	err := NewResolver(tab).Build()
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("error = %v, want ErrNoMatch", err)
	}
	if !strings.Contains(err.Error(), "bad") || !strings.Contains(err.Error(), "nope[0-9]+") {
		t.Errorf("error must name the color and pattern: %v", err)
	}
}

// Resolving the same list pattern with an unchanged namespace must return
// identical ordered results whether or not the cache was used.
func TestListCache_ColdAndWarmAgree(t *testing.T) {
	defs := map[string]string{
		"chr1":   "255,0,0",
		"chr2":   "0,255,0",
		"chr10":  "0,0,255",
		"chrset": "chr.*",
	}
	store := &cache.MemStore{}

	cold := NewResolver(mustTable(t, defs), WithListCache(store))
	coldList, err := cold.List("chrset")
	if err != nil {
		t.Fatalf("cold List: %v", err)
	}

	// Second pass hits the populated store.
	warm := NewResolver(mustTable(t, defs), WithListCache(store))
	warmList, err := warm.List("chrset")
	if err != nil {
		t.Fatalf("warm List: %v", err)
	}
	if !slices.Equal(coldList, warmList) {
		t.Errorf("cold = %v, warm = %v", coldList, warmList)
	}

	// And both agree with a cacheless resolver.
	bare := NewResolver(mustTable(t, defs))
	bareList, err := bare.List("chrset")
	if err != nil {
		t.Fatalf("bare List: %v", err)
	}
	if !slices.Equal(coldList, bareList) {
		t.Errorf("cached = %v, uncached = %v", coldList, bareList)
	}
}

// A usable cache entry is trusted even when it disagrees with what a
// fresh match would produce; the fingerprint covers names, not values.
func TestListCache_HitMasksRecomputation(t *testing.T) {
	defs := map[string]string{
		"chr1":   "255,0,0",
		"chrset": "chr.*",
	}
	tab := mustTable(t, defs)

	store := &cache.MemStore{}
	fabricated := cache.Entry{
		Hash:  cache.NamespaceHash(tab.Names()),
		Lists: map[string][]string{"chrset": {"chr1", "chr1"}},
	}
	if err := store.Put(fabricated); err != nil {
		t.Fatalf("Put: %v", err)
	}

	r := NewResolver(tab, WithListCache(store))
	got, err := r.List("chrset")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !slices.Equal(got, fabricated.Lists["chrset"]) {
		t.Errorf("List = %v, want the cached entry verbatim", got)
	}
}

func TestListCache_RebuildIgnoresEntry(t *testing.T) {
	defs := map[string]string{
		"chr1":   "255,0,0",
		"chrset": "chr.*",
	}
	tab := mustTable(t, defs)

	store := &cache.MemStore{}
	if err := store.Put(cache.Entry{
		Hash:  cache.NamespaceHash(tab.Names()),
		Lists: map[string][]string{"chrset": {"bogus"}},
	}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	r := NewResolver(tab, WithListCache(store), WithRebuildCache())
	got, err := r.List("chrset")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !slices.Equal(got, []string{"chr1"}) {
		t.Errorf("List = %v, want rebuilt result", got)
	}
}

func TestResolver_SurfaceAllocation(t *testing.T) {
	tab := mustTable(t, map[string]string{
		"red":  "255,0,0",
		"rose": "red",
	})
	surface := NewPalettedSurface(0)
	r := NewResolver(tab, WithSurface(surface))
	if err := r.Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}

	// red and its alias share one opaque slot via exact-match dedup.
	if surface.Len() != 1 {
		t.Errorf("surface slots = %d, want 1", surface.Len())
	}
	redAC, ok := r.Allocator().Lookup("red")
	if !ok {
		t.Fatal("red not allocated")
	}
	roseAC, _ := r.Allocator().Lookup("rose")
	if redAC.Handle != roseAC.Handle {
		t.Errorf("alias handle %d != base handle %d", roseAC.Handle, redAC.Handle)
	}
}

func near(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
