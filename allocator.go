package ringviz

import (
	"fmt"
	"math"
)

// Handle is an opaque backend color slot identifier. Handles are valid
// only for the render pass that allocated them and must not outlive it.
type Handle int32

// Surface is the narrow interface a drawing backend exposes for color
// allocation. The rest of the backend (rasterization, encoding) is
// outside this package's scope.
type Surface interface {
	// Exact returns an already-allocated opaque slot with exactly the
	// given channels, if one exists.
	Exact(r, g, b uint8) (Handle, bool)

	// Allocate creates a new opaque color slot.
	Allocate(r, g, b uint8) (Handle, error)

	// AllocateAlpha creates a new alpha-capable slot. Transparency is in
	// backend units: 0 is opaque, 127 fully transparent.
	AllocateAlpha(r, g, b uint8, transparency int) (Handle, error)

	// Channels reads back the channel values of an existing slot.
	Channels(h Handle) (r, g, b uint8, transparency int, ok bool)
}

// AllocatedColor pairs a backend handle with the definition it was
// allocated from. Never mutated after allocation.
type AllocatedColor struct {
	Name   string
	Def    Literal
	Handle Handle
}

// Allocator maps resolved literals onto surface color slots, one table
// per render pass.
//
// Opaque allocations are deduplicated: re-requesting an identical RGB
// triple returns the existing handle. Alpha allocations are never
// deduplicated; exact-match lookup over the transparency axis is not
// worth the bookkeeping at backend granularity.
type Allocator struct {
	surface Surface
	byName  map[string]AllocatedColor
}

// NewAllocator creates an allocator over a surface.
func NewAllocator(s Surface) *Allocator {
	return &Allocator{
		surface: s,
		byName:  make(map[string]AllocatedColor),
	}
}

// Allocate returns a surface handle for a resolved literal. Re-requesting
// a name returns its existing handle. Allocation failure is fatal for the
// render pass.
func (a *Allocator) Allocate(name string, def Literal) (Handle, error) {
	if ac, ok := a.byName[name]; ok {
		if ac.Def != def {
			return 0, fmt.Errorf("%w: %q reallocated as %v, was %v", ErrConflictingColor, name, def, ac.Def)
		}
		return ac.Handle, nil
	}

	var (
		h   Handle
		err error
	)
	if def.Opaque() {
		var ok bool
		if h, ok = a.surface.Exact(def.R, def.G, def.B); !ok {
			h, err = a.surface.Allocate(def.R, def.G, def.B)
		}
	} else {
		t := int(math.Round((1 - def.A) * 127))
		if !Within(t, 0, 127) {
			return 0, fmt.Errorf("%w: color %q opacity %v", ErrAlphaRange, name, def.A)
		}
		h, err = a.surface.AllocateAlpha(def.R, def.G, def.B, t)
	}
	if err != nil {
		return 0, fmt.Errorf("allocate color %q (%v): %w", name, def, err)
	}

	a.byName[name] = AllocatedColor{Name: name, Def: def, Handle: h}
	return h, nil
}

// Lookup returns the allocation record for a name, if present.
func (a *Allocator) Lookup(name string) (AllocatedColor, bool) {
	ac, ok := a.byName[name]
	return ac, ok
}

// Channels reads back the surface channels behind a handle.
func (a *Allocator) Channels(h Handle) (r, g, b uint8, transparency int, ok bool) {
	return a.surface.Channels(h)
}

// Len returns the number of allocated names.
func (a *Allocator) Len() int { return len(a.byName) }
