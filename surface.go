package ringviz

import "fmt"

// paletteSlot is one allocated color slot of a PalettedSurface.
type paletteSlot struct {
	r, g, b      uint8
	transparency int
}

// PalettedSurface is an in-memory Surface with a bounded palette, in the
// manner of indexed-color raster backends. It is the default surface used
// in tests and a reference for implementing real backends.
type PalettedSurface struct {
	capacity int
	slots    []paletteSlot
}

// DefaultPaletteCapacity bounds the reference surface's palette.
const DefaultPaletteCapacity = 256

// NewPalettedSurface creates a surface with the given palette capacity.
// Non-positive capacity uses DefaultPaletteCapacity.
func NewPalettedSurface(capacity int) *PalettedSurface {
	if capacity <= 0 {
		capacity = DefaultPaletteCapacity
	}
	return &PalettedSurface{capacity: capacity}
}

// Exact implements Surface.
func (s *PalettedSurface) Exact(r, g, b uint8) (Handle, bool) {
	for i, slot := range s.slots {
		if slot.transparency == 0 && slot.r == r && slot.g == g && slot.b == b {
			return Handle(i), true
		}
	}
	return 0, false
}

// Allocate implements Surface.
func (s *PalettedSurface) Allocate(r, g, b uint8) (Handle, error) {
	return s.push(paletteSlot{r: r, g: g, b: b})
}

// AllocateAlpha implements Surface.
func (s *PalettedSurface) AllocateAlpha(r, g, b uint8, transparency int) (Handle, error) {
	if !Within(transparency, 0, 127) {
		return 0, fmt.Errorf("%w: transparency %d", ErrAlphaRange, transparency)
	}
	return s.push(paletteSlot{r: r, g: g, b: b, transparency: transparency})
}

// Channels implements Surface.
func (s *PalettedSurface) Channels(h Handle) (r, g, b uint8, transparency int, ok bool) {
	if h < 0 || int(h) >= len(s.slots) {
		return 0, 0, 0, 0, false
	}
	slot := s.slots[h]
	return slot.r, slot.g, slot.b, slot.transparency, true
}

// Len returns the number of allocated slots.
func (s *PalettedSurface) Len() int { return len(s.slots) }

func (s *PalettedSurface) push(slot paletteSlot) (Handle, error) {
	if len(s.slots) >= s.capacity {
		return 0, fmt.Errorf("%w: %d slots in use", ErrSurfaceExhausted, len(s.slots))
	}
	s.slots = append(s.slots, slot)
	return Handle(len(s.slots) - 1), nil
}
