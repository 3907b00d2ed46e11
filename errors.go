package ringviz

import "errors"

// Sentinel errors returned by the color pipeline. Callers match them with
// errors.Is; the returned errors wrap these with the offending color name
// and value.
var (
	// ErrColorCycle is returned when an alias chain revisits a name.
	ErrColorCycle = errors.New("ringviz: color alias cycle")

	// ErrUndefinedColor is returned when a name matches no literal syntax,
	// no alias target and no resolvable list pattern.
	ErrUndefinedColor = errors.New("ringviz: undefined color")

	// ErrConflictingColor is returned when a name is given two distinct
	// definitions. Identical duplicate definitions collapse with a warning.
	ErrConflictingColor = errors.New("ringviz: conflicting color definition")

	// ErrAlphaRange is returned for an alpha channel outside [0,1] as a
	// fraction or [0,127] as an integer.
	ErrAlphaRange = errors.New("ringviz: alpha out of range")

	// ErrNoMatch is returned when a list pattern matches no candidate name.
	ErrNoMatch = errors.New("ringviz: list pattern matched no colors")

	// ErrSurfaceExhausted is returned when the drawing surface cannot
	// allocate another color slot. Fatal for the render pass.
	ErrSurfaceExhausted = errors.New("ringviz: surface color table exhausted")
)
