// Package ringviz is the color-resolution and circular-geometry core of a
// ring-plot renderer.
//
// The package turns symbolic color specifications (literal RGB/HSV values,
// aliases, regular-expression list patterns) into concrete paint attributes,
// and turns angular/radial layout parameters into drawable path geometry.
//
// The main entry points are:
//
//   - [Table] and [Resolver]: build a color table from name→definition
//     pairs and resolve every name down to a concrete [Literal], including
//     alias chains, auto-generated transparency tiers and cached list
//     patterns.
//   - [Allocator] and [StyleBuilder]: map resolved literals onto an
//     abstract drawing [Surface] and compose stroke/fill/opacity attributes
//     into backend-agnostic [Style] records.
//   - [Wedge]: construct the boundary path of an annular wedge, handling
//     zero-span, zero-width and full-circle degenerate cases.
//
// Configuration parsing, data ingestion, font metrics and output encoding
// are deliberately out of scope; the package talks to them through narrow
// interfaces ([Surface], [cache.Store]) so a caller can plug in any backend.
//
// ringviz produces no log output by default. Call [SetLogger] to enable
// warnings about duplicate color definitions and cache failures.
package ringviz
