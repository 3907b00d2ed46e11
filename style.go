package ringviz

import (
	"fmt"
	"strconv"
)

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// TextAnchor specifies how text aligns to its anchor point.
type TextAnchor int

const (
	// TextAnchorStart aligns the start of the text to the anchor.
	TextAnchorStart TextAnchor = iota
	// TextAnchorMiddle centers the text on the anchor.
	TextAnchorMiddle
	// TextAnchorEnd aligns the end of the text to the anchor.
	TextAnchorEnd
)

// Style is a backend-agnostic paint-style record. HasStroke and HasFill
// are explicit markers: a Style without fill means "no fill", not "fill
// with the zero handle".
type Style struct {
	HasStroke     bool
	StrokeWidth   float64
	Stroke        Handle
	StrokeOpacity float64

	HasFill     bool
	Fill        Handle
	FillOpacity float64

	LineCap    LineCap
	TextAnchor TextAnchor
}

// StyleParams are the symbolic inputs composed into a Style. Zero values
// mean "absent": stroke attributes are emitted only when Thickness is
// nonzero and a stroke color is given, fill attributes only when a fill
// color is given.
type StyleParams struct {
	Thickness   float64
	StrokeColor string
	FillColor   string
	LineCap     LineCap
	TextAnchor  TextAnchor
}

// StyleBuilder composes Style records, resolving color references through
// a Resolver and its surface allocator.
type StyleBuilder struct {
	resolver *Resolver
}

// NewStyleBuilder creates a builder over a resolver. The resolver must
// have a surface attached (see WithSurface); handles in the produced
// styles come from that surface.
func NewStyleBuilder(r *Resolver) *StyleBuilder {
	return &StyleBuilder{resolver: r}
}

// Build composes a Style from symbolic parameters. Color names are
// resolved and allocated; an undefined color is fatal at this point.
func (b *StyleBuilder) Build(p StyleParams) (Style, error) {
	s := Style{
		LineCap:    p.LineCap,
		TextAnchor: p.TextAnchor,
	}

	if p.Thickness != 0 && p.StrokeColor != "" {
		h, opacity, err := b.paint(p.StrokeColor)
		if err != nil {
			return Style{}, fmt.Errorf("stroke: %w", err)
		}
		s.HasStroke = true
		s.StrokeWidth = p.Thickness
		s.Stroke = h
		s.StrokeOpacity = opacity
	}

	if p.FillColor != "" {
		h, opacity, err := b.paint(p.FillColor)
		if err != nil {
			return Style{}, fmt.Errorf("fill: %w", err)
		}
		s.HasFill = true
		s.Fill = h
		s.FillOpacity = opacity
	}
	return s, nil
}

// paint resolves one color reference to a handle and an opacity.
func (b *StyleBuilder) paint(name string) (Handle, float64, error) {
	lit, err := b.resolver.Resolve(name)
	if err != nil {
		return 0, 0, err
	}
	alloc := b.resolver.Allocator()
	if alloc == nil {
		return 0, 0, fmt.Errorf("ringviz: style builder requires a resolver with a surface")
	}
	h, err := alloc.Allocate(name, lit)
	if err != nil {
		return 0, 0, err
	}
	return h, b.opacityFor(name, lit), nil
}

// opacityFor derives a color's opacity from the tier-suffix convention:
// a _aN suffix implies 1 - N/(steps+1). Without a suffix, the literal's
// own alpha decides (1 for an opaque literal).
func (b *StyleBuilder) opacityFor(name string, lit Literal) float64 {
	if m := tierSuffix.FindStringSubmatch(name); m != nil && b.resolver.cfg.autoAlpha {
		n, err := strconv.Atoi(m[1])
		if err == nil && n <= b.resolver.cfg.alphaSteps {
			return 1 - float64(n)/float64(b.resolver.cfg.alphaSteps+1)
		}
	}
	return lit.A
}
