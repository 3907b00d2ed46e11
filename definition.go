package ringviz

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Definition is one parsed color definition: a concrete literal, an alias
// for another color name, or a list pattern matched against the resolved
// name universe.
//
// This is a sealed interface - only types in this package implement it.
// All implementations are comparable value types, so two definitions can
// be compared with == when checking for conflicting redefinitions.
type Definition interface {
	// definitionMarker is an unexported method that seals this interface.
	definitionMarker()
}

// Literal is a fully resolved color: 8-bit RGB channels plus an opacity
// in [0,1], where 1 is fully opaque.
type Literal struct {
	R, G, B uint8
	A       float64
}

func (Literal) definitionMarker() {}

// Opaque reports whether the literal carries no transparency.
func (l Literal) Opaque() bool { return l.A >= 1 }

// String returns the literal in r,g,b[,a] form.
func (l Literal) String() string {
	if l.Opaque() {
		return fmt.Sprintf("%d,%d,%d", l.R, l.G, l.B)
	}
	return fmt.Sprintf("%d,%d,%d,%g", l.R, l.G, l.B, l.A)
}

// Alias is a color defined as another color's name. Chains of aliases are
// followed at resolve time; a chain that revisits a name is a cycle error.
type Alias struct {
	Target string
}

func (Alias) definitionMarker() {}

// ListPattern is a color defined as a regular expression over the set of
// already-resolved color names. Reversed patterns (the rev(...) wrapper)
// return their matches in reverse order.
type ListPattern struct {
	Pattern  string
	Reversed bool
}

func (ListPattern) definitionMarker() {}

// plainName matches a bare color name with no regex metacharacters.
// Anything else that is not literal syntax is treated as a list pattern.
var plainName = regexp.MustCompile(`^[a-z0-9_-]+$`)

// ParseDefinition parses one color definition string. Accepted forms:
//
//	255,0,0          RGB literal
//	255,0,0,100      RGB literal with integer alpha in [0,127]
//	255,0,0,0.5      RGB literal with fractional opacity in [0,1]
//	hsv(240,1,1[,a]) HSV literal, hue in degrees, s/v in [0,1]
//	#ff0000, #f00    hex literal
//	red              alias for another color name
//	rev(chr.*)       reversed list pattern
//	chr[0-9]+        list pattern
//
// The input is expected to be case-normalized already (see Table.Define).
// Malformed channel or alpha values are hard errors, not silent fallbacks
// to the alias form.
func ParseDefinition(spec string) (Definition, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, fmt.Errorf("ringviz: empty color definition")
	}

	if inner, ok := strings.CutPrefix(spec, "rev("); ok && strings.HasSuffix(inner, ")") {
		return ListPattern{Pattern: strings.TrimSuffix(inner, ")"), Reversed: true}, nil
	}

	if inner, ok := strings.CutPrefix(spec, "hsv("); ok && strings.HasSuffix(inner, ")") {
		return parseHSV(strings.TrimSuffix(inner, ")"))
	}

	if strings.HasPrefix(spec, "#") {
		c, err := colorful.Hex(spec)
		if err != nil {
			return nil, fmt.Errorf("ringviz: bad hex color %q: %w", spec, err)
		}
		r, g, b := c.RGB255()
		return Literal{R: r, G: g, B: b, A: 1}, nil
	}

	if strings.Contains(spec, ",") {
		return parseRGB(spec)
	}

	if plainName.MatchString(spec) {
		return Alias{Target: spec}, nil
	}
	return ListPattern{Pattern: spec}, nil
}

// parseRGB parses the r,g,b[,a] literal form.
func parseRGB(spec string) (Definition, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return nil, fmt.Errorf("ringviz: bad rgb definition %q: want 3 or 4 components", spec)
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || !Within(v, 0, 255) {
			return nil, fmt.Errorf("ringviz: bad rgb channel %q in %q", parts[i], spec)
		}
		ch[i] = uint8(v)
	}
	a := 1.0
	if len(parts) == 4 {
		var err error
		a, err = parseAlpha(strings.TrimSpace(parts[3]))
		if err != nil {
			return nil, fmt.Errorf("%w in %q", err, spec)
		}
	}
	return Literal{R: ch[0], G: ch[1], B: ch[2], A: a}, nil
}

// parseHSV parses the h,s,v[,a] component list of an hsv(...) literal.
func parseHSV(body string) (Definition, error) {
	parts := strings.Split(body, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return nil, fmt.Errorf("ringviz: bad hsv definition %q: want 3 or 4 components", body)
	}
	var f [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil || !IsFinite(v) {
			return nil, fmt.Errorf("ringviz: bad hsv component %q in %q", parts[i], body)
		}
		f[i] = v
	}
	if !Within(f[1], 0, 1) || !Within(f[2], 0, 1) {
		return nil, fmt.Errorf("ringviz: hsv saturation/value out of [0,1] in %q", body)
	}
	a := 1.0
	if len(parts) == 4 {
		var err error
		a, err = parseAlpha(strings.TrimSpace(parts[3]))
		if err != nil {
			return nil, fmt.Errorf("%w in %q", err, body)
		}
	}
	r, g, b := HSVToRGB(f[0], f[1], f[2])
	return Literal{R: r, G: g, B: b, A: a}, nil
}

// parseAlpha parses an alpha component. Two forms are accepted: a fraction
// in [0,1] interpreted as opacity (1 = opaque), or an integer in [0,127]
// in backend transparency units (0 = opaque, 127 = fully transparent),
// converted to opacity. Anything outside those ranges is a hard error.
func parseAlpha(tok string) (float64, error) {
	if strings.ContainsAny(tok, ".eE") {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil || !IsFinite(f) {
			return 0, fmt.Errorf("%w: bad alpha %q", ErrAlphaRange, tok)
		}
		if !Within(f, 0, 1) {
			return 0, fmt.Errorf("%w: fractional alpha %v not in [0,1]", ErrAlphaRange, f)
		}
		return f, nil
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: bad alpha %q", ErrAlphaRange, tok)
	}
	if n == 1 {
		// Bare "1" reads as full opacity, not as 1/127 transparency.
		return 1, nil
	}
	if !Within(n, 0, 127) {
		return 0, fmt.Errorf("%w: integer alpha %d not in [0,127]", ErrAlphaRange, n)
	}
	return 1 - float64(n)/127, nil
}
