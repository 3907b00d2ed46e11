package ringviz

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Table maps color names to parsed definitions. Names are case-normalized
// to lowercase. A Table is built once per render pass and then handed to a
// [Resolver]; it is not safe for concurrent mutation.
type Table struct {
	defs map[string]Definition
}

// NewTable creates an empty color table.
func NewTable() *Table {
	return &Table{defs: make(map[string]Definition)}
}

// Define parses spec and binds it to name. Defining a name twice with the
// syntactically identical definition collapses to one entry with a
// warning; two distinct definitions for the same name are a hard error.
func (t *Table) Define(name, spec string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return fmt.Errorf("ringviz: empty color name")
	}
	def, err := ParseDefinition(strings.ToLower(spec))
	if err != nil {
		return fmt.Errorf("color %q: %w", name, err)
	}
	if prev, ok := t.defs[name]; ok {
		if prev == def {
			Logger().Warn("duplicate color definition", "color", name, "definition", spec)
			return nil
		}
		return fmt.Errorf("%w: %q defined as both %v and %v", ErrConflictingColor, name, prev, def)
	}
	t.defs[name] = def
	return nil
}

// DefineAll defines every name→spec pair in m. Pairs are applied in
// lexicographic name order so error reporting is deterministic.
func (t *Table) DefineAll(m map[string]string) error {
	for _, name := range slices.Sorted(maps.Keys(m)) {
		if err := t.Define(name, m[name]); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the definition bound to name, if any. The name is
// case-normalized before lookup.
func (t *Table) Lookup(name string) (Definition, bool) {
	def, ok := t.defs[strings.ToLower(name)]
	return def, ok
}

// Names returns all defined color names in lexicographic order.
func (t *Table) Names() []string {
	return slices.Sorted(maps.Keys(t.defs))
}

// Len returns the number of defined colors.
func (t *Table) Len() int { return len(t.defs) }
