// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package enum

// Attribute keys with special meaning inside an Attrs bag.
const (
	NameKey  = "name"
	ValueKey = "value"
)

// Attrs is an attribute bag copied onto a member at construction.
// ValueKey sets the member's value; NameKey is ignored because names are
// assigned only by finalization. Every other key becomes an extra attribute.
type Attrs map[string]any

// Derived is an attribute computed from its member each time it is read.
// It may reach sibling members through m.Type(), which are all registered
// by the time any member can be read.
type Derived func(m *Member) any

// Definition describes the members to create in Finalize.
// Implemented by Names and Mapping.
type Definition interface {
	entries() []entry
}

type entry struct {
	name  string
	attrs Attrs
}

// Names defines members by name only; each value defaults to the member's
// zero-based position.
type Names []string

func (n Names) entries() []entry {
	out := make([]entry, len(n))
	for i, name := range n {
		out[i] = entry{name: name}
	}
	return out
}

// Entry is one name/value pair of a Mapping. Value is either an attribute
// bag (Attrs or map[string]any) or a raw value, which is treated as
// Attrs{ValueKey: Value}. A nil Value leaves the value to default to the
// member's position.
type Entry struct {
	Name  string
	Value any
}

// Mapping defines members from ordered name/value pairs. Declaration order
// is the slice order.
type Mapping []Entry

func (m Mapping) entries() []entry {
	out := make([]entry, len(m))
	for i, e := range m {
		out[i] = entry{name: e.Name, attrs: asAttrs(e.Value)}
	}
	return out
}

func asAttrs(v any) Attrs {
	switch bag := v.(type) {
	case nil:
		return nil
	case Attrs:
		return bag
	case map[string]any:
		return Attrs(bag)
	default:
		return Attrs{ValueKey: v}
	}
}
