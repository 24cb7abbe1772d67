// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package enum

import (
	"reflect"
	"sort"
)

// detached marks a member that was constructed but never registered.
const detached = -1

// Member is one constant of a Type. Members are created only by
// Type.Finalize and never change afterwards.
type Member struct {
	typ      *Type
	name     string
	ordinal  int
	value    any
	hasValue bool
	attrs    Attrs
}

// Name returns the member name.
func (m *Member) Name() string {
	return m.name
}

// Ordinal returns the zero-based declaration position, or -1 for a member
// constructed outside finalization.
func (m *Member) Ordinal() int {
	return m.ordinal
}

// Type returns the owning type.
func (m *Member) Type() *Type {
	return m.typ
}

// Value returns the member's declared value, or its position if none was
// declared. A Derived value is evaluated on each call.
func (m *Member) Value() any {
	return m.resolve(m.value)
}

// Attr returns an attribute by key, evaluating Derived attributes on demand.
// NameKey and ValueKey resolve to Name and Value.
func (m *Member) Attr(key string) (any, bool) {
	switch key {
	case NameKey:
		return m.name, true
	case ValueKey:
		return m.Value(), m.hasValue || m.ordinal != detached
	}
	v, ok := m.attrs[key]
	if !ok {
		return nil, false
	}
	return m.resolve(v), true
}

// resolve evaluates v if it is a Derived attribute.
func (m *Member) resolve(v any) any {
	switch d := v.(type) {
	case Derived:
		return d(m)
	case func(*Member) any:
		return d(m)
	default:
		return v
	}
}

// Keys returns the extra attribute keys in sorted order.
func (m *Member) Keys() []string {
	keys := make([]string, 0, len(m.attrs))
	for k := range m.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Is reports whether m and other are the same member.
func (m *Member) Is(other *Member) bool {
	return m == other
}

// String returns "<TypeName>.<MemberName>".
// A Member that did not come from a Type renders as its bare name.
func (m *Member) String() string {
	if m.typ == nil {
		return m.name
	}
	return m.typ.name + "." + m.name
}

// valueEqual compares with Go equality; values of different dynamic types
// or non-comparable values are never equal.
func valueEqual(a, b any) (eq bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	// structs holding non-comparable values in interface fields still panic
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}
