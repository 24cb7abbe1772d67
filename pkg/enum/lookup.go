// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package enum

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
	"github.com/samber/oops"
)

// ByValue returns the first member, in declaration order, whose value
// equals v.
func (t *Type) ByValue(v any) (*Member, bool) {
	for _, m := range t.sequence() {
		if valueEqual(m.Value(), v) {
			return m, true
		}
	}
	return nil, false
}

// ByName returns the member with the given name.
func (t *Type) ByName(name string) (*Member, bool) {
	if !t.finalized.Load() {
		return nil, false
	}
	m, ok := t.byName[name]
	return m, ok
}

// MustByName returns the member with the given name, panicking if there is
// none. Use it to bind members to package-level variables:
//
//	var Colors = enum.MustCreate("Color", enum.Names{"RED", "GREEN", "BLUE"})
//
//	var (
//		Red   = Colors.MustByName("RED")
//		Green = Colors.MustByName("GREEN")
//		Blue  = Colors.MustByName("BLUE")
//	)
func (t *Type) MustByName(name string) *Member {
	m, ok := t.ByName(name)
	if !ok {
		panic(fmt.Sprintf("enum %s has no member %q", t.name, name))
	}
	return m
}

// Resolve finds a member by exact name or unique prefix.
// Returns an error wrapping *AmbiguousMemberError if multiple members match.
// Returns ErrMemberNotFound if no members match.
func (t *Type) Resolve(nameOrPrefix string) (*Member, error) {
	// Exact match first
	if m, ok := t.ByName(nameOrPrefix); ok {
		return m, nil
	}

	var matches []*Member
	if nameOrPrefix != "" {
		for _, m := range t.sequence() {
			if strings.HasPrefix(m.name, nameOrPrefix) {
				matches = append(matches, m)
			}
		}
	}

	switch len(matches) {
	case 0:
		return nil, oops.Code(CodeMemberNotFound).
			With("type", t.name).
			With("prefix", nameOrPrefix).
			Wrap(ErrMemberNotFound)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m.name
		}
		return nil, oops.Code(CodeAmbiguousMember).
			With("type", t.name).
			With("prefix", nameOrPrefix).
			Wrap(&AmbiguousMemberError{Type: t.name, Prefix: nameOrPrefix, Matches: names})
	}
}

// Match returns the members whose names match a glob pattern, in
// declaration order.
func (t *Type) Match(pattern string) ([]*Member, error) {
	compiled, err := glob.Compile(pattern)
	if err != nil {
		return nil, oops.Code(CodeInvalidPattern).
			With("type", t.name).
			With("pattern", pattern).
			Wrapf(ErrInvalidPattern, "%s", err.Error())
	}

	var matches []*Member
	for _, m := range t.sequence() {
		if compiled.Match(m.name) {
			matches = append(matches, m)
		}
	}
	return matches, nil
}
