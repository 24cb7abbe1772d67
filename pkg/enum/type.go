// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package enum

import (
	"iter"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/samber/oops"

	"github.com/holomush/holoenum/internal/logging"
	"github.com/holomush/holoenum/pkg/errutil"
)

// Type is a closed, named set of members.
//
// A Type starts open and becomes finalized by exactly one successful call
// to Finalize. After that its member sequence never changes and all read
// methods are safe for concurrent use without locking. Read methods on an
// open Type behave as if it had no members.
//
// The zero value is an open Type with an empty display name.
type Type struct {
	name   string
	logger *slog.Logger

	mu        sync.Mutex // serializes Finalize
	finalized atomic.Bool
	members   []*Member
	byName    map[string]*Member
}

// New declares an open Type with the given display name.
func New(name string, opts ...Option) *Type {
	cfg := config{logger: logging.Component("enum", nil)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Type{
		name:   name,
		logger: cfg.logger,
	}
}

// Create declares a Type and finalizes it with def in one call.
func Create(name string, def Definition, opts ...Option) (*Type, error) {
	return New(name, opts...).Finalize(def)
}

// MustCreate is like Create but panics on error.
// It is intended for package-level variable declarations.
func MustCreate(name string, def Definition, opts ...Option) *Type {
	t, err := Create(name, def, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// log returns the configured logger, or the default for a zero-value Type.
func (t *Type) log() *slog.Logger {
	if t.logger == nil {
		return logging.Component("enum", nil)
	}
	return t.logger
}

// Name returns the display name.
func (t *Type) Name() string {
	return t.name
}

// String returns the display name.
func (t *Type) String() string {
	return t.name
}

// IsFinalized reports whether Finalize has succeeded.
func (t *Type) IsFinalized() bool {
	return t.finalized.Load()
}

// Construct creates a member from attrs without registering it.
// Returns ErrIllegalInstantiation once the type is finalized; members of a
// finalized type only come from Finalize.
func (t *Type) Construct(attrs Attrs) (*Member, error) {
	if t.finalized.Load() {
		err := oops.Code(CodeIllegalInstantiation).
			With("type", t.name).
			Wrap(ErrIllegalInstantiation)
		errutil.LogWarn(t.log(), "rejected enum instantiation", err)
		return nil, err
	}
	return t.construct(attrs), nil
}

func (t *Type) construct(attrs Attrs) *Member {
	m := &Member{typ: t, ordinal: detached}
	for k, v := range attrs {
		switch k {
		case NameKey:
		case ValueKey:
			if v != nil {
				m.value = v
				m.hasValue = true
			}
		default:
			if m.attrs == nil {
				m.attrs = make(Attrs, len(attrs))
			}
			m.attrs[k] = v
		}
	}
	return m
}

// Finalize creates every member described by def, in order, and closes the
// type. It returns ErrAlreadyFinalized on a second call. On any error the
// type is left open and unchanged so Finalize may be retried.
func (t *Type) Finalize(def Definition) (*Type, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.populate(def); err != nil {
		errutil.LogWarn(t.log(), "rejected enum finalization", err)
		return nil, err
	}

	t.log().Debug("enum finalized",
		"type", t.name,
		"members", len(t.members))
	return t, nil
}

// populate builds the member sequence and closes the type. The caller
// holds t.mu. Nothing is assigned unless every member registers.
func (t *Type) populate(def Definition) error {
	if t.finalized.Load() {
		return oops.Code(CodeAlreadyFinalized).
			With("type", t.name).
			Wrap(ErrAlreadyFinalized)
	}
	if def == nil {
		return oops.Code(CodeInvalidDefinition).
			With("type", t.name).
			Wrap(ErrInvalidDefinition)
	}

	entries := def.entries()
	members := make([]*Member, 0, len(entries))
	byName := make(map[string]*Member, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.name) == "" {
			return oops.Code(CodeInvalidMemberName).
				With("type", t.name).
				With("position", len(members)).
				Wrap(ErrInvalidMemberName)
		}
		if _, exists := byName[e.name]; exists {
			return oops.Code(CodeDuplicateMember).
				With("type", t.name).
				With("member", e.name).
				Wrap(ErrDuplicateMember)
		}
		members = register(members, t.construct(e.attrs), e.name)
		byName[e.name] = members[len(members)-1]
	}

	t.members = slices.Clip(members)
	t.byName = byName
	t.finalized.Store(true)
	return nil
}

// MustFinalize is like Finalize but panics on error.
// It is intended for package initialization only.
func (t *Type) MustFinalize(def Definition) *Type {
	if _, err := t.Finalize(def); err != nil {
		panic(err)
	}
	return t
}

// register names m, defaults its value to its position and appends it.
func register(members []*Member, m *Member, name string) []*Member {
	m.name = name
	m.ordinal = len(members)
	if !m.hasValue {
		m.value = len(members)
	}
	return append(members, m)
}

// sequence returns the member slice, or nil while the type is open.
// The returned slice must not be modified.
func (t *Type) sequence() []*Member {
	if !t.finalized.Load() {
		return nil
	}
	return t.members
}

// Len returns the number of members.
func (t *Type) Len() int {
	return len(t.sequence())
}

// Values returns a copy of the members in declaration order.
func (t *Type) Values() []*Member {
	return slices.Clone(t.sequence())
}

// Names returns the member names in declaration order.
func (t *Type) Names() []string {
	seq := t.sequence()
	names := make([]string, len(seq))
	for i, m := range seq {
		names[i] = m.name
	}
	return names
}

// All iterates over position/member pairs in declaration order.
func (t *Type) All() iter.Seq2[int, *Member] {
	return func(yield func(int, *Member) bool) {
		for i, m := range t.sequence() {
			if !yield(i, m) {
				return
			}
		}
	}
}

// Members iterates over the members in declaration order.
func (t *Type) Members() iter.Seq[*Member] {
	return func(yield func(*Member) bool) {
		for _, m := range t.sequence() {
			if !yield(m) {
				return
			}
		}
	}
}

// Contains reports whether m is a registered member of t.
func (t *Type) Contains(m *Member) bool {
	if m == nil || m.typ != t || m.ordinal == detached {
		return false
	}
	seq := t.sequence()
	return m.ordinal < len(seq) && seq[m.ordinal] == m
}
