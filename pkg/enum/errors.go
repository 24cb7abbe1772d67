// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package enum

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error codes attached to every error returned by this package.
const (
	CodeIllegalInstantiation = "ENUM_ILLEGAL_INSTANTIATION"
	CodeAlreadyFinalized     = "ENUM_ALREADY_FINALIZED"
	CodeInvalidDefinition    = "ENUM_INVALID_DEFINITION"
	CodeInvalidMemberName    = "ENUM_INVALID_MEMBER_NAME"
	CodeDuplicateMember      = "ENUM_DUPLICATE_MEMBER"
	CodeMemberNotFound       = "ENUM_MEMBER_NOT_FOUND"
	CodeAmbiguousMember      = "ENUM_AMBIGUOUS_MEMBER"
	CodeInvalidPattern       = "ENUM_INVALID_PATTERN"
)

// ErrIllegalInstantiation is returned when a member of a finalized type is
// constructed outside of finalization.
var ErrIllegalInstantiation = errors.New("enum types cannot be instantiated after finalization")

// ErrAlreadyFinalized is returned when Finalize is called a second time.
var ErrAlreadyFinalized = errors.New("enum type already finalized")

// ErrInvalidDefinition indicates a nil definition was passed to Finalize.
var ErrInvalidDefinition = errors.New("enum definition cannot be nil")

// ErrInvalidMemberName indicates a member name is empty or whitespace-only.
var ErrInvalidMemberName = errors.New("enum member name cannot be empty")

// ErrDuplicateMember indicates the definition names the same member twice.
var ErrDuplicateMember = errors.New("enum member already defined")

// ErrMemberNotFound indicates no member matched a name or prefix.
var ErrMemberNotFound = errors.New("enum member not found")

// ErrInvalidPattern indicates a glob pattern failed to compile.
var ErrInvalidPattern = errors.New("invalid member pattern")

// AmbiguousMemberError indicates multiple members match a prefix.
type AmbiguousMemberError struct {
	Type    string
	Prefix  string
	Matches []string
}

func (e *AmbiguousMemberError) Error() string {
	sorted := make([]string, len(e.Matches))
	copy(sorted, e.Matches)
	sort.Strings(sorted)
	return fmt.Sprintf("ambiguous %s member '%s' - matches: %s", e.Type, e.Prefix, strings.Join(sorted, ", "))
}
