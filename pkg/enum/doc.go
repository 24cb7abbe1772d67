// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package enum provides closed enumerated types built at runtime.
//
// A [Type] holds an ordered set of named [Member] singletons. Members are
// created all at once by [Type.Finalize] (or [Create], which declares and
// finalizes in one step) and never change afterwards:
//
//	var Colors = enum.MustCreate("Color", enum.Mapping{
//		{Name: "RED", Value: "#F00"},
//		{Name: "GREEN", Value: "#0F0"},
//		{Name: "BLUE", Value: enum.Attrs{"alias": "blue"}},
//	})
//
//	Colors.MustByName("RED").String() // "Color.RED"
//	Colors.MustByName("BLUE").Value() // 2, its position
//
// # Definitions
//
// [Names] declares members by name; each value is the member's zero-based
// position. [Mapping] declares ordered name/value pairs where a value is
// either raw data or an [Attrs] bag. A bag's "value" key sets the member
// value and any other key becomes an extra attribute read with
// [Member.Attr]. A [Derived] attribute is evaluated on every read, so it
// can refer to sibling members that did not exist when the bag was built.
//
// # Lifecycle
//
// A Type moves from open to finalized exactly once. A second Finalize
// returns [ErrAlreadyFinalized]; [Type.Construct] on a finalized type
// returns [ErrIllegalInstantiation]. A Finalize that fails validation
// leaves the type open and unchanged. Errors carry samber/oops codes
// (see the Code constants).
//
// Lookups ([Type.ByName], [Type.ByValue]) report absence with a false
// second result rather than an error. Flag-style composition is left to
// callers: combine raw member values yourself.
package enum
