// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package enumtest

import "github.com/holomush/holoenum/pkg/enum"

// ColorNames are the names used by the Color fixtures.
var ColorNames = enum.Names{"RED", "GREEN", "BLUE"}

// NewColor returns a fresh Color type defined by name only.
func NewColor(opts ...enum.Option) *enum.Type {
	return enum.MustCreate("Color", ColorNames, opts...)
}

// NewHexColor returns a fresh Color type with two raw values and one
// attribute bag without a value.
func NewHexColor(opts ...enum.Option) *enum.Type {
	return enum.MustCreate("Color", enum.Mapping{
		{Name: "RED", Value: "#F00"},
		{Name: "GREEN", Value: "#0F0"},
		{Name: "BLUE", Value: enum.Attrs{"alias": "blue"}},
	}, opts...)
}

// NewTicTacToe returns a type whose members point at each other through a
// derived "inverse" attribute.
func NewTicTacToe() *enum.Type {
	inverseOf := func(name string) enum.Derived {
		return func(m *enum.Member) any {
			return m.Type().MustByName(name)
		}
	}
	return enum.MustCreate("TicTacToe", enum.Mapping{
		{Name: "O", Value: enum.Attrs{"inverse": inverseOf("X")}},
		{Name: "X", Value: enum.Attrs{"inverse": inverseOf("O")}},
	})
}

// Weekdays is the finalized Weekday type.
var Weekdays = enum.MustCreate("Weekday", enum.Names{
	"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY",
})

// Weekday adds behavior to a Weekdays member.
type Weekday struct {
	*enum.Member
}

// Weekday members.
var (
	Monday    = Weekday{Weekdays.MustByName("MONDAY")}
	Tuesday   = Weekday{Weekdays.MustByName("TUESDAY")}
	Wednesday = Weekday{Weekdays.MustByName("WEDNESDAY")}
	Thursday  = Weekday{Weekdays.MustByName("THURSDAY")}
	Friday    = Weekday{Weekdays.MustByName("FRIDAY")}
	Saturday  = Weekday{Weekdays.MustByName("SATURDAY")}
	Sunday    = Weekday{Weekdays.MustByName("SUNDAY")}
)

// IsBusinessDay is false for Saturday and Sunday.
func (d Weekday) IsBusinessDay() bool {
	switch d.Member {
	case Saturday.Member, Sunday.Member:
		return false
	default:
		return true
	}
}

// NewMode returns permission bits as raw integer values.
func NewMode() *enum.Type {
	return enum.MustCreate("Mode", enum.Mapping{
		{Name: "USER_R", Value: 0b100000000},
		{Name: "USER_W", Value: 0b010000000},
		{Name: "USER_X", Value: 0b001000000},
		{Name: "GROUP_R", Value: 0b000100000},
		{Name: "GROUP_W", Value: 0b000010000},
		{Name: "GROUP_X", Value: 0b000001000},
		{Name: "ALL_R", Value: 0b000000100},
		{Name: "ALL_W", Value: 0b000000010},
		{Name: "ALL_X", Value: 0b000000001},
	})
}

// Bits ORs the integer values of the named members.
func Bits(t *enum.Type, names ...string) int {
	var bits int
	for _, name := range names {
		bits |= t.MustByName(name).Value().(int)
	}
	return bits
}
