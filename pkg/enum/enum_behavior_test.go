// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package enum_test

import (
	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/holomush/holoenum/internal/enumtest"
	"github.com/holomush/holoenum/pkg/enum"
)

// attr returns an attribute value, failing when it is absent.
func attr(m *enum.Member, key string) any {
	GinkgoHelper()
	v, ok := m.Attr(key)
	Expect(ok).To(BeTrue(), "missing attribute %q on %s", key, m)
	return v
}

var _ = Describe("Enum", func() {
	Describe("declaring", func() {
		It("finalizes a declared type", func() {
			color := enum.New("Color")
			Expect(color.IsFinalized()).To(BeFalse())

			got, err := color.Finalize(enumtest.ColorNames)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeIdenticalTo(color))
			Expect(color.Contains(color.MustByName("RED"))).To(BeTrue())
		})

		It("creates and finalizes in one call", func() {
			color, err := enum.Create("Color", enumtest.ColorNames)
			Expect(err).NotTo(HaveOccurred())
			Expect(color.IsFinalized()).To(BeTrue())
			Expect(color.Contains(color.MustByName("RED"))).To(BeTrue())
		})
	})

	Describe("a name list", func() {
		var color *enum.Type

		BeforeEach(func() {
			color = enumtest.NewColor()
		})

		It("renders members as Type.Member", func() {
			Expect(color.MustByName("RED").String()).To(Equal("Color.RED"))
		})

		It("uses the ordinal as value", func() {
			Expect(color.MustByName("RED").Value()).To(Equal(0))
			Expect(color.MustByName("GREEN").Value()).To(Equal(1))
		})

		It("lists members in declaration order", func() {
			Expect(color.Values()).To(Equal([]*enum.Member{
				color.MustByName("RED"),
				color.MustByName("GREEN"),
				color.MustByName("BLUE"),
			}))
		})

		It("looks members up by ordinal", func() {
			green, ok := color.ByValue(1)
			Expect(ok).To(BeTrue())
			Expect(green).To(BeIdenticalTo(color.MustByName("GREEN")))
		})
	})

	Describe("a mapping", func() {
		It("keeps declared raw values", func() {
			color := enum.MustCreate("Color", enum.Mapping{
				{Name: "RED", Value: "#F00"},
				{Name: "GREEN", Value: "#0F0"},
				{Name: "BLUE", Value: "#00F"},
			})
			Expect(color.MustByName("RED").Value()).To(Equal("#F00"))
			Expect(color.MustByName("GREEN").Value()).To(Equal("#0F0"))
		})

		It("keeps values and extra fields from attribute bags", func() {
			color := enum.MustCreate("Color", enum.Mapping{
				{Name: "RED", Value: enum.Attrs{"value": "#F00", "alias": "red"}},
				{Name: "GREEN", Value: enum.Attrs{"value": "#0F0", "alias": "green"}},
				{Name: "BLUE", Value: enum.Attrs{"value": "#00F", "alias": "blue"}},
			})
			red := color.MustByName("RED")
			Expect(red.Value()).To(Equal("#F00"))
			Expect(attr(red, "alias")).To(Equal("red"))
			Expect(attr(color.MustByName("GREEN"), "alias")).To(Equal("green"))
		})

		It("applies the ordinal to bags without a value", func() {
			color := enum.MustCreate("Color", enum.Mapping{
				{Name: "RED", Value: enum.Attrs{"alias": "red"}},
				{Name: "GREEN", Value: enum.Attrs{"alias": "green"}},
				{Name: "BLUE", Value: enum.Attrs{"alias": "blue"}},
			})
			Expect(color.MustByName("RED").Value()).To(Equal(0))
			Expect(color.MustByName("GREEN").Value()).To(Equal(1))
			Expect(attr(color.MustByName("GREEN"), "alias")).To(Equal("green"))
		})

		It("looks members up by value and name", func() {
			color := enumtest.NewHexColor()

			green, ok := color.ByValue("#0F0")
			Expect(ok).To(BeTrue())
			Expect(green).To(BeIdenticalTo(color.MustByName("GREEN")))

			blue, ok := color.ByValue(2)
			Expect(ok).To(BeTrue())
			Expect(blue).To(BeIdenticalTo(color.MustByName("BLUE")))

			byName, ok := color.ByName("BLUE")
			Expect(ok).To(BeTrue())
			Expect(byName).To(BeIdenticalTo(blue))
		})
	})

	Describe("derived attributes", func() {
		ttt := enumtest.NewTicTacToe()

		It("resolve sibling members after finalization", func() {
			Expect(attr(ttt.MustByName("X"), "inverse")).To(BeIdenticalTo(ttt.MustByName("O")))
			Expect(attr(ttt.MustByName("O"), "inverse")).To(BeIdenticalTo(ttt.MustByName("X")))
		})

		It("renders and values like any member", func() {
			Expect(ttt.MustByName("O").String()).To(Equal("TicTacToe.O"))
			Expect(ttt.MustByName("O").Value()).To(Equal(0))
			Expect(ttt.MustByName("X").Value()).To(Equal(1))
		})
	})

	Describe("methods on a wrapping type", func() {
		It("dispatches on member identity", func() {
			Expect(enumtest.Saturday.IsBusinessDay()).To(BeFalse())
			Expect(enumtest.Monday.IsBusinessDay()).To(BeTrue())
		})

		It("lists all weekdays in order", func() {
			Expect(enumtest.Weekdays.Values()).To(Equal([]*enum.Member{
				enumtest.Monday.Member,
				enumtest.Tuesday.Member,
				enumtest.Wednesday.Member,
				enumtest.Thursday.Member,
				enumtest.Friday.Member,
				enumtest.Saturday.Member,
				enumtest.Sunday.Member,
			}))
		})
	})

	Describe("flags", func() {
		mode := enumtest.NewMode()

		It("combines raw values outside the type", func() {
			Expect(enumtest.Bits(mode, "USER_R", "USER_W", "USER_X", "GROUP_R", "GROUP_X", "ALL_R", "ALL_X")).
				To(Equal(0o755))
			Expect(enumtest.Bits(mode, "USER_R", "USER_W", "USER_X", "GROUP_R")).To(Equal(0o740))
		})

		It("keeps members in their type", func() {
			Expect(mode.Contains(mode.MustByName("USER_R"))).To(BeTrue())
			Expect(mode.Contains(mode.MustByName("ALL_X"))).To(BeTrue())
		})
	})

	Describe("closing", func() {
		It("rejects construction once finalized", func() {
			color := enumtest.NewColor()
			_, err := color.Construct(enum.Attrs{})
			Expect(err).To(MatchError(enum.ErrIllegalInstantiation))
		})

		It("rejects a second finalization", func() {
			color := enumtest.NewColor()
			_, err := color.Finalize(enum.Names{"CYAN"})
			Expect(err).To(MatchError(enum.ErrAlreadyFinalized))
			Expect(color.Names()).To(Equal([]string{"RED", "GREEN", "BLUE"}))
		})
	})
})
