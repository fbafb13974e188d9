// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"golang.org/x/exp/shiny/materialdesign/icons"
	"golang.org/x/image/colornames"

	"github.com/sheet/draggablebottomsheet/sheet"
	sheetmaterial "github.com/sheet/draggablebottomsheet/widget/material"
	sheetwidget "github.com/sheet/draggablebottomsheet/widget"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var pageColors = []color.RGBA{
	colornames.Thistle,
	colornames.Palegoldenrod,
	colornames.Paleturquoise,
}

// UI is the demo screen: a grid of tiles and a menu button
// opening a sheet with tabbed content.
type UI struct {
	theme  *material.Theme
	config Config

	dir        sheet.Direction
	scrim      color.RGBA
	background color.RGBA

	menu     widget.Clickable
	menuIcon *widget.Icon

	// sheet is nil while no sheet is shown.
	sheet *sheetwidget.Sheet

	tabs    [3]widget.Clickable
	page    int
	pager   Pager
	list    layout.List
	buttons [3]widget.Clickable
}

func newUI(th *material.Theme, cfg Config) (*UI, error) {
	dir, err := parseDirection(cfg.Direction)
	if err != nil {
		return nil, err
	}
	scrim, err := parseColor(cfg.Scrim, sheetmaterial.Sheet(th, nil).ScrimColor)
	if err != nil {
		return nil, err
	}
	background, err := parseColor(cfg.Background, colornames.White)
	if err != nil {
		return nil, err
	}
	ic, err := widget.NewIcon(icons.NavigationMenu)
	if err != nil {
		return nil, err
	}
	return &UI{
		theme:      th,
		config:     cfg,
		dir:        dir,
		scrim:      scrim,
		background: background,
		menuIcon:   ic,
		list:       layout.List{Axis: layout.Vertical},
	}, nil
}

// open shows a new sheet.
func (u *UI) open() {
	u.sheet = &sheetwidget.Sheet{
		Direction: u.dir,
		UseOffset: u.config.UseOffset,
	}
	u.page = 0
	u.pager = Pager{}
}

// back closes the open sheet. It reports whether there was a
// sheet to close.
func (u *UI) back() bool {
	if u.sheet == nil {
		return false
	}
	u.sheet = nil
	return true
}

func (u *UI) Layout(gtx C) D {
	for u.menu.Clicked() {
		if u.sheet == nil {
			u.open()
		}
	}
	if u.sheet != nil && u.sheet.Dismissed() {
		u.sheet = nil
	}

	size := gtx.Constraints.Max
	gtx.Constraints = layout.Exact(size)
	u.layoutMain(gtx)
	if u.sheet != nil {
		u.layoutSheet(gtx)
	}
	return D{Size: size}
}

func (u *UI) layoutMain(gtx C) D {
	fill(gtx, colornames.White, gtx.Constraints.Max)
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return layout.Inset{Top: unit.Dp(20), Right: unit.Dp(20)}.Layout(gtx, func(gtx C) D {
				return layout.NE.Layout(gtx, func(gtx C) D {
					btn := material.IconButton(u.theme, &u.menu, u.menuIcon)
					btn.Background = colornames.White
					btn.Color = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
					btn.Size = unit.Dp(24)
					btn.Inset = layout.UniformInset(unit.Dp(3))
					return btn.Layout(gtx)
				})
			})
		}),
		layout.Flexed(1, func(gtx C) D {
			return layout.Inset{Top: unit.Dp(20), Left: unit.Dp(20), Right: unit.Dp(20)}.Layout(gtx, u.layoutGrid)
		}),
	)
}

// layoutGrid lays out two columns of tiles in the page colors.
func (u *UI) layoutGrid(gtx C) D {
	var rows []layout.FlexChild
	for i, col := range pageColors {
		col := col
		if i > 0 {
			rows = append(rows, layout.Rigid(spacer(unit.Px(0), unit.Dp(10))))
		}
		rows = append(rows, layout.Rigid(func(gtx C) D {
			tile := func(gtx C) D {
				sz := image.Pt(gtx.Constraints.Max.X, gtx.Px(unit.Dp(180)))
				rounded(gtx, col, sz, float32(gtx.Px(unit.Dp(10))))
				return D{Size: sz}
			}
			return layout.Flex{}.Layout(gtx,
				layout.Flexed(1, tile),
				layout.Rigid(spacer(unit.Dp(15), unit.Px(0))),
				layout.Flexed(1, tile),
			)
		}))
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, rows...)
}

func (u *UI) layoutSheet(gtx C) D {
	st := sheetmaterial.Sheet(u.theme, u.sheet)
	st.MaxWidth = u.config.MaxWidth
	if w := u.config.BottomMaxWidth; w > 0 {
		st.BottomMaxWidth = unit.Dp(w)
	}
	st.ScrimColor = u.scrim
	st.Background = u.background
	r := unit.Dp(u.config.CornerRadius)
	var in layout.Inset
	switch u.dir {
	case sheet.Left:
		st.Corners = sheetmaterial.Corners{NE: r, SE: r}
		in = layout.Inset{Top: unit.Dp(15), Left: unit.Dp(20), Bottom: unit.Dp(15)}
	case sheet.Right:
		st.Corners = sheetmaterial.Corners{NW: r, SW: r}
		in = layout.Inset{Top: unit.Dp(15), Right: unit.Dp(20), Bottom: unit.Dp(15)}
	default:
		st.Corners = sheetmaterial.Corners{NW: r, NE: r}
		in = layout.Inset{Left: unit.Dp(20), Right: unit.Dp(20), Bottom: unit.Dp(15)}
	}
	return st.Layout(gtx, func(gtx C) D {
		return in.Layout(gtx, u.layoutSheetContent)
	})
}

func (u *UI) layoutSheetContent(gtx C) D {
	for i := range u.tabs {
		for u.tabs[i].Clicked() {
			switch {
			case i > u.page:
				u.pager.Forward()
			case i < u.page:
				u.pager.Back()
			}
			u.page = i
		}
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(u.layoutTabs),
		layout.Flexed(1, func(gtx C) D {
			return u.pager.Layout(gtx, u.layoutPage)
		}),
		layout.Rigid(u.layoutButtons),
	)
}

func (u *UI) layoutTabs(gtx C) D {
	var tabs []layout.FlexChild
	for i := range u.tabs {
		i := i
		tabs = append(tabs, layout.Flexed(1, func(gtx C) D {
			return layout.Stack{Alignment: layout.S}.Layout(gtx,
				layout.Stacked(func(gtx C) D {
					return material.Clickable(gtx, &u.tabs[i], func(gtx C) D {
						gtx.Constraints.Min.X = gtx.Constraints.Max.X
						return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx C) D {
							l := material.Body2(u.theme, fmt.Sprintf("Tab%d", i+1))
							l.Color = color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}
							if i == u.page {
								l.Color = color.RGBA{A: 0xff}
							}
							return layout.Center.Layout(gtx, l.Layout)
						})
					})
				}),
				layout.Expanded(func(gtx C) D {
					h := gtx.Px(unit.Dp(1.5))
					col := color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}
					if i == u.page {
						col = color.RGBA{A: 0xff}
					} else {
						h = gtx.Px(unit.Dp(1))
					}
					sz := image.Pt(gtx.Constraints.Min.X, h)
					defer op.Push(gtx.Ops).Pop()
					op.Offset(f32.Pt(0, float32(gtx.Constraints.Min.Y-h))).Add(gtx.Ops)
					fill(gtx, col, sz)
					return D{Size: gtx.Constraints.Min}
				}),
			)
		}))
	}
	return layout.Flex{}.Layout(gtx, tabs...)
}

func (u *UI) layoutPage(gtx C) D {
	col := pageColors[u.page]
	return layout.Inset{Top: unit.Dp(20), Bottom: unit.Dp(10)}.Layout(gtx, func(gtx C) D {
		return u.list.Layout(gtx, 15, func(gtx C, i int) D {
			return layout.Inset{Bottom: unit.Dp(10)}.Layout(gtx, func(gtx C) D {
				sz := image.Pt(gtx.Constraints.Max.X, gtx.Px(unit.Dp(50)))
				rounded(gtx, col, sz, float32(gtx.Px(unit.Dp(10))))
				gtx.Constraints = layout.Exact(sz)
				return layout.W.Layout(gtx, func(gtx C) D {
					return layout.Inset{Left: unit.Dp(20)}.Layout(gtx,
						material.Body1(u.theme, fmt.Sprintf("Content%d", i+1)).Layout,
					)
				})
			})
		})
	})
}

// layoutButtons lays out one button per page up to the current.
func (u *UI) layoutButtons(gtx C) D {
	var buttons []layout.FlexChild
	for i := 0; i <= u.page; i++ {
		i := i
		if i > 0 {
			buttons = append(buttons, layout.Rigid(spacer(unit.Dp(12), unit.Px(0))))
		}
		buttons = append(buttons, layout.Flexed(1, func(gtx C) D {
			gtx.Constraints.Min.Y = gtx.Px(unit.Dp(50))
			gtx.Constraints.Max.Y = gtx.Constraints.Min.Y
			border := widget.Border{
				Color:        color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
				CornerRadius: unit.Dp(10),
				Width:        unit.Dp(1.5),
			}
			return border.Layout(gtx, func(gtx C) D {
				return material.Clickable(gtx, &u.buttons[i], func(gtx C) D {
					gtx.Constraints.Min = gtx.Constraints.Max
					l := material.Label(u.theme, unit.Sp(10), fmt.Sprintf("Button%d", i+1))
					return layout.Center.Layout(gtx, l.Layout)
				})
			})
		}))
	}
	return layout.Inset{Top: unit.Dp(5)}.Layout(gtx, func(gtx C) D {
		return layout.Flex{Alignment: layout.End}.Layout(gtx, buttons...)
	})
}

// spacer returns an empty widget of the given size.
func spacer(w, h unit.Value) layout.Widget {
	return func(gtx C) D {
		return D{Size: image.Pt(gtx.Px(w), gtx.Px(h))}
	}
}

func fill(gtx C, col color.RGBA, sz image.Point) {
	defer op.Push(gtx.Ops).Pop()
	clip.Rect(image.Rectangle{Max: sz}).Add(gtx.Ops)
	paint.ColorOp{Color: col}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}

func rounded(gtx C, col color.RGBA, sz image.Point, r float32) {
	defer op.Push(gtx.Ops).Pop()
	clip.RRect{
		Rect: f32.Rectangle{Max: layout.FPt(sz)},
		NW:   r, NE: r, SE: r, SW: r,
	}.Add(gtx.Ops)
	paint.ColorOp{Color: col}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}
