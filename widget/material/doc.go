// SPDX-License-Identifier: Unlicense OR MIT

// Package material draws draggable sheets in the Material design.
//
// A sheet is split into two parts: the stateful widget.Sheet and
// the stateless SheetStyle drawing it. The style is rebuilt each
// frame from the theme:
//
//     var s = &widget.Sheet{Direction: sheet.Bottom}
//
//     if s.Dismissed() {
//         // Discard s.
//     }
//     material.Sheet(th, s).Layout(gtx, content)
//
// Customization
//
// Adjust the style fields before Layout to change the look of a
// single sheet:
//
//     st := material.Sheet(th, s)
//     st.Corners = material.UniformCorners(unit.Dp(16))
//     st.MaxWidth = true
//     st.Layout(gtx, content)
package material
