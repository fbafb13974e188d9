// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements the state of a draggable sheet.
//
// The sheet package computes geometry; this package connects it
// to pointer input. See the material package for drawing.
package widget
