// SPDX-License-Identifier: Unlicense OR MIT

package sheet

// Scrim tracks the visibility target of the overlay behind a
// sheet. Displayed alpha is eased towards Target by the caller.
type Scrim struct {
	visible bool
	onTap   func()
}

// SetTarget sets whether the scrim should be shown.
func (s *Scrim) SetTarget(visible bool) {
	s.visible = visible
}

// Visible reports the target visibility.
func (s *Scrim) Visible() bool {
	return s.visible
}

// Target returns the alpha the scrim is easing towards, 1 for
// visible and 0 for hidden.
func (s *Scrim) Target() float32 {
	if s.visible {
		return 1
	}
	return 0
}

// Tap dismisses the sheet if the scrim is visible, and reports
// whether it did.
func (s *Scrim) Tap() bool {
	if !s.visible {
		return false
	}
	if s.onTap != nil {
		s.onTap()
	}
	return true
}
