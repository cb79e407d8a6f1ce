// SPDX-License-Identifier: Unlicense OR MIT

package widget

// Label is a widget displaying text. It never consumes pointer events,
// so they pass to the widgets behind it.
type Label struct {
	Box
	Text string
}

func (l *Label) String() string {
	return describe("Label", l.ID, l.Text)
}
