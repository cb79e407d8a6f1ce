// SPDX-License-Identifier: Unlicense OR MIT

/*
Package input routes pointer events through a tree of widgets.

A [Router] owns the dispatch state of a single pointer: the widget
holding mouse focus, if any, and the widget most recently entered.
Each call to [Router.Dispatch] either delivers the event straight to
the focused widget, or builds the [Route] of widgets under the
pointer and runs a capture pass from the root towards the frontmost
widget followed by a bubble pass back towards the root.

Widgets take part by implementing [Widget]. Handlers receive a
[Source] through which they may claim mouse focus, typically while
handling a press, so that they keep receiving events until the
pointer is released.

A Router is not safe for concurrent use. Events must be dispatched
one at a time, in timestamp order, from the goroutine running the
user interface.
*/
package input
