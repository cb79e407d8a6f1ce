// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements common user interface controls that take
// part in pointer routing. Widgets contain persistent state and
// process the events delivered by an input.Router; drawing and layout
// are left to the embedding application.
package widget
