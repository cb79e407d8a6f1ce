// SPDX-License-Identifier: Unlicense OR MIT

package main

const mainUsage = `The sktrace command replays pointer event traces through a widget tree.

Usage:

	sktrace [flags] <scene file>

The scene file is a TOML (.toml) or YAML (.yaml, .yml) description of a
widget tree and a list of pointer events. Each event is dispatched through
the tree in order. Deliveries are logged at debug level, widget actions at
info level. After the replay sktrace prints the state of every widget and
the router's focus and hover targets.

The -log-level flag selects the minimum log level: debug, info, warn or
error. It overrides $SKTRACE_LOG_LEVEL. The default is info.

The -log-format flag selects text or json log records. It overrides
$SKTRACE_LOG_FORMAT. The default is text.

The -watch flag keeps sktrace running and replays the scene with a fresh
router every time the file changes. Interrupt to exit.
`
