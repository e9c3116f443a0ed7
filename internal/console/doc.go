// Package console is the terminal side of the explorer: localized messages,
// styled screens and line input.
//
// Messages come from TOML locale files embedded in the binary (Korean by
// default, English available). Screens are styled with lipgloss through a
// renderer bound to the output writer, so pipes and test buffers receive
// plain text.
package console
