// Package editor adapts the timesort operations to an editing surface.
//
// A Host is anything that can report and replace a selection and get and set
// its whole text, the way a text editor does. The two commands in this
// package (sort selection, sort all lists) read from a Host, call into
// timesort and write the result back, returning a Notice for the user.
//
// Buffer is the in-memory Host the CLI uses: a document plus an optional
// line-range selection.
package editor
