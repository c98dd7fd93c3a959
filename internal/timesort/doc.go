// Package timesort sorts Markdown list items by the first HH:MM time found
// on each item.
//
// The package is pure: every function works on in-memory lines and returns
// new slices. It knows nothing about editors, files or terminals; the
// editor and cli packages adapt it to those.
//
// Building blocks:
//   - ExtractTime finds the first HH:MM token on a line
//   - IsListItem classifies a line by its leading marker
//   - DetectListGroups finds maximal runs of list-item lines
//   - SortLines orders the list items of one scope by time
//
// SortSelection and SortDocument compose them into the two user-facing
// operations.
package timesort
