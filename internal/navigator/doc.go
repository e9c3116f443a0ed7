// Package navigator implements the region explorer: a stack-based state
// machine over the province → district hierarchy and the interactive session
// that drives it.
//
// # States
//
//   - Root: no province chosen. A known 2-character province code loads that
//     province's districts (one fetch, no retry). An empty fetch keeps the
//     navigator at the root.
//   - ProvinceSelected: the district list is loaded. A code from the list, or
//     any province code, selects it and shows its attractions.
//   - DistrictSelected: a code has been selected; the list stays loaded and
//     further selections keep descending.
//
// "~" restores the previous frame, "q" quits from anywhere and an empty line
// confirms the loaded district list as the candidate set. Invalid input never
// changes the position or the history.
//
// The history is a bounded Stack of domain.Frame values; popping returns the
// exact frame that was saved, without refetching.
package navigator
