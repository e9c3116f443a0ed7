// Package regions holds the read-only region catalog: the fixed table of
// provinces and the hand-curated attractions keyed by region code.
//
// The catalog is parsed once from YAML (an embedded dataset by default, or an
// operator-supplied file) and then only read. Lookups hand out copies, so
// callers can't mutate it.
package regions
