// Package recommend picks the final travel destination out of a candidate list.
package recommend

import (
	"math/rand/v2"

	"regiontrip/internal/domain"
)

// Pick returns one candidate chosen uniformly at random, or false when there
// are none.
func Pick(r *rand.Rand, candidates []domain.District) (domain.District, bool) {
	if len(candidates) == 0 {
		return domain.District{}, false
	}
	return candidates[r.IntN(len(candidates))], true
}

// Format renders a candidate as "code: name".
func Format(d domain.District) string {
	return d.Code.String() + ": " + d.Name
}

// FormatAll formats every candidate, preserving order.
func FormatAll(ds []domain.District) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, Format(d))
	}
	return out
}
