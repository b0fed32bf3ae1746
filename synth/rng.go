// SPDX-License-Identifier: MIT

package synth

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"
	"math/rand"
	"sort"
)

// newRNG returns the per-call random stream: seeded verbatim when seed is
// set, from the OS entropy source otherwise. math/rand.Rand is not safe for
// concurrent use and is never shared between calls.
func newRNG(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewSource(*seed))
	}
	return rand.New(rand.NewSource(entropySeed()))
}

func entropySeed() int64 {
	var b [8]byte
	_, _ = crand.Read(b[:])
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// weights is a cumulative distribution over len(cum) outcomes.
type weights struct{ cum []float64 }

// newWeights normalizes p into a cumulative distribution over n outcomes.
// A nil p, or one with a non-positive sum, is uniform.
func newWeights(p []float64, n int) weights {
	cum := make([]float64, n)
	var total float64
	if len(p) == n {
		for _, v := range p {
			if v > 0 {
				total += v
			}
		}
	}
	var acc float64
	for i := range cum {
		w := 1.0 / float64(n)
		if total > 0 {
			w = math.Max(p[i], 0) / total
		}
		acc += w
		cum[i] = acc
	}
	return weights{cum: cum}
}

// draw returns an outcome index in [0, n).
func (w weights) draw(rng *rand.Rand) int {
	u := rng.Float64() * w.cum[len(w.cum)-1]
	i := sort.Search(len(w.cum), func(i int) bool { return w.cum[i] > u })
	if i == len(w.cum) {
		i--
	}
	return i
}
