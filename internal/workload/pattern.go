// Package workload generates synthetic memory traffic
// and replays it against NRU bookkeeping.
package workload

import (
	"fmt"
	"math/rand/v2"
)

type (
	// Access is a single read or write of a linear address.
	Access struct {
		Address int
		Write   bool
	}
	// Pattern generates sequences of page numbers.
	Pattern struct {
		Name     string
		generate func(rng *rand.Rand, pageCount, length int) []int
	}
)

// Pattern names accepted by [ByName].
const (
	SequentialName = "sequential"
	LoopName       = "loop"
	ZipfName       = "zipf"
	UniformName    = "uniform"
)

// Pages returns length page numbers, each within [0, pageCount).
func (p Pattern) Pages(rng *rand.Rand, pageCount, length int) []int {
	return p.generate(rng, pageCount, length)
}

// Patterns returns every known pattern.
// hotPages is the working set size used by the loop pattern.
func Patterns(hotPages int) []Pattern {
	return []Pattern{
		Sequential(),
		Loop(hotPages, 0.9), // 90% of accesses hit hot set.
		Zipf(1.2, 1.0),
		Uniform(),
	}
}

// ByName returns the pattern from [Patterns] named name.
func ByName(name string, hotPages int) (Pattern, error) {
	for _, pattern := range Patterns(hotPages) {
		if pattern.Name == name {
			return pattern, nil
		}
	}
	return Pattern{}, fmt.Errorf(
		"%w: %q", ErrUnknownPattern, name)
}

// Sequential scans every page in order, wrapping around.
func Sequential() Pattern {
	return Pattern{
		Name: SequentialName,
		generate: func(_ *rand.Rand, pageCount, length int) []int {
			seq := make([]int, length)
			for i := range seq {
				seq[i] = i % pageCount
			}
			return seq
		},
	}
}

// Loop directs hotRatio of accesses to the first hotPages pages
// and the rest to the remaining pages.
func Loop(hotPages int, hotRatio float64) Pattern {
	return Pattern{
		Name: LoopName,
		generate: func(rng *rand.Rand, pageCount, length int) []int {
			var (
				seq      = make([]int, length)
				hotSize  = min(max(1, hotPages), pageCount)
				coldSize = pageCount - hotSize
			)
			for i := range seq {
				if coldSize == 0 || rng.Float64() < hotRatio {
					seq[i] = rng.IntN(hotSize)
				} else {
					seq[i] = hotSize + rng.IntN(coldSize)
				}
			}
			return seq
		},
	}
}

// Zipf skews accesses towards low page numbers.
// skew must be > 1 and bias >= 1.
func Zipf(skew, bias float64) Pattern {
	return Pattern{
		Name: ZipfName,
		generate: func(rng *rand.Rand, pageCount, length int) []int {
			var (
				seq  = make([]int, length)
				imax = uint64(max(pageCount, 2) - 1)
				zipf = rand.NewZipf(rng, skew, bias, imax)
			)
			for i := range seq {
				seq[i] = min(int(zipf.Uint64()), pageCount-1)
			}
			return seq
		},
	}
}

// Uniform picks every page with equal probability.
func Uniform() Pattern {
	return Pattern{
		Name: UniformName,
		generate: func(rng *rand.Rand, pageCount, length int) []int {
			seq := make([]int, length)
			for i := range seq {
				seq[i] = rng.IntN(pageCount)
			}
			return seq
		},
	}
}

// Accesses expands pages into addresses at a random offset
// within each page. Roughly writeRatio of them are writes.
func Accesses(rng *rand.Rand, pages []int, pageSize int, writeRatio float64) []Access {
	accesses := make([]Access, len(pages))
	for i, page := range pages {
		accesses[i] = Access{
			Address: page*pageSize + rng.IntN(pageSize),
			Write:   rng.Float64() < writeRatio,
		}
	}
	return accesses
}
