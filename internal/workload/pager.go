package workload

import (
	"fmt"

	"github.com/djdv/go-nru"
	"github.com/hashicorp/golang-lru/arc/v2"
)

type (
	// Pager simulates a resident set of page frames.
	Pager interface {
		// Access reports if page was resident.
		// On a miss, the page is loaded,
		// evicting another page if necessary.
		Access(page int, write bool) (bool, error)
	}
	// NRUPager evicts with the NRU policy.
	// Page states outlive residency, so a reloaded
	// page keeps its Modified bit.
	// Every access, writes included, sets the Referenced bit as
	// paging hardware does; unlike [nru.Memory.Write], which sets only M.
	// Constructed by [NewNRUPager].
	NRUPager struct {
		table        *nru.Table
		classifier   *nru.Classifier
		resident     map[int]int // page -> frame
		frames       []int       // frame -> page
		tickInterval int
		accesses     int
	}
	// ARCPager evicts with the Adaptive Replacement Cache policy.
	// Constructed by [NewARCPager].
	ARCPager struct {
		cache *arc.ARCCache[int, struct{}]
	}
	// Result counts the outcome of [Simulate].
	Result struct {
		Hits, Misses int
	}
	// residentView presents the pages held in frames,
	// indexed by frame number.
	residentView struct {
		table  *nru.Table
		frames []int
	}
)

// NewNRUPager creates an [NRUPager] holding up to frames
// of pageCount pages. The clock ticks every tickInterval accesses.
func NewNRUPager(
	pageCount, frames, tickInterval int,
	options ...nru.Option,
) (*NRUPager, error) {
	if tickInterval <= 0 {
		return nil, intervalError(tickInterval)
	}
	if frames <= 0 || frames > pageCount {
		return nil, framesError(frames, pageCount)
	}
	table, err := nru.NewTable(pageCount)
	if err != nil {
		return nil, err
	}
	return &NRUPager{
		table:        table,
		classifier:   nru.NewClassifier(options...),
		resident:     make(map[int]int, frames),
		frames:       make([]int, 0, frames),
		tickInterval: tickInterval,
	}, nil
}

// Access implements [Pager].
func (p *NRUPager) Access(page int, write bool) (bool, error) {
	if _, err := p.table.Get(page); err != nil {
		return false, err
	}
	_, hit := p.resident[page]
	if !hit {
		if err := p.load(page); err != nil {
			return false, err
		}
	}
	if err := p.table.MarkReferenced(page); err != nil {
		return hit, err
	}
	if write {
		if err := p.table.MarkModified(page); err != nil {
			return hit, err
		}
	}
	if p.accesses++; p.accesses%p.tickInterval == 0 {
		p.table.Tick()
	}
	return hit, nil
}

func (p *NRUPager) load(page int) error {
	if len(p.frames) < cap(p.frames) {
		p.resident[page] = len(p.frames)
		p.frames = append(p.frames, page)
		return nil
	}
	view := residentView{table: p.table, frames: p.frames}
	if err := p.classifier.Classify(view); err != nil {
		return err
	}
	frame, err := p.classifier.Victim()
	if err != nil {
		return err
	}
	delete(p.resident, p.frames[frame])
	p.frames[frame] = page
	p.resident[page] = frame
	return nil
}

// Resident returns the number of resident pages.
func (p *NRUPager) Resident() int { return len(p.frames) }

func (rv residentView) Size() int { return len(rv.frames) }

func (rv residentView) Get(frame int) (nru.State, error) {
	if frame < 0 || frame >= len(rv.frames) {
		return nru.NotRefNotMod, fmt.Errorf(
			"%w: frame %d not in [0,%d)",
			nru.ErrOutOfRange, frame, len(rv.frames))
	}
	return rv.table.Get(rv.frames[frame])
}

// NewARCPager creates an [ARCPager] holding up to frames pages.
func NewARCPager(frames int) (*ARCPager, error) {
	if frames <= 0 {
		return nil, fmt.Errorf(
			"%w: must be >0 but %d was requested",
			ErrInvalidFrames, frames)
	}
	cache, err := arc.NewARC[int, struct{}](frames)
	if err != nil {
		return nil, err
	}
	return &ARCPager{cache: cache}, nil
}

// Access implements [Pager].
// ARC does not distinguish writes from reads.
func (p *ARCPager) Access(page int, _ bool) (bool, error) {
	if _, hit := p.cache.Get(page); hit {
		return true, nil
	}
	p.cache.Add(page, struct{}{})
	return false, nil
}

// Resident returns the number of resident pages.
func (p *ARCPager) Resident() int { return p.cache.Len() }

// Simulate replays accesses through pager.
func Simulate(pager Pager, accesses []Access, pageSize int) (Result, error) {
	var result Result
	for i, access := range accesses {
		hit, err := pager.Access(access.Address/pageSize, access.Write)
		if err != nil {
			return result, fmt.Errorf("access %d: %w", i, err)
		}
		if hit {
			result.Hits++
		} else {
			result.Misses++
		}
	}
	return result, nil
}

// HitRate returns the percentage of accesses that hit.
func (r Result) HitRate() float64 {
	total := r.Hits + r.Misses
	if total == 0 {
		return 0
	}
	return float64(r.Hits) / float64(total) * 100.0
}
