package mem

import "sync/atomic"

// Stats accumulates allocation accounting for a Heap instance. All counters
// use atomic updates, so a Stats may observe a Heap shared across
// goroutines. A nil *Stats is valid and records nothing.
//
// Stats is injectable rather than process-global so tests can reset it
// between cases without bleeding counts across packages.
type Stats struct {
	allocs   atomic.Int64
	frees    atomic.Int64
	bytesAll atomic.Int64
	inUse    atomic.Int64
	peak     atomic.Int64
}

// StatsSnapshot is a point-in-time copy of a Stats' counters.
type StatsSnapshot struct {
	Allocs         int64 // total successful allocations
	Frees          int64 // total deallocations
	BytesAllocated int64 // cumulative bytes handed out
	BytesInUse     int64 // bytes currently outstanding
	BytesPeak      int64 // high-water mark of BytesInUse
}

// Snapshot returns a copy of the current counters. The fields are read
// individually, so a snapshot taken during concurrent allocation is
// internally consistent per counter, not across counters.
func (s *Stats) Snapshot() StatsSnapshot {
	if s == nil {
		return StatsSnapshot{}
	}
	return StatsSnapshot{
		Allocs:         s.allocs.Load(),
		Frees:          s.frees.Load(),
		BytesAllocated: s.bytesAll.Load(),
		BytesInUse:     s.inUse.Load(),
		BytesPeak:      s.peak.Load(),
	}
}

// Reset zeroes all counters.
func (s *Stats) Reset() {
	if s == nil {
		return
	}
	s.allocs.Store(0)
	s.frees.Store(0)
	s.bytesAll.Store(0)
	s.inUse.Store(0)
	s.peak.Store(0)
}

func (s *Stats) record(n int) {
	if s == nil {
		return
	}
	s.allocs.Add(1)
	s.bytesAll.Add(int64(n))
	inUse := s.inUse.Add(int64(n))
	for {
		peak := s.peak.Load()
		if inUse <= peak || s.peak.CompareAndSwap(peak, inUse) {
			return
		}
	}
}

func (s *Stats) recordFree(n int) {
	if s == nil {
		return
	}
	s.frees.Add(1)
	s.inUse.Add(int64(-n))
}
