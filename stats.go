package sh

import (
	"fmt"
	"math"
	"strings"
)

// Stats walks every chain and returns a snapshot of the table's shape.
// It is intended for diagnostics, not for production logic.
func (t *Table[V]) Stats() *TableStats {
	stats := &TableStats{
		MinChain: math.MaxInt,
	}
	if t == nil || len(t.buckets) == 0 {
		stats.MinChain = 0
		return stats
	}
	stats.Buckets = len(t.buckets)
	stats.Counter = t.count
	stats.ArenaLen = len(t.entries)
	for i := t.free; i != nilIndex; i = t.entries[i].next {
		stats.FreeSlots++
	}
	for _, head := range t.buckets {
		n := 0
		for i := head; i != nilIndex; i = t.entries[i].next {
			n++
		}
		stats.Size += n
		if n == 0 {
			stats.EmptyBuckets++
		}
		if n < stats.MinChain {
			stats.MinChain = n
		}
		if n > stats.MaxChain {
			stats.MaxChain = n
		}
	}
	return stats
}

// TableStats is Table statistics.
//
// Warning: table statistics are intended to be used for diagnostic
// purposes. Fields may be added between minor releases.
type TableStats struct {
	// Buckets is the number of buckets (the table size).
	Buckets int
	// EmptyBuckets is the number of buckets with no chain.
	EmptyBuckets int
	// Size is the number of entries found by walking every chain.
	Size int
	// Counter is the entry count the table maintains on insert and
	// delete. It always equals Size.
	Counter int
	// MinChain is the length of the shortest chain.
	MinChain int
	// MaxChain is the length of the longest chain.
	MaxChain int
	// ArenaLen is the number of entry slots allocated, live or free.
	ArenaLen int
	// FreeSlots is the number of slots waiting for reuse.
	FreeSlots int
}

// LoadFactor returns the mean chain length.
func (s *TableStats) LoadFactor() float64 {
	if s.Buckets == 0 {
		return 0
	}
	return float64(s.Size) / float64(s.Buckets)
}

// ToString returns string representation of table stats.
func (s *TableStats) ToString() string {
	var sb strings.Builder
	sb.WriteString("TableStats{\n")
	sb.WriteString(fmt.Sprintf("Buckets:      %d\n", s.Buckets))
	sb.WriteString(fmt.Sprintf("EmptyBuckets: %d\n", s.EmptyBuckets))
	sb.WriteString(fmt.Sprintf("Size:         %d\n", s.Size))
	sb.WriteString(fmt.Sprintf("Counter:      %d\n", s.Counter))
	sb.WriteString(fmt.Sprintf("MinChain:     %d\n", s.MinChain))
	sb.WriteString(fmt.Sprintf("MaxChain:     %d\n", s.MaxChain))
	sb.WriteString(fmt.Sprintf("LoadFactor:   %.2f\n", s.LoadFactor()))
	sb.WriteString(fmt.Sprintf("ArenaLen:     %d\n", s.ArenaLen))
	sb.WriteString(fmt.Sprintf("FreeSlots:    %d\n", s.FreeSlots))
	sb.WriteString("}\n")
	return sb.String()
}
