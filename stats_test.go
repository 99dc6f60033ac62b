package sh

import (
	"strings"
	"testing"
)

func TestTable_Stats(t *testing.T) {
	tb, err := New[int](16)
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range testData {
		if err := tb.Insert(s, i); err != nil {
			t.Fatal(err)
		}
	}
	for _, s := range testData[:10] {
		if _, err := tb.Delete(s); err != nil {
			t.Fatal(err)
		}
	}

	stats := tb.Stats()
	if stats.Buckets != 16 {
		t.Fatalf("buckets: %d", stats.Buckets)
	}
	if stats.Size != len(testData)-10 || stats.Counter != stats.Size {
		t.Fatalf("size %d, counter %d", stats.Size, stats.Counter)
	}
	if stats.ArenaLen != len(testData) || stats.FreeSlots != 10 {
		t.Fatalf("arena %d, free %d", stats.ArenaLen, stats.FreeSlots)
	}
	if stats.MinChain > stats.MaxChain {
		t.Fatalf("min chain %d > max chain %d", stats.MinChain, stats.MaxChain)
	}
	if lf := stats.LoadFactor(); lf <= 0 {
		t.Fatalf("load factor %v", lf)
	}
	out := stats.ToString()
	if !strings.HasPrefix(out, "TableStats{") || !strings.Contains(out, "FreeSlots:    10") {
		t.Fatalf("unexpected rendering:\n%s", out)
	}
}

func TestTable_StatsEmpty(t *testing.T) {
	var tb *Table[int]
	stats := tb.Stats()
	if stats.Buckets != 0 || stats.MinChain != 0 || stats.LoadFactor() != 0 {
		t.Fatalf("unexpected stats for nil table: %+v", stats)
	}

	tb, err := New[int](4)
	if err != nil {
		t.Fatal(err)
	}
	stats = tb.Stats()
	if stats.EmptyBuckets != 4 || stats.MinChain != 0 || stats.MaxChain != 0 {
		t.Fatalf("unexpected stats for empty table: %+v", stats)
	}
}
