package sh

import (
	"testing"
)

func BenchmarkTableGetSmall(b *testing.B) {
	benchmarkTableGet(b, DJB2, testDataSmall[:])
}

func BenchmarkTableGet(b *testing.B) {
	benchmarkTableGet(b, DJB2, testData[:])
}

func BenchmarkTableGetLarge(b *testing.B) {
	benchmarkTableGet(b, DJB2, testDataLarge[:])
}

func BenchmarkTableGetLargeXXHash(b *testing.B) {
	benchmarkTableGet(b, XXHash, testDataLarge[:])
}

func benchmarkTableGet(b *testing.B, h HashFunc, data []string) {
	b.ReportAllocs()
	t, err := New[int](len(data), WithHasher(h))
	if err != nil {
		b.Fatal(err)
	}
	for i := range data {
		_ = t.Insert(data[i], i)
	}
	b.ResetTimer()
	i := 0
	for n := 0; n < b.N; n++ {
		_, _ = t.Get(data[i])
		i++
		if i >= len(data) {
			i = 0
		}
	}
}

func BenchmarkTableSet(b *testing.B) {
	benchmarkTableSet(b, testData[:])
}

func BenchmarkTableSetLarge(b *testing.B) {
	benchmarkTableSet(b, testDataLarge[:])
}

func benchmarkTableSet(b *testing.B, data []string) {
	b.ReportAllocs()
	t, err := New[int](len(data))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	i := 0
	for n := 0; n < b.N; n++ {
		_, _, _ = t.Set(data[i], n)
		i++
		if i >= len(data) {
			i = 0
		}
	}
}

func BenchmarkTableInsertDelete(b *testing.B) {
	b.ReportAllocs()
	t, err := New[int](len(testData))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	i := 0
	for n := 0; n < b.N; n++ {
		_ = t.Insert(testData[i], n)
		_, _ = t.Delete(testData[i])
		i++
		if i >= len(testData) {
			i = 0
		}
	}
}

func BenchmarkTableResize(b *testing.B) {
	b.ReportAllocs()
	t, err := New[int](1)
	if err != nil {
		b.Fatal(err)
	}
	for i, s := range testDataLarge {
		_ = t.Insert(s, i)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		size := 1024
		if n%2 == 1 {
			size = 4096
		}
		_ = t.Resize(size)
	}
}
