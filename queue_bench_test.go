package workq

import (
	"math/rand"
	"testing"
)

func BenchmarkAdd(b *testing.B) {
	q, _ := New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Add(i)
	}
}

func BenchmarkAdd_NonUnique(b *testing.B) {
	q := NewNonUnique[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Add(i)
	}
}

func BenchmarkAddNext(b *testing.B) {
	q := NewNonUnique[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Add(i)
		if i%2 == 1 { // keep size bounded
			q.Next()
		}
	}
}

func BenchmarkAdd_DedupHits(b *testing.B) {
	q, _ := New[int]()
	// Preload with a small range to force many duplicate hits.
	for i := 0; i < 1024; i++ {
		q.Add(i)
	}
	rnd := rand.New(rand.NewSource(1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Add(rnd.Intn(1024))
	}
}

func BenchmarkAdd_InterfaceKey(b *testing.B) {
	q, _ := New[any]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Add(i)
	}
}

func BenchmarkAll(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		q, _ := New(0)
		for v := range q.All() {
			if v < 1000 {
				q.Add(v + 1)
			}
		}
	}
}
