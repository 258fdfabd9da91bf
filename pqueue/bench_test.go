package pqueue_test

import (
	"math/rand"
	"testing"

	"github.com/quivergraph/quiver/pqueue"
)

// BenchmarkPushPop measures interleaved insert/extract on a min-ordered queue.
func BenchmarkPushPop(b *testing.B) {
	const N = 1024
	r := rand.New(rand.NewSource(1))
	keys := make([]int, N)
	for i := range keys {
		keys[i] = r.Intn(1 << 20)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := pqueue.New[int](func(a, b int) bool { return a < b })
		for _, k := range keys {
			q.Push(k)
		}
		for q.Len() > 0 {
			q.Pop()
		}
	}
}

// BenchmarkNewFromSlice measures bulk heapify against sequential pushes.
func BenchmarkNewFromSlice(b *testing.B) {
	const N = 4096
	r := rand.New(rand.NewSource(2))
	keys := make([]int, N)
	for i := range keys {
		keys[i] = r.Intn(1 << 20)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pqueue.NewFromSlice(keys, func(a, b int) bool { return a < b })
	}
}
