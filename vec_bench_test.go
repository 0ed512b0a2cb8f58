package vec

import (
	"fmt"
	"testing"
)

// BenchmarkPushBack compares growth-by-doubling against the built-in
// append, with and without pre-reserved capacity.
func BenchmarkPushBack(b *testing.B) {
	sizes := []int{16, 256, 4096}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Vector_%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				v := New[int]()
				for j := 0; j < size; j++ {
					v.PushBack(j)
				}
			}
		})

		b.Run(fmt.Sprintf("VectorReserved_%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				v := NewReserve[int](Reserve(size))
				for j := 0; j < size; j++ {
					v.PushBack(j)
				}
			}
		})

		b.Run(fmt.Sprintf("Builtin_%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var s []int
				for j := 0; j < size; j++ {
					s = append(s, j)
				}
				_ = s
			}
		})
	}
}

// BenchmarkReuse measures the Clear-and-refill pattern, which must never
// reallocate once capacity is established.
func BenchmarkReuse(b *testing.B) {
	v := NewReserve[int](Reserve(1024))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		v.Clear()
		for j := 0; j < 1024; j++ {
			v.PushBack(j)
		}
	}
}

func BenchmarkInsertFront(b *testing.B) {
	for i := 0; i < b.N; i++ {
		v := New[int]()
		for j := 0; j < 256; j++ {
			v.Insert(0, j)
		}
	}
}

func BenchmarkNextCapacity(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = NextCapacity(i&1023, (i&1023)+1)
	}
}
