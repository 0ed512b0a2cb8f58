package vec_test

import (
	"fmt"
	"testing"

	"github.com/pavanmanishd/vec"
)

// BenchmarkAppendPatterns tests common append workloads at several sizes.
// These dominate real usage: build a sequence element by element, with or
// without knowing the final size up front.
func BenchmarkAppendPatterns(b *testing.B) {
	sizes := []int{64, 1024, 16384}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("ColdStart_%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				v := vec.New[int]()
				for j := 0; j < size; j++ {
					v.PushBack(j)
				}
			}
		})

		b.Run(fmt.Sprintf("Reserved_%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				v := vec.NewReserve[int](vec.Reserve(size))
				for j := 0; j < size; j++ {
					v.PushBack(j)
				}
			}
		})

		b.Run(fmt.Sprintf("ClearAndReuse_%d", size), func(b *testing.B) {
			v := vec.NewReserve[int](vec.Reserve(size))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v.Clear()
				for j := 0; j < size; j++ {
					v.PushBack(j)
				}
			}
		})
	}
}

// BenchmarkCopyPatterns tests deep-copy costs against element count.
func BenchmarkCopyPatterns(b *testing.B) {
	sizes := []int{64, 1024, 16384}

	for _, size := range sizes {
		src := vec.NewSize[int](size)
		for j := 0; j < size; j++ {
			src.Set(j, j)
		}

		b.Run(fmt.Sprintf("Clone_%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = src.Clone()
			}
		})

		b.Run(fmt.Sprintf("Swap_%d", size), func(b *testing.B) {
			other := vec.New[int]()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				src.Swap(other)
			}
		})
	}
}

// BenchmarkIteration compares the three traversal forms.
func BenchmarkIteration(b *testing.B) {
	v := vec.NewSize[int](4096)
	for j := 0; j < v.Len(); j++ {
		v.Set(j, j)
	}

	b.Run("Slice", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sum := 0
			for _, x := range v.Slice() {
				sum += x
			}
			_ = sum
		}
	})

	b.Run("Values", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sum := 0
			for x := range v.Values() {
				sum += x
			}
			_ = sum
		}
	})

	b.Run("Get", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sum := 0
			for j := 0; j < v.Len(); j++ {
				sum += v.Get(j)
			}
			_ = sum
		}
	})
}
