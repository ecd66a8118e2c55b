package signalops

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-sigflow/internal/testutil"
)

func BenchmarkGainProcess(b *testing.B) {
	for _, size := range []int{64, 1024, 8192} {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			g := NewGain(0.5, size)
			in := testutil.DeterministicSine(440, 48000, 1, size)
			b.SetBytes(int64(size * 4))
			b.ReportAllocs()
			b.ResetTimer()
			for range b.N {
				g.Process(in)
			}
		})
	}
}

func BenchmarkSumProcess(b *testing.B) {
	for _, size := range []int{64, 1024, 8192} {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			s := NewSum(size)
			a := testutil.DeterministicSine(440, 48000, 1, size)
			c := testutil.DC(0.25, size)
			b.SetBytes(int64(size * 4))
			b.ReportAllocs()
			b.ResetTimer()
			for range b.N {
				s.Process(a, c)
			}
		})
	}
}
