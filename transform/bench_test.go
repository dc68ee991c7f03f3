// SPDX-License-Identifier: MIT

package transform_test

import (
	"testing"

	"github.com/katalvlaran/ozsolver/grid"
	"github.com/katalvlaran/ozsolver/transform"
)

func benchmarkForward(b *testing.B, n int) {
	g, err := grid.New(n, 10.24)
	if err != nil {
		b.Fatalf("grid: %v", err)
	}
	tr, err := transform.New(g)
	if err != nil {
		b.Fatalf("plan: %v", err)
	}
	f := g.R()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tr.Forward(f); err != nil {
			b.Fatalf("forward: %v", err)
		}
	}
}

// BenchmarkForward_1024 is the size of the reference argon run.
func BenchmarkForward_1024(b *testing.B) { benchmarkForward(b, 1024) }

// BenchmarkForward_16384 covers a production-size grid.
func BenchmarkForward_16384(b *testing.B) { benchmarkForward(b, 16384) }
