package qcache

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// bruteForceQ counts partitions of m into at most n positive parts by
// direct enumeration, used to validate the table against ground truth for
// small inputs (S6).
func bruteForceQ(m, n int) int {
	var count func(remaining, maxPart, partsLeft int) int
	count = func(remaining, maxPart, partsLeft int) int {
		if remaining == 0 {
			return 1
		}
		if partsLeft == 0 || maxPart == 0 {
			return 0
		}
		total := 0
		for p := min(maxPart, remaining); p >= 1; p-- {
			total += count(remaining-p, p, partsLeft-1)
		}
		return total
	}
	return count(m, m, n)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func TestLogQMatchesBruteForce(t *testing.T) {
	c := Init(32)
	for m := 1; m <= 12; m++ {
		for n := 1; n <= m; n++ {
			want := math.Log(float64(bruteForceQ(m, n)))
			got := LogQ(m, n, c)
			require.InDeltaf(t, want, got, 1e-6, "m=%d n=%d", m, n)
		}
	}
}

func TestLogQ_10_3(t *testing.T) {
	c := Init(16)
	got := LogQ(10, 3, c)
	// 14 partitions of 10 into at most 3 parts: {10}; {9,1},{8,2},{7,3},{6,4},{5,5};
	// {8,1,1},{7,2,1},{6,3,1},{6,2,2},{5,4,1},{5,3,2},{4,4,2},{4,3,3}.
	require.InDelta(t, math.Log(14), got, 1e-6)
}

func TestLogQClampsNGreaterThanM(t *testing.T) {
	c := Init(20)
	for m := 1; m <= 10; m++ {
		atM := LogQ(m, m, c)
		for n := m + 1; n <= 15; n++ {
			require.InDelta(t, atM, LogQ(m, n, c), 1e-9)
		}
	}
}

func TestLogQDegenerateInputs(t *testing.T) {
	c := Init(8)
	require.Equal(t, 0.0, LogQ(0, 5, c))
	require.Equal(t, 0.0, LogQ(-3, 5, c))
	require.Equal(t, 0.0, LogQ(5, 0, c))
}

func TestLogQAsymptoticFallbackCloseToTable(t *testing.T) {
	// Build a table big enough to cover m directly, and compare the same
	// point computed via the forced asymptotic path (nil cache => always
	// asymptotic) using a larger n to land outside the "small n" branch.
	const m, n = 2000, 80
	full := Init(m)
	exact := LogQ(m, n, full)
	approx := logQApprox(m, n)
	require.InDelta(t, exact, approx, 2e-2*math.Abs(exact))
}

func TestLogSumMatchesLogAddExp(t *testing.T) {
	require.InDelta(t, math.Log(math.Exp(1)+math.Exp(2)), logSum(1, 2), 1e-9)
	require.True(t, math.IsInf(logSum(math.Inf(-1), math.Inf(-1)), -1))
	require.Equal(t, 5.0, logSum(5, math.Inf(-1)))
}
