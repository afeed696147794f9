package qcache

import "math"

// Cache holds a dense table of log q(m, n) for 0 <= m, n <= MMax, where
// q(m, n) is the number of partitions of integer m into at most n positive
// parts. Build one with Init; query it with LogQ.
type Cache struct {
	MMax int
	data [][]float64
}

// Init fills a Cache covering 0 <= m, n <= mMax.
//
// Recursion (§4.1): Q[0][n] = 0 for every n (the empty partition uses at most
// n parts for any n, trivially), Q[m][1] = 0 for m >= 1, and for 2 <= n <= m,
// Q[m][n] = logsumexp(Q[m][n-1], Q[m-n][n]); for n > m the value is clamped
// to Q[m][m] (a partition of m can never use more than m parts). The
// reduction term Q[m-n][n] is added unconditionally across that range,
// including the m == n diagonal, where it resolves through the Q[0][n] base
// case above.
//
// Complexity: O(mMax^2) time and space.
func Init(mMax int) *Cache {
	if mMax < 0 {
		mMax = 0
	}
	data := make([][]float64, mMax+1)
	for m := range data {
		row := make([]float64, mMax+1)
		for n := range row {
			row[n] = math.Inf(-1)
		}
		data[m] = row
	}
	for n := 0; n <= mMax; n++ {
		data[0][n] = 0
	}
	for m := 1; m <= mMax; m++ {
		data[m][1] = 0
		for n := 2; n <= m; n++ {
			data[m][n] = logSum(data[m][n], data[m][n-1])
			data[m][n] = logSum(data[m][n], data[m-n][n])
		}
		// Clamp n > m to Q[m][m].
		for n := m + 1; n <= mMax; n++ {
			data[m][n] = data[m][m]
		}
	}
	return &Cache{MMax: mMax, data: data}
}

// LogQ returns log q(m, n), reading the dense table when m is within its
// bound and falling back to the asymptotic expansion otherwise. A nil Cache
// always uses the asymptotic path.
//
// Contract (§4.1):
//   - m <= 0 or n < 1 returns 0 (there is exactly one way to partition
//     nothing, and no way to use zero parts of a positive integer — both
//     map to a log-count of 0 by the convention this system uses).
//   - n > m is clamped to n = m.
func LogQ(m, n int, c *Cache) float64 {
	if m <= 0 || n < 1 {
		return 0
	}
	if n > m {
		n = m
	}
	if c != nil && m <= c.MMax {
		return c.data[m][n]
	}
	return logQApprox(m, n)
}

// logSum computes log(exp(a) + exp(b)) without overflow.
func logSum(a, b float64) float64 {
	if math.IsInf(a, -1) && math.IsInf(b, -1) {
		return math.Inf(-1)
	}
	hi, lo := a, b
	if b > a {
		hi, lo = b, a
	}
	return hi + math.Log1p(math.Exp(lo-hi))
}
