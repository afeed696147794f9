package parallel

// BestByKey reduces a set of task results to the one minimizing key(result),
// breaking ties by the lowest task Index (§5: "Engine results are collected
// deterministically in argmin-by-DL order (tie-break by worker index)").
// Results whose Error is non-nil are skipped. ok is false if every result
// errored or results is empty.
func BestByKey[T any, R any](results []TaskResult[T, R], key func(R) float64) (best TaskResult[T, R], ok bool) {
	bestScore := 0.0
	for _, r := range results {
		if r.Error != nil {
			continue
		}
		score := key(r.Result)
		if !ok || score < bestScore || (score == bestScore && r.Index < best.Index) {
			best = r
			bestScore = score
			ok = true
		}
	}
	return best, ok
}
