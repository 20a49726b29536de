package knn

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/lvmetric/metric"
	"golang.org/x/sync/errgroup"
)

// Neighbor is one search hit: the index into the searched points and its
// distance from the query under the search metric.
type Neighbor struct {
	Index    int
	Distance float64
}

// neighbors is kept sorted by ascending Distance, at most cap(k) long.
type neighbors []Neighbor

// closer reports whether distance a ranks before b. NaN ranks after every
// number, like +Inf, and never before another NaN.
func closer(a, b float64) bool {
	if math.IsNaN(a) {
		return false
	}

	return a < b || math.IsNaN(b)
}

// insert places n into the sorted set if it beats the current worst, shifting
// larger entries right. Equal distances never displace an earlier entry, so
// lower indexes win ties.
func (ns neighbors) insert(n Neighbor, k int) neighbors {
	if len(ns) == k && !closer(n.Distance, ns[len(ns)-1].Distance) {
		return ns
	}
	if len(ns) < k {
		ns = append(ns, n)
	} else {
		ns[len(ns)-1] = n
	}
	for i := len(ns) - 1; i > 0 && closer(ns[i].Distance, ns[i-1].Distance); i-- {
		ns[i], ns[i-1] = ns[i-1], ns[i]
	}

	return ns
}

// Search returns the k points closest to query under m.
// When k exceeds len(points) every point is returned, ordered. NaN distances
// (an indefinite weighting matrix under the root policy) rank last.
//
// Errors: ErrBadK, ErrNilMetric, ctx.Err() on cancellation (checked between
// points), and metric errors wrapped with the offending point index. The
// first metric error aborts the search.
//
// Complexity: O(n·(cost(m) + k)).
func Search(ctx context.Context, query []float64, points [][]float64, m metric.Metric, k int, opts ...Option) ([]Neighbor, error) {
	o := gatherOptions(opts)

	return search(ctx, query, points, m, k, o)
}

func search(ctx context.Context, query []float64, points [][]float64, m metric.Metric, k int, o options) ([]Neighbor, error) {
	if k <= 0 {
		return nil, ErrBadK
	}
	if m == nil {
		return nil, ErrNilMetric
	}
	o.logger.Debug("knn search", "points", len(points), "k", k, "dim", len(query))

	limit := k
	if len(points) < limit {
		limit = len(points)
	}
	best := make(neighbors, 0, limit)
	if limit == 0 {
		return best, nil
	}

	for i, p := range points {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		d, err := m.Evaluate(query, p)
		if err != nil {
			return nil, fmt.Errorf("knn: point %d: %w", i, err)
		}
		best = best.insert(Neighbor{Index: i, Distance: d}, limit)
	}

	return best, nil
}

// SearchBatch runs Search for every query with at most WithWorkers queries in
// flight. result[i] answers queries[i]. The first error cancels the queries
// still running and is returned.
func SearchBatch(ctx context.Context, queries, points [][]float64, m metric.Metric, k int, opts ...Option) ([][]Neighbor, error) {
	o := gatherOptions(opts)
	if k <= 0 {
		return nil, ErrBadK
	}
	if m == nil {
		return nil, ErrNilMetric
	}
	o.logger.Debug("knn batch", "queries", len(queries), "points", len(points), "workers", o.workers)

	out := make([][]Neighbor, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for qi, q := range queries {
		g.Go(func() error {
			res, err := search(gctx, q, points, m, k, o)
			if err != nil {
				return fmt.Errorf("query %d: %w", qi, err)
			}
			out[qi] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
