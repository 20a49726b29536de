package knn_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvmetric/knn"
	"github.com/katalvlaran/lvmetric/matrix"
	"github.com/katalvlaran/lvmetric/metric"
)

// ExampleSearch ranks the same points under Euclidean and Mahalanobis
// distances. The weighting makes vertical moves sixteen times as costly as
// horizontal ones, so the far-right point becomes the nearest.
func ExampleSearch() {
	points := [][]float64{{0, 1}, {2, 0}, {3, 3}}
	query := []float64{0, 0}

	euc, _ := knn.Search(context.Background(), query, points, metric.Euclidean(), 2)
	fmt.Println("euclidean:", euc)

	q, _ := matrix.NewDenseFrom([][]float64{{0.25, 0}, {0, 4}})
	mah, _ := metric.NewMahalanobisWith(q, metric.WithTakeRoot(true))
	res, _ := knn.Search(context.Background(), query, points, mah, 2)
	fmt.Println("mahalanobis:", res)

	// Output:
	// euclidean: [{0 1} {1 2}]
	// mahalanobis: [{1 1} {0 2}]
}
