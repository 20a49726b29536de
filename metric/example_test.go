package metric_test

import (
	"fmt"

	"github.com/katalvlaran/lvmetric/matrix"
	"github.com/katalvlaran/lvmetric/metric"
)

// ExampleMahalanobis compares the raw quadratic form with its root.
func ExampleMahalanobis() {
	q, _ := matrix.NewDenseFrom([][]float64{{1, 0}, {0, 1}})

	squared, _ := metric.NewMahalanobisWith(q)
	rooted, _ := metric.NewMahalanobisWith(q, metric.WithTakeRoot(true))

	a, b := []float64{0, 0}, []float64{3, 4}
	v1, _ := squared.Evaluate(a, b)
	v2, _ := rooted.Evaluate(a, b)
	fmt.Println(v1, v2)
	// Output:
	// 25 5
}

// ExampleMahalanobis_SetWeightMatrix configures a distance after construction,
// once the data dimensionality is known.
func ExampleMahalanobis_SetWeightMatrix() {
	d := metric.NewMahalanobis()
	fmt.Println("configured:", d.IsConfigured())

	q, _ := matrix.NewDiagonal([]float64{2, 1})
	if err := d.SetWeightMatrix(q); err != nil {
		fmt.Println("error:", err)
		return
	}
	v, _ := d.Evaluate([]float64{0, 0}, []float64{1, 1})
	fmt.Println("configured:", d.IsConfigured(), "dim:", d.Dim(), "distance:", v)
	// Output:
	// configured: false
	// configured: true dim: 2 distance: 3
}
