package commands

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvmetric/knn"
	"github.com/katalvlaran/lvmetric/matrix"
	"github.com/spf13/cobra"
)

func newKnnCmd(a *app) *cobra.Command {
	var (
		mf      metricFlags
		query   string
		points  string
		k       int
		workers int
		fit     bool
	)

	cmd := &cobra.Command{
		Use:   "knn",
		Short: "Rank points by distance from one or more queries",
		Long: `Print the k points nearest to each query as "index distance" lines.

Several queries may be given, separated by ";"; their result blocks are headed
by "# query N" and computed concurrently.

--fit weights the Mahalanobis distance by the inverse covariance of the points.

Examples:
  lvmetric knn --query 0,0 --points "1,1;3,4;0,1" --k 2
  lvmetric knn --query "0,0;3,3" --points "1,1;3,4;0,1" --k 1 --root
  lvmetric knn --query 0,0 --points "1,1;3,4;0,1;2,0" --fit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			queries, err := parseRows(query)
			if err != nil {
				return fmt.Errorf("--query: %w", err)
			}
			pts, err := parseRows(points)
			if err != nil {
				return fmt.Errorf("--points: %w", err)
			}

			var q matrix.Matrix
			if fit {
				if q, err = inverseCovariance(pts); err != nil {
					return fmt.Errorf("--fit: %w", err)
				}
			}
			m, err := mf.build(a.logger, q)
			if err != nil {
				return err
			}

			opts := []knn.Option{knn.WithLogger(a.logger)}
			if workers > 0 {
				opts = append(opts, knn.WithWorkers(workers))
			}
			out := cmd.OutOrStdout()

			if len(queries) == 1 {
				res, err := knn.Search(cmd.Context(), queries[0], pts, m, k, opts...)
				if err != nil {
					return err
				}
				writeNeighbors(out, res)
				return nil
			}

			batch, err := knn.SearchBatch(cmd.Context(), queries, pts, m, k, opts...)
			if err != nil {
				return err
			}
			for i, res := range batch {
				fmt.Fprintf(out, "# query %d\n", i)
				writeNeighbors(out, res)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&query, "query", "", `Query vector(s), ";"-separated`)
	cmd.Flags().StringVar(&points, "points", "", `Points to search, ";"-separated`)
	cmd.Flags().IntVar(&k, "k", 1, "Number of neighbours per query")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent queries (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&fit, "fit", false, "Weight by the inverse covariance of --points")
	addMetricFlags(cmd, &mf)
	cmd.MarkFlagsMutuallyExclusive("weights", "fit")
	_ = cmd.MarkFlagRequired("query")
	_ = cmd.MarkFlagRequired("points")

	return cmd
}

// inverseCovariance returns Σ⁻¹ of the rows.
func inverseCovariance(rows [][]float64) (matrix.Matrix, error) {
	x, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, err
	}
	cov, _, err := matrix.Covariance(x)
	if err != nil {
		return nil, err
	}

	return matrix.InverseOf(cov)
}

func writeNeighbors(w io.Writer, ns []knn.Neighbor) {
	for _, n := range ns {
		fmt.Fprintf(w, "%d %s\n", n.Index, formatFloat(n.Distance))
	}
}
