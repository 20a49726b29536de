package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDistanceCmd(a *app) *cobra.Command {
	var (
		mf   metricFlags
		x, y string
	)

	cmd := &cobra.Command{
		Use:   "distance",
		Short: "Print the distance between two vectors",
		Long: `Print the distance between --a and --b.

Without --weights the Mahalanobis kinds fall back to the identity, which makes
them equal to the (squared) Euclidean distance.

Examples:
  lvmetric distance --a 0,0 --b 3,4
  lvmetric distance --a 0,0 --b 3,4 --root
  lvmetric distance --a 0,0 --b 1,1 --weights "4,0;0,1" --root
  lvmetric distance --a 0,0 --b 3,4 --metric manhattan`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			va, err := parseVector(x)
			if err != nil {
				return fmt.Errorf("--a: %w", err)
			}
			vb, err := parseVector(y)
			if err != nil {
				return fmt.Errorf("--b: %w", err)
			}
			m, err := mf.build(a.logger, nil)
			if err != nil {
				return err
			}
			v, err := m.Evaluate(va, vb)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatFloat(v))

			return nil
		},
	}

	cmd.Flags().StringVar(&x, "a", "", "First vector, e.g. 0,0")
	cmd.Flags().StringVar(&y, "b", "", "Second vector, e.g. 3,4")
	addMetricFlags(cmd, &mf)
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")

	return cmd
}

func addMetricFlags(cmd *cobra.Command, mf *metricFlags) {
	cmd.Flags().StringVar(&mf.name, "metric", "squared-mahalanobis",
		"squared-mahalanobis, mahalanobis, squared-euclidean, euclidean or manhattan")
	cmd.Flags().StringVar(&mf.weights, "weights", "", `Mahalanobis weighting matrix, rows separated by ";"`)
	cmd.Flags().BoolVar(&mf.root, "root", false, "Take the square root of squared kinds")
}
