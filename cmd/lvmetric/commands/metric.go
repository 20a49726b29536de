package commands

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvmetric/matrix"
	"github.com/katalvlaran/lvmetric/metric"
)

// metricFlags are the flags shared by distance and knn.
type metricFlags struct {
	name    string
	weights string
	root    bool
}

// resolveKind parses the metric name; --root turns a squared kind into its
// rooted form.
func (f metricFlags) resolveKind() (metric.Kind, error) {
	kind, err := metric.ParseKind(f.name)
	if err != nil {
		return 0, err
	}
	if f.root {
		switch kind {
		case metric.KindSquaredEuclidean:
			kind = metric.KindEuclidean
		case metric.KindSquaredMahalanobis:
			kind = metric.KindMahalanobis
		}
	}

	return kind, nil
}

func isMahalanobis(k metric.Kind) bool {
	return k == metric.KindMahalanobis || k == metric.KindSquaredMahalanobis
}

// build returns the metric described by the flags. q, when non-nil, overrides
// --weights.
func (f metricFlags) build(logger *slog.Logger, q matrix.Matrix) (metric.Metric, error) {
	kind, err := f.resolveKind()
	if err != nil {
		return nil, err
	}

	if q == nil && f.weights != "" {
		rows, err := parseRows(f.weights)
		if err != nil {
			return nil, fmt.Errorf("--weights: %w", err)
		}
		if q, err = matrix.NewDenseFrom(rows); err != nil {
			return nil, fmt.Errorf("--weights: %w", err)
		}
	}
	if q != nil && !isMahalanobis(kind) {
		logger.Warn("weighting matrix ignored", "metric", kind.String())
		q = nil
	}
	logger.Debug("metric", "kind", kind.String(), "weighted", q != nil)

	return metric.Provider(kind, q)
}
