package metric

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmetric/matrix"
)

// Kind names a metric Provider can build.
type Kind int

const (
	KindSquaredEuclidean Kind = iota
	KindEuclidean
	KindManhattan
	KindSquaredMahalanobis
	KindMahalanobis
)

func (k Kind) String() string {
	switch k {
	case KindSquaredEuclidean:
		return "squared-euclidean"
	case KindEuclidean:
		return "euclidean"
	case KindManhattan:
		return "manhattan"
	case KindSquaredMahalanobis:
		return "squared-mahalanobis"
	case KindMahalanobis:
		return "mahalanobis"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// ParseKind maps a name (case-insensitive, as printed by Kind.String) to a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k := KindSquaredEuclidean; k <= KindMahalanobis; k++ {
		if k.String() == name {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

// Provider returns the metric for kind. q is the weighting matrix for the
// Mahalanobis kinds; nil leaves the distance unconfigured. Other kinds ignore q.
func Provider(kind Kind, q matrix.Matrix) (Metric, error) {
	switch kind {
	case KindSquaredEuclidean:
		return SquaredEuclidean(), nil
	case KindEuclidean:
		return Euclidean(), nil
	case KindManhattan:
		return Manhattan(), nil
	case KindSquaredMahalanobis, KindMahalanobis:
		root := WithTakeRoot(kind == KindMahalanobis)
		if q == nil {
			return NewMahalanobis(root), nil
		}
		d, err := NewMahalanobisWith(q, root)
		if err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, fmt.Errorf("%v: %w", kind, ErrUnknownKind)
	}
}
