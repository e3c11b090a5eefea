package ml

import (
	"errors"
	"math"
	"math/rand"
)

// IsolationForest is an unsupervised outlier scorer. Each tree
// partitions a random subsample with random axis-aligned splits; points
// that end up isolated after few splits receive scores near 1, inliers
// near 0.
type IsolationForest struct {
	Trees     int
	Subsample int

	roots  []*isoNode
	sample int
	rng    *rand.Rand
}

type isoNode struct {
	feature int
	split   float64
	left    *isoNode
	right   *isoNode
	size    int
}

// NewIsolationForest builds an unfitted forest. The seed pins tree
// construction for reproducible scoring.
func NewIsolationForest(trees, subsample int, seed int64) *IsolationForest {
	return &IsolationForest{
		Trees:     trees,
		Subsample: subsample,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Fit grows the trees over X. Requires at least two samples.
func (f *IsolationForest) Fit(X [][]float64) error {
	if len(X) < 2 {
		return errors.New("isolation forest needs at least 2 samples")
	}
	f.sample = f.Subsample
	if f.sample > len(X) {
		f.sample = len(X)
	}
	heightLimit := int(math.Ceil(math.Log2(float64(f.sample))))

	f.roots = make([]*isoNode, f.Trees)
	for t := 0; t < f.Trees; t++ {
		idx := f.rng.Perm(len(X))[:f.sample]
		f.roots[t] = f.grow(X, idx, 0, heightLimit)
	}
	return nil
}

func (f *IsolationForest) grow(X [][]float64, idx []int, depth, limit int) *isoNode {
	if len(idx) <= 1 || depth >= limit {
		return &isoNode{feature: -1, size: len(idx)}
	}

	feature := f.rng.Intn(len(X[idx[0]]))
	min := math.Inf(1)
	max := math.Inf(-1)
	for _, i := range idx {
		v := X[i][feature]
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == max {
		return &isoNode{feature: -1, size: len(idx)}
	}
	split := min + f.rng.Float64()*(max-min)

	var left, right []int
	for _, i := range idx {
		if X[i][feature] < split {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	return &isoNode{
		feature: feature,
		split:   split,
		left:    f.grow(X, left, depth+1, limit),
		right:   f.grow(X, right, depth+1, limit),
	}
}

// Scores returns one anomaly score in (0, 1) per row of X; higher means
// more isolated.
func (f *IsolationForest) Scores(X [][]float64) []float64 {
	norm := avgPathLength(f.sample)
	scores := make([]float64, len(X))
	for i, x := range X {
		var total float64
		for _, root := range f.roots {
			total += pathLength(root, x, 0)
		}
		avg := total / float64(len(f.roots))
		scores[i] = math.Pow(2, -avg/norm)
	}
	return scores
}

func pathLength(n *isoNode, x []float64, depth int) float64 {
	if n.feature < 0 {
		return float64(depth) + avgPathLength(n.size)
	}
	if x[n.feature] < n.split {
		return pathLength(n.left, x, depth+1)
	}
	return pathLength(n.right, x, depth+1)
}

const eulerMascheroni = 0.5772156649

// avgPathLength is c(n), the expected path length of an unsuccessful
// BST search over n points.
func avgPathLength(n int) float64 {
	switch {
	case n <= 1:
		return 0
	case n == 2:
		return 1
	default:
		h := math.Log(float64(n-1)) + eulerMascheroni
		return 2*h - 2*float64(n-1)/float64(n)
	}
}
