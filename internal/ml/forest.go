package ml

import (
	"errors"
	"math"
	"math/rand"
	"sort"
)

// RegressionForest is a bootstrap-aggregated ensemble of variance-
// minimizing decision trees mapping a feature vector to a target value.
type RegressionForest struct {
	Trees    int
	MaxDepth int

	roots []*regNode
	rng   *rand.Rand
}

type regNode struct {
	feature int
	split   float64
	left    *regNode
	right   *regNode
	value   float64
}

// NewRegressionForest builds an unfitted forest with a pinned seed.
func NewRegressionForest(trees, maxDepth int, seed int64) *RegressionForest {
	return &RegressionForest{
		Trees:    trees,
		MaxDepth: maxDepth,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Fit trains the ensemble, each tree on a bootstrap sample of (X, y).
func (f *RegressionForest) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 || len(X) != len(y) {
		return errors.New("regression forest needs matching, non-empty X and y")
	}
	f.roots = make([]*regNode, f.Trees)
	for t := 0; t < f.Trees; t++ {
		idx := make([]int, len(X))
		for i := range idx {
			idx[i] = f.rng.Intn(len(X))
		}
		f.roots[t] = f.grow(X, y, idx, 0)
	}
	return nil
}

func (f *RegressionForest) grow(X [][]float64, y []float64, idx []int, depth int) *regNode {
	var sum float64
	for _, i := range idx {
		sum += y[i]
	}
	node := &regNode{feature: -1, value: sum / float64(len(idx))}
	if depth >= f.MaxDepth || len(idx) < 2 {
		return node
	}

	feature, split, ok := bestSplit(X, y, idx)
	if !ok {
		return node
	}

	var left, right []int
	for _, i := range idx {
		if X[i][feature] <= split {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	node.feature = feature
	node.split = split
	node.left = f.grow(X, y, left, depth+1)
	node.right = f.grow(X, y, right, depth+1)
	return node
}

// bestSplit scans every feature for the threshold minimizing the summed
// squared error of the two halves, using prefix sums over the sorted
// column. ok is false when no feature separates the sample.
func bestSplit(X [][]float64, y []float64, idx []int) (int, float64, bool) {
	bestSSE := math.Inf(1)
	bestFeature := -1
	var bestThreshold float64

	order := make([]int, len(idx))
	for feature := 0; feature < len(X[idx[0]]); feature++ {
		copy(order, idx)
		sort.Slice(order, func(a, b int) bool {
			return X[order[a]][feature] < X[order[b]][feature]
		})

		var totalSum, totalSq float64
		for _, i := range order {
			totalSum += y[i]
			totalSq += y[i] * y[i]
		}

		var leftSum, leftSq float64
		for pos := 1; pos < len(order); pos++ {
			v := y[order[pos-1]]
			leftSum += v
			leftSq += v * v

			prev := X[order[pos-1]][feature]
			cur := X[order[pos]][feature]
			if prev == cur {
				continue
			}

			nl := float64(pos)
			nr := float64(len(order) - pos)
			sse := (leftSq - leftSum*leftSum/nl) +
				((totalSq - leftSq) - (totalSum-leftSum)*(totalSum-leftSum)/nr)
			if sse < bestSSE {
				bestSSE = sse
				bestFeature = feature
				bestThreshold = (prev + cur) / 2
			}
		}
	}
	if bestFeature < 0 {
		return 0, 0, false
	}
	return bestFeature, bestThreshold, true
}

// Predict averages the tree outputs for one feature vector.
func (f *RegressionForest) Predict(x []float64) float64 {
	var sum float64
	for _, root := range f.roots {
		node := root
		for node.feature >= 0 {
			if x[node.feature] <= node.split {
				node = node.left
			} else {
				node = node.right
			}
		}
		sum += node.value
	}
	return sum / float64(len(f.roots))
}
