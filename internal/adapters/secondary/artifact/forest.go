package artifact

import (
	"context"
	"fmt"

	"rental-price-service/internal/core/domain"
)

type forestSpec struct {
	Trees []treeSpec `json:"trees"`
}

type treeSpec struct {
	Nodes []TreeNode `json:"nodes"`
}

// TreeNode is one node of a fitted regression tree. Rows with
// x[Feature] <= Threshold go Left.
type TreeNode struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
	Leaf      bool    `json:"leaf"`
}

// forest averages the leaf values of its trees.
type forest struct {
	trees     [][]TreeNode
	nFeatures int
}

func newForest(spec forestSpec, nFeatures int) (*forest, error) {
	if len(spec.Trees) == 0 {
		return nil, fmt.Errorf("%w: forest has no trees", domain.ErrInvalidModel)
	}
	trees := make([][]TreeNode, len(spec.Trees))
	for i, tree := range spec.Trees {
		if err := validateTree(tree.Nodes, nFeatures); err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
		trees[i] = tree.Nodes
	}
	return &forest{trees: trees, nFeatures: nFeatures}, nil
}

// validateTree checks every reference so Predict cannot index out of
// range or loop.
func validateTree(nodes []TreeNode, nFeatures int) error {
	if len(nodes) == 0 {
		return fmt.Errorf("%w: empty tree", domain.ErrInvalidModel)
	}
	for i, node := range nodes {
		if node.Leaf {
			continue
		}
		if node.Feature < 0 || node.Feature >= nFeatures {
			return fmt.Errorf("%w: node %d feature %d out of range", domain.ErrInvalidModel, i, node.Feature)
		}
		for _, child := range []int{node.Left, node.Right} {
			if child <= i || child >= len(nodes) {
				return fmt.Errorf("%w: node %d child %d out of range", domain.ErrInvalidModel, i, child)
			}
		}
	}
	return nil
}

func (f *forest) Predict(ctx context.Context, row []float64) (float64, error) {
	if len(row) != f.nFeatures {
		return 0, fmt.Errorf("%w: got %d values, want %d", domain.ErrShapeMismatch, len(row), f.nFeatures)
	}

	var sum float64
	for _, nodes := range f.trees {
		sum += walk(nodes, row)
	}
	return sum / float64(len(f.trees)), nil
}

func walk(nodes []TreeNode, row []float64) float64 {
	idx := 0
	for {
		node := nodes[idx]
		if node.Leaf {
			return node.Value
		}
		if row[node.Feature] <= node.Threshold {
			idx = node.Left
		} else {
			idx = node.Right
		}
	}
}

func (f *forest) Name() string {
	return ModelTypeRandomForest
}
