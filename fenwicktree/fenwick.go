/**
 * 树状数组（Binary Indexed Tree），下标从0开始，
 * 内部通过i|(i+1)与i&(i+1)-1在前缀和节点之间跳转
 */
package fenwicktree

import (
	"errors"
)

var (
	EmptyArrayError = errors.New("array cannot be empty")
	OutOfRangeError = errors.New("index/range out of bounds")
)

type FenwickTree struct {
	data []int64
}

func New(values []int64) (*FenwickTree, error) {
	if len(values) == 0 {
		return nil, EmptyArrayError
	}
	tree := &FenwickTree{data: make([]int64, len(values))}
	for i, value := range values {
		tree.data[i] += value
		if next := i | (i + 1); next < len(values) {
			tree.data[next] += tree.data[i]
		}
	}
	return tree, nil
}

// Add applies a delta to a single index.
func (t *FenwickTree) Add(index int, delta int64) error {
	if index < 0 || index >= len(t.data) {
		return OutOfRangeError
	}
	for index < len(t.data) {
		t.data[index] += delta
		index = index | (index + 1)
	}
	return nil
}

func (t *FenwickTree) prefixSum(index int) int64 {
	sum := int64(0)
	for index >= 0 {
		sum += t.data[index]
		index = index&(index+1) - 1
	}
	return sum
}

// RangeSum returns the sum over the inclusive range [lo, hi].
func (t *FenwickTree) RangeSum(lo, hi int) (int64, error) {
	if lo < 0 || hi >= len(t.data) || lo > hi {
		return 0, OutOfRangeError
	}
	return t.prefixSum(hi) - t.prefixSum(lo-1), nil
}

func (t *FenwickTree) Sum() int64 {
	return t.prefixSum(len(t.data) - 1)
}

func (t *FenwickTree) At(index int) (int64, error) {
	return t.RangeSum(index, index)
}

func (t *FenwickTree) Size() int {
	return len(t.data)
}
