/**
 * 并查集，按秩合并加路径减半
 */
package disjointset

import (
	"errors"
)

var (
	EmptySetError   = errors.New("set cannot be empty")
	OutOfRangeError = errors.New("index out of bounds")
)

type DisjointSet struct {
	parent []int32
	rank   []uint8
	count  int // 当前集合数
}

func New(n int) (*DisjointSet, error) {
	if n <= 0 {
		return nil, EmptySetError
	}
	set := &DisjointSet{
		parent: make([]int32, n),
		rank:   make([]uint8, n),
		count:  n,
	}
	for i := range set.parent {
		set.parent[i] = int32(i)
	}
	return set, nil
}

// Find returns the representative element, halving the path on the way up.
func (s *DisjointSet) Find(x int) (int, error) {
	if x < 0 || x >= len(s.parent) {
		return 0, OutOfRangeError
	}
	root := int32(x)
	for s.parent[root] != root {
		s.parent[root] = s.parent[s.parent[root]]
		root = s.parent[root]
	}
	return int(root), nil
}

// Union merges the sets containing x and y, returns false if already merged.
func (s *DisjointSet) Union(x, y int) (bool, error) {
	rootX, err := s.Find(x)
	if err != nil {
		return false, err
	}
	rootY, err := s.Find(y)
	if err != nil {
		return false, err
	}
	if rootX == rootY {
		return false, nil
	}
	if s.rank[rootX] < s.rank[rootY] {
		rootX, rootY = rootY, rootX
	}
	s.parent[rootY] = int32(rootX)
	if s.rank[rootX] == s.rank[rootY] {
		s.rank[rootX]++
	}
	s.count--
	return true, nil
}

func (s *DisjointSet) Connected(x, y int) (bool, error) {
	rootX, err := s.Find(x)
	if err != nil {
		return false, err
	}
	rootY, err := s.Find(y)
	if err != nil {
		return false, err
	}
	return rootX == rootY, nil
}

func (s *DisjointSet) Count() int {
	return s.count
}

func (s *DisjointSet) Size() int {
	return len(s.parent)
}
