/**
 * 可持久化线段树：每次单点更新只拷贝根到叶的路径，其余子树与历史版本共享，
 * 因此任意旧版本都可以随时查询且不会被后续更新影响。
 */
package segmenttree

import (
	"errors"
	"math"
	"runtime"
	"sync/atomic"
	"unsafe"

	"github.com/Workiva/go-datastructures/bitarray"
	"github.com/op/go-logging"

	"gitlab.x.lan/yunshan/algorithm-libs/stats"
)

var log = logging.MustGetLogger("segmenttree")

var (
	EmptyArrayError     = errors.New("array cannot be empty")
	InvalidVersionError = errors.New("invalid version")
	OutOfRangeError     = errors.New("index/range out of bounds")
)

const noChild = int32(-1)

type aggregate uint8

const (
	aggSum aggregate = iota
	aggMin
	aggMax
)

// node一旦写入arena便不再修改，多个版本通过索引共享同一节点
type node struct {
	sum int64
	min int64
	max int64

	left  int32 // arena索引，叶子节点为noChild
	right int32
}

type Counter struct {
	Updates    uint64 `statsd:"updates"`
	Queries    uint64 `statsd:"queries"`
	NodeAllocs uint64 `statsd:"node-allocs"`
}

type PersistentSegmentTree struct {
	arena []node  // 只增不减，节点全部由arena持有
	roots []int32 // 版本号即下标
	size  int

	counter Counter
}

// New builds version 0 from the initial array. The array length is fixed
// for the lifetime of the tree.
func New(values []int64) (*PersistentSegmentTree, error) {
	if len(values) == 0 {
		return nil, EmptyArrayError
	}
	tree := &PersistentSegmentTree{
		arena: make([]node, 0, 2*len(values)-1),
		roots: make([]int32, 0, 1),
		size:  len(values),
	}
	tree.roots = append(tree.roots, tree.build(values, 0, len(values)-1))
	stats.RegisterCountable("segmenttree", tree)
	runtime.SetFinalizer(tree, func(t *PersistentSegmentTree) { t.Close() })
	log.Debugf("built version 0 over %d values, %d nodes", len(values), len(tree.arena))
	return tree, nil
}

func (t *PersistentSegmentTree) Close() {
	stats.DeregisterCountable(t)
}

func (t *PersistentSegmentTree) GetCounter() interface{} {
	return &Counter{
		Updates:    atomic.SwapUint64(&t.counter.Updates, 0),
		Queries:    atomic.SwapUint64(&t.counter.Queries, 0),
		NodeAllocs: atomic.SwapUint64(&t.counter.NodeAllocs, 0),
	}
}

func (t *PersistentSegmentTree) alloc(n node) int32 {
	t.arena = append(t.arena, n)
	atomic.AddUint64(&t.counter.NodeAllocs, 1)
	return int32(len(t.arena) - 1)
}

func (t *PersistentSegmentTree) allocLeaf(value int64) int32 {
	return t.alloc(node{sum: value, min: value, max: value, left: noChild, right: noChild})
}

func (t *PersistentSegmentTree) allocInternal(left, right int32) int32 {
	combined := node{
		sum:   t.arena[left].sum + t.arena[right].sum,
		min:   minInt64(t.arena[left].min, t.arena[right].min),
		max:   maxInt64(t.arena[left].max, t.arena[right].max),
		left:  left,
		right: right,
	}
	return t.alloc(combined)
}

func (t *PersistentSegmentTree) build(values []int64, lo, hi int) int32 {
	if lo == hi {
		return t.allocLeaf(values[lo])
	}
	mid := (lo + hi) / 2
	left := t.build(values, lo, mid)
	right := t.build(values, mid+1, hi)
	return t.allocInternal(left, right)
}

// Update creates a new version derived from the given version with a single
// leaf changed, and returns the new version id. Only the nodes on the
// root-to-leaf path are copied.
func (t *PersistentSegmentTree) Update(version, index int, value int64) (int, error) {
	if err := t.checkVersion(version); err != nil {
		return 0, err
	}
	if index < 0 || index >= t.size {
		return 0, OutOfRangeError
	}
	root := t.copyPath(t.roots[version], 0, t.size-1, index, value)
	t.roots = append(t.roots, root)
	atomic.AddUint64(&t.counter.Updates, 1)
	return len(t.roots) - 1, nil
}

func (t *PersistentSegmentTree) copyPath(ref int32, lo, hi, index int, value int64) int32 {
	if lo == hi {
		return t.allocLeaf(value)
	}
	mid := (lo + hi) / 2
	old := t.arena[ref]
	if index <= mid {
		return t.allocInternal(t.copyPath(old.left, lo, mid, index, value), old.right)
	}
	return t.allocInternal(old.left, t.copyPath(old.right, mid+1, hi, index, value))
}

func (t *PersistentSegmentTree) QuerySum(version, lo, hi int) (int64, error) {
	return t.query(version, lo, hi, aggSum)
}

func (t *PersistentSegmentTree) QueryMin(version, lo, hi int) (int64, error) {
	return t.query(version, lo, hi, aggMin)
}

func (t *PersistentSegmentTree) QueryMax(version, lo, hi int) (int64, error) {
	return t.query(version, lo, hi, aggMax)
}

func (t *PersistentSegmentTree) query(version, lo, hi int, kind aggregate) (int64, error) {
	if err := t.checkVersion(version); err != nil {
		return 0, err
	}
	if lo < 0 || hi >= t.size || lo > hi {
		return 0, OutOfRangeError
	}
	atomic.AddUint64(&t.counter.Queries, 1)
	return t.queryNode(t.roots[version], 0, t.size-1, lo, hi, kind), nil
}

func (t *PersistentSegmentTree) queryNode(ref int32, nodeLo, nodeHi, lo, hi int, kind aggregate) int64 {
	if lo <= nodeLo && nodeHi <= hi { // 节点区间被查询区间覆盖
		switch kind {
		case aggMin:
			return t.arena[ref].min
		case aggMax:
			return t.arena[ref].max
		default:
			return t.arena[ref].sum
		}
	}
	if hi < nodeLo || nodeHi < lo { // 不相交，返回单位元
		switch kind {
		case aggMin:
			return math.MaxInt64
		case aggMax:
			return math.MinInt64
		default:
			return 0
		}
	}
	mid := (nodeLo + nodeHi) / 2
	left := t.queryNode(t.arena[ref].left, nodeLo, mid, lo, hi, kind)
	right := t.queryNode(t.arena[ref].right, mid+1, nodeHi, lo, hi, kind)
	switch kind {
	case aggMin:
		return minInt64(left, right)
	case aggMax:
		return maxInt64(left, right)
	default:
		return left + right
	}
}

// VersionArray reconstructs the full array as of the given version.
func (t *PersistentSegmentTree) VersionArray(version int) ([]int64, error) {
	if err := t.checkVersion(version); err != nil {
		return nil, err
	}
	values := make([]int64, t.size)
	t.fill(t.roots[version], 0, t.size-1, values)
	return values, nil
}

func (t *PersistentSegmentTree) fill(ref int32, lo, hi int, values []int64) {
	if t.arena[ref].left == noChild {
		values[lo] = t.arena[ref].sum
		return
	}
	mid := (lo + hi) / 2
	t.fill(t.arena[ref].left, lo, mid, values)
	t.fill(t.arena[ref].right, mid+1, hi, values)
}

// Modified returns the set of indexes whose values differ between two
// versions. Shared subtrees have equal arena indexes and are pruned without
// descending into them.
func (t *PersistentSegmentTree) Modified(base, version int) (bitarray.BitArray, error) {
	if err := t.checkVersion(base); err != nil {
		return nil, err
	}
	if err := t.checkVersion(version); err != nil {
		return nil, err
	}
	modified := bitarray.NewSparseBitArray()
	t.diff(t.roots[base], t.roots[version], 0, t.size-1, modified)
	return modified, nil
}

func (t *PersistentSegmentTree) diff(a, b int32, lo, hi int, out bitarray.BitArray) {
	if a == b {
		return
	}
	if lo == hi {
		if t.arena[a].sum != t.arena[b].sum {
			out.SetBit(uint64(lo))
		}
		return
	}
	mid := (lo + hi) / 2
	t.diff(t.arena[a].left, t.arena[b].left, lo, mid, out)
	t.diff(t.arena[a].right, t.arena[b].right, mid+1, hi, out)
}

func (t *PersistentSegmentTree) VersionCount() int {
	return len(t.roots)
}

func (t *PersistentSegmentTree) Size() int {
	return t.size
}

func (t *PersistentSegmentTree) NodeCount() int {
	return len(t.arena)
}

// MemoryUsage returns the bytes held by the node arena and the version table.
func (t *PersistentSegmentTree) MemoryUsage() int {
	return len(t.arena)*int(unsafe.Sizeof(node{})) + len(t.roots)*int(unsafe.Sizeof(int32(0)))
}

func (t *PersistentSegmentTree) checkVersion(version int) error {
	if version < 0 || version >= len(t.roots) {
		return InvalidVersionError
	}
	return nil
}

func minInt64(x, y int64) int64 {
	if x < y {
		return x
	}
	return y
}

func maxInt64(x, y int64) int64 {
	if x > y {
		return x
	}
	return y
}
