/**
 * 只消费segmenttree的公开接口，把查询和版本信息渲染为可读文本
 */
package report

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/OneOfOne/xxhash"
	"github.com/docker/go-units"

	"gitlab.x.lan/yunshan/algorithm-libs/segmenttree"
)

func FormatQuery(kind string, version, lo, hi int, result int64) string {
	return fmt.Sprintf("%s(v%d, [%d, %d]) = %d", kind, version, lo, hi, result)
}

func FormatUpdate(base, index int, value int64, newVersion int) string {
	return fmt.Sprintf("update(v%d, %d, %d) -> v%d", base, index, value, newVersion)
}

// FormatVersion renders the version's array together with a digest, e.g.
// "v1: [1, 2, 10, 4, 5] digest=c2a3..."
func FormatVersion(tree *segmenttree.PersistentSegmentTree, version int) (string, error) {
	values, err := tree.VersionArray(version)
	if err != nil {
		return "", err
	}
	items := make([]string, len(values))
	for i, value := range values {
		items[i] = strconv.FormatInt(value, 10)
	}
	return fmt.Sprintf("v%d: [%s] digest=%016x",
		version, strings.Join(items, ", "), Digest(values)), nil
}

func FormatSummary(tree *segmenttree.PersistentSegmentTree) string {
	return fmt.Sprintf("size=%d versions=%d nodes=%d memory=%s",
		tree.Size(), tree.VersionCount(), tree.NodeCount(),
		units.BytesSize(float64(tree.MemoryUsage())))
}

// Digest returns the xxhash of the array's little-endian encoding.
func Digest(values []int64) uint64 {
	hasher := xxhash.New64()
	buffer := make([]byte, 8)
	for _, value := range values {
		binary.LittleEndian.PutUint64(buffer, uint64(value))
		hasher.Write(buffer)
	}
	return hasher.Sum64()
}
