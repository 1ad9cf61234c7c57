package report

import (
	"strings"
	"testing"

	"gitlab.x.lan/yunshan/algorithm-libs/segmenttree"
)

func TestFormatQuery(t *testing.T) {
	line := FormatQuery("sum", 1, 0, 4, 22)
	if line != "sum(v1, [0, 4]) = 22" {
		t.Errorf("line %q is not expected", line)
	}
}

func TestFormatUpdate(t *testing.T) {
	line := FormatUpdate(0, 2, 10, 1)
	if line != "update(v0, 2, 10) -> v1" {
		t.Errorf("line %q is not expected", line)
	}
}

func TestFormatVersion(t *testing.T) {
	tree, _ := segmenttree.New([]int64{1, 2, 3})
	line, err := FormatVersion(tree, 0)
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	if !strings.HasPrefix(line, "v0: [1, 2, 3] digest=") {
		t.Errorf("line %q is not expected", line)
	}
	if _, err := FormatVersion(tree, 1); err != segmenttree.InvalidVersionError {
		t.Errorf("expected InvalidVersionError, got %v", err)
	}
}

func TestDigest(t *testing.T) {
	a := Digest([]int64{1, 2, 3})
	b := Digest([]int64{1, 2, 3})
	c := Digest([]int64{3, 2, 1})
	if a != b {
		t.Errorf("digest is not deterministic")
	}
	if a == c {
		t.Errorf("different arrays share digest")
	}
}

func TestFormatSummary(t *testing.T) {
	tree, _ := segmenttree.New([]int64{1, 2, 3, 4})
	summary := FormatSummary(tree)
	if !strings.Contains(summary, "size=4") || !strings.Contains(summary, "versions=1") {
		t.Errorf("summary %q is not expected", summary)
	}
}
