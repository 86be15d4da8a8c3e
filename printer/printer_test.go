package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/cow/bintree"
	"github.com/npillmayer/cow/heap"
	"github.com/npillmayer/cow/list"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFprintList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cow")
	defer teardown()
	//
	tests := []struct {
		width int
		want  string
	}{
		{0, "[1 2 3]\n"},
		{6, "[1 2 3]\n"},
		{5, "[1 2\n 3]\n"},
	}
	for _, tc := range tests {
		var buf bytes.Buffer
		if err := FprintList(&buf, list.Of(1, 2, 3), Config{Width: tc.width}); err != nil {
			t.Fatalf("FprintList failed: %v", err)
		}
		if diff := cmp.Diff(tc.want, buf.String()); diff != "" {
			t.Errorf("width %d: mismatch (-want +got):\n%s", tc.width, diff)
		}
	}
	var buf bytes.Buffer
	FprintList(&buf, list.New[string](), Config{})
	if buf.String() != "[]\n" {
		t.Errorf("unexpected output for empty list: %q", buf.String())
	}
}

func TestLabelWidth(t *testing.T) {
	tests := []struct {
		label string
		width int
	}{
		{"", 0},
		{"12", 2},
		{"#3*", 3},
		{"a-b", 3},
		{"世", 2},
		{"x世", 3},
	}
	for _, tc := range tests {
		if w := (Config{}).width(tc.label); w != tc.width {
			t.Errorf("width(%q): expected %d en, have %d", tc.label, tc.width, w)
		}
	}
}

func TestFprintHeap(t *testing.T) {
	h := heap.From(func(a, b int) bool { return a < b }, 1, 2, 3, 4, 5)
	var buf bytes.Buffer
	if err := FprintHeap(&buf, h, Config{}); err != nil {
		t.Fatalf("FprintHeap failed: %v", err)
	}
	if diff := cmp.Diff("0: 1\n1: 2 3\n2: 4 5\n", buf.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFprintTree(t *testing.T) {
	tree := bintree.Leaf(1)
	tree.Root().Left().SetValue(2)
	tree.Root().Left().Left().SetValue(3)
	tree.Root().Left().Right().SetValue(4)
	var buf bytes.Buffer
	if err := FprintTree(&buf, tree, Config{}); err != nil {
		t.Fatalf("FprintTree failed: %v", err)
	}
	want := strings.Join([]string{
		"1",
		"├─ L 2",
		"│  ├─ L 3",
		"│  └─ R 4",
		"└─ R ·",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	buf.Reset()
	FprintTree(&buf, bintree.New[int](), Config{})
	if buf.String() != "·\n" {
		t.Errorf("unexpected output for empty tree: %q", buf.String())
	}
}

func TestColors(t *testing.T) {
	var buf bytes.Buffer
	FprintList(&buf, list.Of("x"), Config{Colors: true})
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected escape sequences in colored output, have %q", buf.String())
	}
}

func TestDefaultConfigForNonTerminal(t *testing.T) {
	c := DefaultConfig(&bytes.Buffer{})
	if c.Colors || c.Width != 65 {
		t.Errorf("expected plain output of width 65 for a buffer, have %+v", c)
	}
}
