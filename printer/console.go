package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/cow/bintree"
	"github.com/npillmayer/cow/heap"
	"github.com/npillmayer/cow/list"
)

// output writes to an io.Writer, keeping track of the current column and of
// the first error.
type output struct {
	w      io.Writer
	config Config
	colors palette
	col    int // en already printed on the current line
	err    error
}

func newOutput(w io.Writer, config Config) *output {
	return &output{w: w, config: config, colors: config.palette()}
}

func (o *output) print(c *color.Color, s string) {
	if o.err != nil {
		return
	}
	if c == nil {
		_, o.err = io.WriteString(o.w, s)
	} else {
		_, o.err = c.Fprint(o.w, s)
	}
	o.col += o.config.width(s)
}

func (o *output) newline() {
	o.print(nil, "\n")
	o.col = 0
}

// words prints labels separated by blanks, wrapping lines which would get
// longer than the configured width. Continuation lines are indented.
func (o *output) words(labels []string, indent string) {
	for i, label := range labels {
		if i > 0 {
			if w := o.config.Width; w > 0 && o.col+1+o.config.width(label) > w {
				o.newline()
				o.print(nil, indent)
			} else {
				o.print(nil, " ")
			}
		}
		o.print(o.colors.label, label)
	}
}

func labels[T any](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprint(v)
	}
	return out
}

// FprintList writes the elements of l to w, enclosed in brackets.
func FprintList[T any](w io.Writer, l *list.List[T], config Config) error {
	o := newOutput(w, config)
	o.print(o.colors.frame, "[")
	o.words(labels(l.Slice()), " ")
	o.print(o.colors.frame, "]")
	o.newline()
	return o.err
}

// FprintHeap writes the elements of h to w, one line per level of the heap.
func FprintHeap[T any](w io.Writer, h *heap.Heap[T], config Config) error {
	o := newOutput(w, config)
	elems := labels(h.Slice())
	for level, start := 0, 0; start < len(elems); level++ {
		end := min(2*start+1, len(elems))
		prefix := fmt.Sprintf("%d: ", level)
		o.print(o.colors.frame, prefix)
		o.words(elems[start:end], strings.Repeat(" ", len(prefix)))
		o.newline()
		start = end
	}
	tracer().Debugf("printer: printed heap of %d elements", len(elems))
	return o.err
}

// FprintTree writes the nodes of t to w, one line per node, children
// indented below their parent. Missing children of inner nodes are printed
// as "·".
func FprintTree[T any](w io.Writer, t *bintree.Tree[T], config Config) error {
	o := newOutput(w, config)
	root := t.ImmutableRoot()
	if !root.Exists() {
		o.print(o.colors.slot, "·")
		o.newline()
		return o.err
	}
	printNode(o, root, "")
	return o.err
}

func printNode[T any](o *output, n bintree.ImmutableRef[T], indent string) {
	o.print(o.colors.label, fmt.Sprint(n.Value()))
	o.newline()
	left, right := n.Left(), n.Right()
	if !left.Exists() && !right.Exists() {
		return
	}
	printChild(o, "L", left, indent, false)
	printChild(o, "R", right, indent, true)
}

func printChild[T any](o *output, side string, c bintree.ImmutableRef[T], indent string, last bool) {
	branch, cont := "├─ ", "│  "
	if last {
		branch, cont = "└─ ", "   "
	}
	o.print(o.colors.frame, indent+branch+side+" ")
	if !c.Exists() {
		o.print(o.colors.slot, "·")
		o.newline()
		return
	}
	printNode(o, c, indent+cont)
}
