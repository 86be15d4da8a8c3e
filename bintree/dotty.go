package bintree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T any] struct {
	idTable map[*node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(n *node[T]) int {
	return ids.idTable[n]
}

func (ids *nodeids[T]) alloc(n *node[T]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the structure of a tree in Graphviz DOT format (for debugging
// purposes). Missing children are drawn as small empty circles.
func ToDot[T any](t *Tree[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	var nodelist, edgelist strings.Builder
	if !t.IsEmpty() {
		ids := newtable[T]()
		empty := 0
		walk(t.root.Get(), PreOrder, func(n *node[T]) bool {
			ID := ids.alloc(n)
			label := strings.ReplaceAll(fmt.Sprint(n.value), `"`, `\"`)
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(n))
			if n.left == nil && n.right == nil {
				return true
			}
			for _, c := range []*node[T]{n.left, n.right} {
				if c == nil {
					empty++
					nilid := -empty
					fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
					fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
				} else {
					fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(c))
				}
			}
			return true
		})
	}
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles[T any](n *node[T]) string {
	s := ",style=filled"
	if n.left == nil && n.right == nil {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
