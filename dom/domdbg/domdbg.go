/*
Package domdbg implements helpers to debug a DOM tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2026 the domkit authors

*/
package domdbg

import (
	"fmt"
	"io"
	"strings"

	"github.com/domkit/domkit/dom"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Dump renders a DOM subtree as an ASCII diagram. Clients have to provide
// the root node of the subtree and a Writer.
func Dump(n *dom.W3CNode, w io.Writer) error {
	_, err := io.WriteString(w, Print(n))
	return err
}

// Print renders a DOM subtree as an ASCII diagram and returns it as a
// string.
func Print(n *dom.W3CNode) string {
	if n == nil {
		return "(empty DOM)\n"
	}
	p := tp.New()
	ppn(p, n)
	return p.String()
}

func ppn(p tp.Tree, n *dom.W3CNode) {
	children := n.ChildNodes()
	if children.Length() == 0 {
		p.AddNode(label(n))
		return
	}
	branch := p.AddBranch(label(n))
	for i := 0; i < children.Length(); i++ {
		if ch, ok := children.Item(i).(*dom.W3CNode); ok {
			ppn(branch, ch)
		}
	}
}

// label formats a node for the diagram: tag names with id/class decoration,
// shortened text content for text nodes.
func label(n *dom.W3CNode) string {
	if n.NodeType() == html.TextNode {
		return fmt.Sprintf("%q", shortText(n.NodeValue()))
	}
	name := n.NodeName()
	if id := n.ID(); id != "" {
		name += "#" + id
	}
	if classes := n.ClassList(); len(classes) > 0 {
		name += "." + strings.Join(classes, ".")
	}
	return name
}

func shortText(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 20 {
		s = s[:20] + "…"
	}
	return s
}
