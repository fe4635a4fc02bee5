package dom

import (
	"github.com/domkit/domkit/tree"
	"golang.org/x/net/html"
)

// NodeIsText is a predicate to match text-nodes of a DOM.
// It is intended to be used in a tree.Walker.
var NodeIsText = func(n *tree.Node[*W3CNode], unused *tree.Node[*W3CNode]) (
	match *tree.Node[*W3CNode], err error) {
	//
	if NodeFromTreeNode(n).NodeType() == html.TextNode {
		return n, nil
	}
	return nil, nil
}

// NodeIsElement is a predicate to match element-nodes of a DOM.
// It is intended to be used in a tree.Walker.
var NodeIsElement = func(n *tree.Node[*W3CNode], unused *tree.Node[*W3CNode]) (
	match *tree.Node[*W3CNode], err error) {
	//
	if NodeFromTreeNode(n).NodeType() == html.ElementNode {
		return n, nil
	}
	return nil, nil
}
