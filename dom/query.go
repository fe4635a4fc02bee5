package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2026 the domkit authors

*/

import (
	"github.com/andybalholm/cascadia"
	"github.com/domkit/domkit/maybe"
	"github.com/domkit/domkit/tree"
)

// Matches reports whether the node itself matches a CSS selector group.
// An error is returned for selectors cascadia cannot compile.
func (n *W3CNode) Matches(selectors string) (bool, error) {
	sel, err := cascadia.Compile(selectors)
	if err != nil {
		return false, err
	}
	return sel(n.htmlNode), nil
}

// QuerySelector returns the first descendent of n, in document order,
// matching a CSS selector group. The start node itself is not eligible.
// An absent result means no descendent matched.
func (n *W3CNode) QuerySelector(selectors string) (maybe.Maybe[*W3CNode], error) {
	list, err := n.QuerySelectorAll(selectors)
	if err != nil {
		return maybe.Nothing[*W3CNode](), err
	}
	if len(list) == 0 {
		return maybe.Nothing[*W3CNode](), nil
	}
	return maybe.Just(list[0]), nil
}

// QuerySelectorAll returns all descendents of n, in document order,
// matching a CSS selector group.
func (n *W3CNode) QuerySelectorAll(selectors string) ([]*W3CNode, error) {
	sel, err := cascadia.Compile(selectors)
	if err != nil {
		tracer().Errorf("cannot compile selectors: %v", err)
		return nil, err
	}
	return n.collect(func(test *W3CNode) bool {
		return sel(test.htmlNode)
	})
}

// GetElementByID searches the subtree below n (including n) for an element
// with an id attribute exactly matching id.
func (n *W3CNode) GetElementByID(id string) maybe.Maybe[*W3CNode] {
	cond := ByID(id)
	if cond.Match(n) {
		return maybe.Just(n)
	}
	hits, err := n.collect(cond.Match)
	if err != nil || len(hits) == 0 {
		return maybe.Nothing[*W3CNode]()
	}
	return maybe.Just(hits[0])
}

// GetElementsByTagName returns all element descendents of n with the given
// tag name, in document order. Tag names are matched case-insensitively.
func (n *W3CNode) GetElementsByTagName(name string) []*W3CNode {
	hits, _ := n.collect(ByTagName(name).Match)
	return hits
}

// GetElementsByClassName returns all descendents of n carrying class as
// one of their class tokens, in document order.
func (n *W3CNode) GetElementsByClassName(class string) []*W3CNode {
	hits, _ := n.collect(ByClassName(class).Match)
	return hits
}

// collect walks the subtree below n, in document order, and gathers every
// descendent for which accept returns true.
func (n *W3CNode) collect(accept func(*W3CNode) bool) ([]*W3CNode, error) {
	predicate := func(test *tree.Node[*W3CNode], unused *tree.Node[*W3CNode]) (
		*tree.Node[*W3CNode], error) {
		//
		if accept(NodeFromTreeNode(test)) {
			return test, nil
		}
		return nil, nil
	}
	future := tree.NewWalker(&n.Node).DescendentsWith(predicate).Promise()
	selection, err := future()
	if err != nil {
		return nil, err
	}
	nodes := make([]*W3CNode, 0, len(selection))
	for _, tn := range selection {
		nodes = append(nodes, NodeFromTreeNode(tn))
	}
	return nodes, nil
}
