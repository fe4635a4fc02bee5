package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2026 the domkit authors

*/

import "errors"

// ErrInvalidFilter is thrown if a walker filter step is defunct.
var ErrInvalidFilter = errors.New("filter stage is invalid")

// ErrEmptyTree is thrown if a Walker is called with an empty tree. Refer to
// the documentation of NewWalker() for details about this scenario.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// maxChainLength bounds every walk up a parent chain. A well-formed tree
// never comes close to this limit; a malformed, cyclic parent chain will
// terminate with an empty selection instead of looping forever.
const maxChainLength = 4096

// Predicate is a function type to match against nodes of a tree.
// It is used as an argument for various Walker functions to
// collect a selection of nodes.
// test is the node under test, node is the input node.
type Predicate[T comparable] func(test *Node[T], node *Node[T]) (match *Node[T], err error)

// Whatever is a predicate to match anything (see type Predicate).
// It is useful to match the first node in a given direction.
func Whatever[T comparable]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (*Node[T], error) {
		return test, nil
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (match *Node[T], err error) {
		if test.ChildCount() == 0 {
			return test, nil
		}
		return nil, nil
	}
}

// Walker holds information for operating on trees: finding nodes and
// doing work on them. Clients usually create a Walker for a (sub-)tree
// to search for a selection of nodes matching certain criteria, and
// then fetch this selection through a Promise-object.
//
// A typical usage of a Walker looks like this ("FindNodes()" is a
// placeholder for a chain of filter calls, see below):
//
//    w := NewWalker(node)
//    futureResult := w.FindNodes(…).Promise()
//    nodes, err := futureResult()
//
// Walkers support a set of search & filter functions. Clients will chain
// some of these to perform tasks on tree nodes. You may think of the set
// of operations to form a small Domain Specific Language, similar in
// concept to JQuery.
//
// All filter stages run synchronously and to completion within the call
// that appends them; Promise() is kept as the terminal of the expression
// chain and as the single place where errors are reported.
type Walker[T comparable] struct {
	selection []*Node[T] // current selection of tree nodes
	lasterror error      // first error of the filter chain
}

// NewWalker creates a Walker for the initial node of a (sub-)tree.
// The first subsequent call to a node filter function will have this
// initial node as input.
//
// If initial is nil, NewWalker will return a nil-Walker, resulting
// in a NOP-chain of operations, resulting in an empty set of nodes
// and an error (ErrEmptyTree).
func NewWalker[T comparable](initial *Node[T]) *Walker[T] {
	if initial == nil {
		return nil
	}
	tracer().Debugf("new tree-walker, initial node = %v", initial)
	return &Walker[T]{selection: []*Node[T]{initial}}
}

// Promise is the terminal of a walker expression chain.
// Calling the returned function hands out the selected nodes and the first
// error of the chain, if any.
func (w *Walker[T]) Promise() func() ([]*Node[T], error) {
	if w == nil {
		// empty Walker => return nil set and an error
		return func() ([]*Node[T], error) {
			return nil, ErrEmptyTree
		}
	}
	selection, lasterror := w.selection, w.lasterror
	return func() ([]*Node[T], error) {
		return selection, lasterror
	}
}

// apply replaces the current selection with the output of a filter task,
// applied to every node of the current selection.
func (w *Walker[T]) apply(task func(node *Node[T], emit func(*Node[T]))) *Walker[T] {
	if w.lasterror != nil {
		return w // do not proceed with a defunct chain
	}
	var next []*Node[T]
	seen := make(map[*Node[T]]bool) // selections are sets, suppress duplicates
	emit := func(n *Node[T]) {
		if n != nil && !seen[n] {
			seen[n] = true
			next = append(next, n)
		}
	}
	for _, node := range w.selection {
		task(node, emit)
	}
	w.selection = next
	return w
}

// Parent returns a walker over the parents of the current selection.
// Root nodes do not produce a result.
//
// If w is nil, Parent will return nil.
func (w *Walker[T]) Parent() *Walker[T] {
	if w == nil {
		return nil
	}
	return w.apply(func(node *Node[T], emit func(*Node[T])) {
		if p := node.Parent(); p != nil {
			emit(p)
		}
	})
}

// AncestorWith finds an ancestor matching the given predicate.
// The search does not include the start node.
//
// If w is nil, AncestorWith will return nil.
func (w *Walker[T]) AncestorWith(predicate Predicate[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if predicate == nil {
		w.lasterror = ErrInvalidFilter
		return w
	}
	return w.apply(func(node *Node[T], emit func(*Node[T])) {
		anc := node.Parent()
		for steps := 0; anc != nil && steps < maxChainLength; steps++ {
			matched, err := predicate(anc, node)
			if err != nil {
				w.lasterror = err
				return
			}
			if matched != nil {
				emit(matched)
				return
			}
			anc = anc.Parent()
		}
		// no matching ancestor found, not an error
	})
}

// DescendentsWith finds descendents matching a predicate, in depth-first
// (document) order. The search does not include the start node.
//
// If a predicate call returns an error for a node, descending the branch
// below this node is aborted.
//
// If w is nil, DescendentsWith will return nil.
func (w *Walker[T]) DescendentsWith(predicate Predicate[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if predicate == nil {
		w.lasterror = ErrInvalidFilter
		return w
	}
	return w.apply(func(node *Node[T], emit func(*Node[T])) {
		for _, ch := range node.Children() {
			if err := descend(ch, node, predicate, emit); err != nil {
				w.lasterror = err
			}
		}
	})
}

func descend[T comparable](node, origin *Node[T], predicate Predicate[T], emit func(*Node[T])) error {
	matched, err := predicate(node, origin)
	if err != nil {
		tracer().Debugf("predicate for node %s returned error: %v", node, err)
		return err // do not descend further
	}
	if matched != nil {
		emit(matched)
	}
	for _, ch := range node.Children() {
		if err := descend(ch, origin, predicate, emit); err != nil {
			return err
		}
	}
	return nil
}

// AllDescendents traverses all descendents.
// The traversal does not include the start node.
// This is just a wrapper around `w.DescendentsWith(Whatever)`.
//
// If w is nil, AllDescendents will return nil.
func (w *Walker[T]) AllDescendents() *Walker[T] {
	return w.DescendentsWith(Whatever[T]())
}

// Filter calls a client-provided predicate on each node of the selection.
// The predicate should return the input node if it is accepted and
// nil otherwise.
//
// If w is nil, Filter will return nil.
func (w *Walker[T]) Filter(f Predicate[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if f == nil {
		w.lasterror = ErrInvalidFilter
		return w
	}
	return w.apply(func(node *Node[T], emit func(*Node[T])) {
		matched, err := f(node, node)
		if err != nil {
			w.lasterror = err
			return
		}
		if matched != nil {
			emit(matched)
		}
	})
}
