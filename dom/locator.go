package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2026 the domkit authors

*/

import (
	"strings"

	"github.com/domkit/domkit/maybe"
)

// Upward searches match a node's id attribute, its tag name, or one token
// of its class-token set. The search condition is a tagged variant with a
// fixed set of three constructors.

type conditionKind uint8

const (
	byID conditionKind = iota + 1
	byTagName
	byClassName
)

// Condition describes which attribute of a node an upward search matches
// on. Create Conditions with ByID, ByTagName or ByClassName.
type Condition struct {
	kind  conditionKind
	value string
}

// ByID matches nodes whose id attribute is present and equals id exactly.
func ByID(id string) Condition {
	return Condition{kind: byID, value: id}
}

// ByTagName matches element nodes with the given tag name. HTML tag names
// are matched case-insensitively: the parse tree stores them in lower-case,
// while W3C node names report them in upper-case.
func ByTagName(name string) Condition {
	return Condition{kind: byTagName, value: name}
}

// ByClassName matches nodes carrying class as one token of their
// class-token set.
func ByClassName(class string) Condition {
	return Condition{kind: byClassName, value: class}
}

// Match tests a single node against the condition.
func (cond Condition) Match(n *W3CNode) bool {
	if n == nil {
		return false
	}
	switch cond.kind {
	case byID:
		id, ok := n.attribute("id")
		return ok && id == cond.value
	case byTagName:
		return n.TagName() != "" && strings.EqualFold(n.htmlNode.Data, cond.value)
	case byClassName:
		return n.HasClass(cond.value)
	}
	return false
}

// maxChainDepth bounds the upward walk of Closest. The document structure
// is assumed to be acyclic, but a malformed, cyclic parent chain must not
// hang the search: after maxChainDepth steps the walk gives up and reports
// an absent result.
const maxChainDepth = 4096

// Closest returns the nearest node—starting at n itself and proceeding
// through successive parents—matching the given condition. If no node of
// the ancestor chain, up to and including the root, matches, an absent
// result is returned. Absence is a normal outcome, not a fault.
//
// The walk is purely a read traversal: repeated identical calls yield the
// same result. It runs in O(depth) time and re-walks the chain on every
// call; nothing is cached.
//
// Note that the search is inclusive: a starting node which itself
// satisfies the condition is returned as the result.
func (n *W3CNode) Closest(cond Condition) maybe.Maybe[*W3CNode] {
	walk := n
	for steps := 0; walk != nil; steps++ {
		if steps >= maxChainDepth {
			tracer().Errorf("upward search exceeded %d steps; cyclic parent chain?", maxChainDepth)
			return maybe.Nothing[*W3CNode]()
		}
		if cond.Match(walk) {
			return maybe.Just(walk)
		}
		walk = walk.parentNode()
	}
	return maybe.Nothing[*W3CNode]()
}

// ClosestByID searches for an ancestor (including n itself) with an id
// attribute exactly matching id.
func (n *W3CNode) ClosestByID(id string) maybe.Maybe[*W3CNode] {
	return n.Closest(ByID(id))
}

// ClosestByTagName searches for an ancestor (including n itself) with the
// given tag name.
func (n *W3CNode) ClosestByTagName(name string) maybe.Maybe[*W3CNode] {
	return n.Closest(ByTagName(name))
}

// ClosestByClassName searches for an ancestor (including n itself)
// carrying class as one of its class tokens.
func (n *W3CNode) ClosestByClassName(class string) maybe.Maybe[*W3CNode] {
	return n.Closest(ByClassName(class))
}
