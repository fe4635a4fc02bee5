package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2026 the domkit authors

*/

import (
	"strings"

	"github.com/domkit/domkit/dom/w3cdom"
	"github.com/domkit/domkit/tree"
	"golang.org/x/net/html"
)

// W3CNode is a wrapper around a node of the host document structure.
// It holds a reference to an HTML parse-tree node and is itself a node of a
// mirror tree, built once by FromHTMLParseTree. The wrapper only borrows
// the HTML node; creation and destruction of document nodes is owned
// entirely by the host document.
type W3CNode struct {
	tree.Node[*W3CNode] // we build on top of a general purpose tree
	htmlNode            *html.Node
}

var _ w3cdom.Node = &W3CNode{}

// NewNodeForHTMLNode creates a new wrapper node linked to an HTML node.
// The new node is not yet connected to a mirror tree.
func NewNodeForHTMLNode(h *html.Node) *W3CNode {
	if h == nil {
		return nil
	}
	n := &W3CNode{htmlNode: h}
	n.Payload = n // Payload will always reference the node itself
	return n
}

// FromHTMLParseTree builds a wrapper tree for an HTML parse tree, usually
// the output of html.Parse. Comment and doctype nodes are not mirrored.
//
// FromHTMLParseTree returns the wrapper for root, or nil if root is nil.
func FromHTMLParseTree(root *html.Node) *W3CNode {
	if root == nil {
		tracer().Infof("cannot build DOM for empty parse tree")
		return nil
	}
	if root.Type == html.CommentNode || root.Type == html.DoctypeNode {
		return nil
	}
	n := NewNodeForHTMLNode(root)
	for h := root.FirstChild; h != nil; h = h.NextSibling {
		if ch := FromHTMLParseTree(h); ch != nil {
			n.Node.AddChild(&ch.Node)
		}
	}
	return n
}

// NodeFromTreeNode returns the wrapper node corresponding to a generic
// tree node, or nil.
func NodeFromTreeNode(tn *tree.Node[*W3CNode]) *W3CNode {
	if tn == nil {
		return nil
	}
	return tn.Payload
}

// HTMLNode returns the HTML parse-tree node this wrapper is linked to.
func (n *W3CNode) HTMLNode() *html.Node {
	return n.htmlNode
}

// NodeType returns the type of the underlying HTML node
// (ElementNode, TextNode, etc.)
func (n *W3CNode) NodeType() html.NodeType {
	return n.htmlNode.Type
}

// NodeName reads the name of a node. Depending on the node's type it returns:
//
//    ElementNode   the tag name, by platform convention in upper-case
//    TextNode      "#text"
//    DocumentNode  "#document"
//    other         the empty string
//
func (n *W3CNode) NodeName() string {
	switch n.htmlNode.Type {
	case html.ElementNode:
		return strings.ToUpper(n.htmlNode.Data)
	case html.TextNode:
		return "#text"
	case html.DocumentNode:
		return "#document"
	}
	return ""
}

// NodeValue returns the text data for text nodes and the empty string for
// every other node type.
func (n *W3CNode) NodeValue() string {
	if n.htmlNode.Type == html.TextNode {
		return n.htmlNode.Data
	}
	return ""
}

// parentNode walks one step up the mirror tree.
func (n *W3CNode) parentNode() *W3CNode {
	if n == nil {
		return nil
	}
	return NodeFromTreeNode(n.Node.Parent())
}

// ParentNode returns the parent node, if any.
func (n *W3CNode) ParentNode() w3cdom.Node {
	if p := n.parentNode(); p != nil {
		return p
	}
	return nil
}

// HasChildNodes checks for existence of sub-nodes.
func (n *W3CNode) HasChildNodes() bool {
	return n.Node.ChildCount() > 0
}

// ChildNodes returns a list of all children-nodes.
func (n *W3CNode) ChildNodes() w3cdom.NodeList {
	list := NodeList{}
	for _, ch := range n.Node.Children() {
		list.nodes = append(list.nodes, NodeFromTreeNode(ch))
	}
	return list
}

// Children returns a list of element child-nodes, i.e. without text nodes
// and the like.
func (n *W3CNode) Children() w3cdom.NodeList {
	list := NodeList{}
	for _, ch := range n.Node.Children() {
		if m, _ := NodeIsElement(ch, nil); m != nil {
			list.nodes = append(list.nodes, NodeFromTreeNode(ch))
		}
	}
	return list
}

// FirstChild returns the first children-node, or nil.
func (n *W3CNode) FirstChild() w3cdom.Node {
	if ch, ok := n.Node.Child(0); ok {
		return NodeFromTreeNode(ch)
	}
	return nil
}

// NextSibling returns the node's next sibling, or nil if it is the last
// child of its parent.
func (n *W3CNode) NextSibling() w3cdom.Node {
	parent := n.Node.Parent()
	if parent == nil {
		return nil
	}
	i := parent.IndexOfChild(&n.Node)
	if i < 0 {
		return nil
	}
	if sib, ok := parent.Child(i + 1); ok {
		return NodeFromTreeNode(sib)
	}
	return nil
}

// AppendChild appends ch as the last child of n, detaching it from a
// previous parent if necessary. Both the mirror tree and the underlying
// HTML parse tree are modified. It returns n to allow for chaining.
func (n *W3CNode) AppendChild(ch *W3CNode) *W3CNode {
	if ch == nil {
		return n
	}
	ch.detach()
	n.htmlNode.AppendChild(ch.htmlNode)
	n.Node.AddChild(&ch.Node)
	return n
}

// RemoveChild removes ch from n's children and returns the removed node.
// If ch is not a child of n, RemoveChild is a no-op and returns nil.
func (n *W3CNode) RemoveChild(ch *W3CNode) *W3CNode {
	if ch == nil || ch.parentNode() != n {
		return nil
	}
	ch.detach()
	return ch
}

// detach disconnects a node from its parent, in the mirror tree and in the
// HTML parse tree.
func (n *W3CNode) detach() {
	n.Node.Isolate()
	if n.htmlNode.Parent != nil {
		n.htmlNode.Parent.RemoveChild(n.htmlNode)
	}
}

// TextContent returns the textual content of a node and all its
// descendents, in document order.
func (n *W3CNode) TextContent() (string, error) {
	if n.htmlNode.Type == html.TextNode {
		return n.htmlNode.Data, nil
	}
	future := tree.NewWalker(&n.Node).DescendentsWith(NodeIsText).Promise()
	textnodes, err := future()
	if err != nil {
		return "", err
	}
	var text strings.Builder
	for _, tn := range textnodes {
		text.WriteString(NodeFromTreeNode(tn).htmlNode.Data)
	}
	return text.String(), nil
}

func (n *W3CNode) String() string {
	if n == nil {
		return "(nil)"
	}
	return "[" + n.NodeName() + "]"
}

// --- Attributes -------------------------------------------------------------

// HasAttributes checks for existence of attributes.
func (n *W3CNode) HasAttributes() bool {
	return len(n.htmlNode.Attr) > 0
}

// Attributes returns all attributes of a node.
func (n *W3CNode) Attributes() w3cdom.NamedNodeMap {
	return NamedNodeMap{attrs: n.htmlNode.Attr}
}

// attribute looks up an attribute by key. The boolean return signals
// whether the attribute is present at all.
func (n *W3CNode) attribute(key string) (string, bool) {
	for _, a := range n.htmlNode.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttribute checks if an attribute with the given key is present.
func (n *W3CNode) HasAttribute(key string) bool {
	_, ok := n.attribute(key)
	return ok
}

// GetAttribute returns the value of the attribute with the given key, or
// the empty string if no such attribute is present.
func (n *W3CNode) GetAttribute(key string) string {
	v, _ := n.attribute(key)
	return v
}

// SetAttribute sets the value of the attribute with the given key,
// overwriting a present value. The attribute is written through to the
// underlying HTML node.
func (n *W3CNode) SetAttribute(key, value string) {
	for i, a := range n.htmlNode.Attr {
		if a.Key == key {
			n.htmlNode.Attr[i].Val = value
			return
		}
	}
	n.htmlNode.Attr = append(n.htmlNode.Attr, html.Attribute{Key: key, Val: value})
}

// ID returns the value of the node's id attribute, or the empty string.
func (n *W3CNode) ID() string {
	return n.GetAttribute("id")
}

// TagName returns the tag name for element nodes, by platform convention
// in upper-case, and the empty string for every other node type.
func (n *W3CNode) TagName() string {
	if n.htmlNode.Type != html.ElementNode {
		return ""
	}
	return strings.ToUpper(n.htmlNode.Data)
}

// ClassList returns the whitespace-separated tokens of the node's class
// attribute.
func (n *W3CNode) ClassList() []string {
	return strings.Fields(n.GetAttribute("class"))
}

// HasClass checks if token is a member of the node's class-token set.
func (n *W3CNode) HasClass(token string) bool {
	if token == "" {
		return false
	}
	for _, t := range n.ClassList() {
		if t == token {
			return true
		}
	}
	return false
}

// --- NodeList ----------------------------------------------------------------

// NodeList is a list of wrapper nodes, implementing w3cdom.NodeList.
type NodeList struct {
	nodes []*W3CNode
}

var _ w3cdom.NodeList = NodeList{}

// Length returns the number of nodes in the list.
func (l NodeList) Length() int {
	return len(l.nodes)
}

// Item returns the node at position i, or nil.
func (l NodeList) Item(i int) w3cdom.Node {
	if i < 0 || i >= len(l.nodes) {
		return nil
	}
	return l.nodes[i]
}

func (l NodeList) String() string {
	var b strings.Builder
	b.WriteString("[ ")
	for _, n := range l.nodes {
		b.WriteString(n.NodeName())
		b.WriteString(" ")
	}
	b.WriteString("]")
	return b.String()
}

// --- NamedNodeMap -------------------------------------------------------------

// Attr wraps a single HTML attribute, implementing w3cdom.Attr.
type Attr struct {
	attr html.Attribute
}

var _ w3cdom.Attr = Attr{}

// Namespace returns the attribute's namespace.
func (a Attr) Namespace() string { return a.attr.Namespace }

// Key returns the attribute's key.
func (a Attr) Key() string { return a.attr.Key }

// Value returns the attribute's value.
func (a Attr) Value() string { return a.attr.Val }

// NamedNodeMap is a collection of attributes, implementing
// w3cdom.NamedNodeMap.
type NamedNodeMap struct {
	attrs []html.Attribute
}

var _ w3cdom.NamedNodeMap = NamedNodeMap{}

// Length returns the number of attributes in the map.
func (m NamedNodeMap) Length() int {
	return len(m.attrs)
}

// Item returns the attribute at position i, or nil.
func (m NamedNodeMap) Item(i int) w3cdom.Attr {
	if i < 0 || i >= len(m.attrs) {
		return nil
	}
	return Attr{attr: m.attrs[i]}
}

// GetNamedItem returns the attribute with the given key, or nil.
func (m NamedNodeMap) GetNamedItem(key string) w3cdom.Attr {
	for _, a := range m.attrs {
		if a.Key == key {
			return Attr{attr: a}
		}
	}
	return nil
}
