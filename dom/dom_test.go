package dom_test

import (
	"strings"
	"testing"

	"github.com/domkit/domkit/dom"
	"github.com/domkit/domkit/maybe"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

const pageHTML = `<!DOCTYPE html>
<html><body>
<div id="outer" class="baz">
<span class="foo bar"><p id="x" class="leaf">Hello <b>World</b></p></span>
</div>
</body></html>`

func buildDOM(t *testing.T, src string) *dom.W3CNode {
	t.Helper()
	h, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("cannot parse test HTML: %v", err)
	}
	root := dom.FromHTMLParseTree(h)
	if root == nil {
		t.Fatal("cannot build DOM from parse tree")
	}
	return root
}

// just unwraps a result which the test expects to be present.
func just(t *testing.T, m maybe.Maybe[*dom.W3CNode]) *dom.W3CNode {
	t.Helper()
	var n *dom.W3CNode
	switch mm := m.Match(); mm {
	case mm.Just(&n):
		return n
	case mm.Nothing():
		t.Fatal("expected a present result, got absent")
	}
	return nil
}

func isAbsent(m maybe.Maybe[*dom.W3CNode]) bool {
	switch mm := m.Match(); mm {
	case mm.Nothing():
		return true
	}
	return false
}

func TestFromHTMLParseTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domkit.dom")
	defer teardown()
	//
	root := buildDOM(t, pageHTML)
	if root.NodeName() != "#document" {
		t.Errorf("expected root to be named #document, is %q", root.NodeName())
	}
	if root.ParentNode() != nil {
		t.Error("expected document root to have no parent, has one")
	}
	if !root.HasChildNodes() {
		t.Error("expected document root to have children, hasn't")
	}
}

func TestNodeNameIsUpperCase(t *testing.T) {
	root := buildDOM(t, pageHTML)
	div := just(t, root.GetElementByID("outer"))
	if div.NodeName() != "DIV" {
		t.Errorf("expected node name DIV, is %q", div.NodeName())
	}
	if div.TagName() != "DIV" {
		t.Errorf("expected tag name DIV, is %q", div.TagName())
	}
}

func TestNodeAttributes(t *testing.T) {
	root := buildDOM(t, pageHTML)
	div := just(t, root.GetElementByID("outer"))
	if !div.HasAttributes() {
		t.Fatal("expected div to have attributes, hasn't")
	}
	if div.ID() != "outer" {
		t.Errorf("expected id to be outer, is %q", div.ID())
	}
	if !div.HasAttribute("class") || div.GetAttribute("class") != "baz" {
		t.Errorf("expected class attribute baz, is %q", div.GetAttribute("class"))
	}
	attrs := div.Attributes()
	if attrs.Length() != 2 {
		t.Errorf("expected 2 attributes, found %d", attrs.Length())
	}
	if a := attrs.GetNamedItem("id"); a == nil || a.Value() != "outer" {
		t.Errorf("expected named item id=outer, got %v", a)
	}
}

func TestNodeSetAttribute(t *testing.T) {
	root := buildDOM(t, pageHTML)
	div := just(t, root.GetElementByID("outer"))
	div.SetAttribute("data-state", "open")
	if div.GetAttribute("data-state") != "open" {
		t.Error("expected freshly set attribute to be readable, isn't")
	}
	div.SetAttribute("class", "qux")
	if div.GetAttribute("class") != "qux" {
		t.Error("expected overwritten class attribute to be qux, isn't")
	}
	// the write has to reach the underlying HTML node
	found := false
	for _, a := range div.HTMLNode().Attr {
		if a.Key == "class" && a.Val == "qux" {
			found = true
		}
	}
	if !found {
		t.Error("expected attribute write to reach the host document node, didn't")
	}
}

func TestNodeClassList(t *testing.T) {
	root := buildDOM(t, pageHTML)
	span := just(t, root.GetElementByID("x")).ParentNode().(*dom.W3CNode)
	classes := span.ClassList()
	if len(classes) != 2 || classes[0] != "foo" || classes[1] != "bar" {
		t.Errorf("expected class list [foo bar], is %v", classes)
	}
	if !span.HasClass("bar") {
		t.Error("expected span to have class bar, hasn't")
	}
	if span.HasClass("baz") {
		t.Error("expected span not to have class baz, has")
	}
	if span.HasClass("") {
		t.Error("expected empty token never to match, did")
	}
}

func TestNodeTextContent(t *testing.T) {
	root := buildDOM(t, pageHTML)
	p := just(t, root.GetElementByID("x"))
	text, err := p.TextContent()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Hello World" {
		t.Errorf("expected text content 'Hello World', is %q", text)
	}
}

func TestNodeChildNavigation(t *testing.T) {
	root := buildDOM(t, pageHTML)
	p := just(t, root.GetElementByID("x"))
	if p.ChildNodes().Length() != 2 { // text + <b>
		t.Fatalf("expected p to have 2 child nodes, has %d", p.ChildNodes().Length())
	}
	if p.Children().Length() != 1 { // element children only
		t.Errorf("expected p to have 1 element child, has %d", p.Children().Length())
	}
	first := p.FirstChild()
	if first == nil || first.NodeName() != "#text" {
		t.Errorf("expected first child to be a text node, is %v", first)
	}
	sib := first.(*dom.W3CNode).NextSibling()
	if sib == nil || sib.NodeName() != "B" {
		t.Errorf("expected next sibling to be B, is %v", sib)
	}
	if last := sib.(*dom.W3CNode).NextSibling(); last != nil {
		t.Errorf("expected B to be the last sibling, got %v", last)
	}
}

func TestNodeMoveChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domkit.dom")
	defer teardown()
	//
	root := buildDOM(t, pageHTML)
	div := just(t, root.GetElementByID("outer"))
	p := just(t, root.GetElementByID("x"))
	span := p.ParentNode().(*dom.W3CNode)
	//
	div.AppendChild(p) // moves p from span to div
	if p.ParentNode() != div {
		t.Error("expected p to be re-parented to div, isn't")
	}
	if p.HTMLNode().Parent != div.HTMLNode() {
		t.Error("expected move to reach the host document tree, didn't")
	}
	if span.HasChildNodes() {
		t.Error("expected span to be empty after move, isn't")
	}
	//
	removed := div.RemoveChild(p)
	if removed != p {
		t.Errorf("expected RemoveChild to hand back p, got %v", removed)
	}
	if p.ParentNode() != nil || p.HTMLNode().Parent != nil {
		t.Error("expected removed node to be detached from both trees, isn't")
	}
	if span.RemoveChild(p) != nil { // p is detached, not a child of span
		t.Error("expected removing a non-child to be a no-op, isn't")
	}
}
