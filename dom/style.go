package dom

import (
	"github.com/aymerick/douceur/parser"
	"github.com/domkit/domkit/maybe"
)

// InlineStyles parses the node's style attribute and returns the declared
// properties as a property→value map. Nodes without a style attribute
// yield an empty map. Parsing errors of a present style attribute are
// reported to the caller.
func (n *W3CNode) InlineStyles() (map[string]string, error) {
	src, ok := n.attribute("style")
	styles := make(map[string]string)
	if !ok {
		return styles, nil
	}
	decls, err := parser.ParseDeclarations(src)
	if err != nil {
		tracer().Errorf("cannot parse style attribute: %v", err)
		return nil, err
	}
	for _, d := range decls {
		styles[d.Property] = d.Value
	}
	return styles, nil
}

// StyleProperty returns the value declared for key in the node's style
// attribute, if any.
func (n *W3CNode) StyleProperty(key string) maybe.Maybe[string] {
	styles, err := n.InlineStyles()
	if err != nil {
		return maybe.Nothing[string]()
	}
	if v, ok := styles[key]; ok {
		return maybe.Just(v)
	}
	return maybe.Nothing[string]()
}
