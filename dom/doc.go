/*
Package dom provides a typed wrapper around HTML parse trees.

Overview

The host document structure is a parse tree as produced by
golang.org/x/net/html. Package dom wraps such trees into W3CNode objects,
which satisfy the interfaces of package w3cdom and add a handful of query
helpers as well as upward (ancestor) search utilities.

Tree Implementation

Wrapper nodes are implemented on top of a general purpose tree type
(package tree). In a fully object oriented programming language we would
subclass this tree type; in Go we resort to composition, thus including a
generic tree node in every wrapper node.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2026 the domkit authors

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domkit.dom'.
func tracer() tracing.Trace {
	return tracing.Select("domkit.dom")
}
