/*
Package tree implements a general-purpose tree of parent-linked nodes,
together with a small DSL for selecting nodes.

Trees in this module carry a payload of arbitrary (comparable) type in every
node. Clients create a Walker for a (sub-)tree to search for a selection of
nodes matching certain criteria. The set of walker operations forms a small
Domain Specific Language, similar in concept to JQuery.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2026 the domkit authors

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domkit.tree'.
func tracer() tracing.Trace {
	return tracing.Select("domkit.tree")
}
