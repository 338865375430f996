// Package schema provides an in-memory description of value shapes as a
// tagged union of map, sequence, set and leaf nodes.
//
// A map node carries an ordered list of key descriptors, each marked
// required or optional and optionally flagged as a predicate (wildcard)
// key. Container nodes wrap exactly one element node. Leaf nodes describe
// primitives in JSON Schema terms (type, format, enum).
//
// Any node may carry an explicit name. Named map nodes become reusable
// definitions when a document is generated from them; anonymous nested
// maps are assigned deterministic names derived from their key path.
//
// Two reserved placeholders exist: Nothing (the empty map, "no body") and
// Anything (an open map). They are never promoted to definitions.
//
//	pet := schema.Named("Pet", schema.MapOf(
//	    schema.Required("name", schema.String()),
//	    schema.Optional("age", schema.Int()),
//	))
package schema
