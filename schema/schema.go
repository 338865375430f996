package schema

// Kind identifies the shape variant of a Node.
type Kind uint8

const (
	// KindLeaf is a primitive or opaque type with no children.
	KindLeaf Kind = iota
	// KindMap is an ordered mapping from key descriptors to child nodes.
	KindMap
	// KindSequence wraps a single element node and renders as a JSON array.
	KindSequence
	// KindSet wraps a single element node and renders as a JSON array
	// with uniqueItems.
	KindSet
)

// Node describes the shape of a value: a map of keyed children, a
// sequence or set container around a single element, or a leaf primitive.
// A node may carry an explicit name; anonymous nodes have an empty Name.
//
// Nodes are treated as immutable once constructed. Transformations that
// need to change a node (such as sub-schema naming) rebuild it instead.
type Node struct {
	Kind        Kind
	Name        string
	Description string

	// Keys holds the ordered key descriptors of a KindMap node.
	Keys []Key

	// Open marks a KindMap node that accepts arbitrary additional keys.
	Open bool

	// Elem is the element node of a KindSequence or KindSet node.
	Elem *Node

	// Leaf fields, meaningful only for KindLeaf.
	Type   string
	Format string
	Enum   []any
}

// Key is a single entry of a map node. Predicate keys are wildcard or
// validation-only keys; they are not literal property names and are
// excluded from property and parameter enumeration.
type Key struct {
	Name      string
	Required  bool
	Predicate bool
	Schema    *Node
}

// Reserved placeholder schemas. Nothing is the empty map used for "no
// body"; Anything is an open, unconstrained map. Neither ever becomes a
// definitions entry.
var (
	Nothing  = &Node{Kind: KindMap, Name: "Nothing"}
	Anything = &Node{Kind: KindMap, Name: "Anything", Open: true}
)

// MapOf builds an anonymous map node from the given keys.
func MapOf(keys ...Key) *Node {
	return &Node{Kind: KindMap, Keys: keys}
}

// Named returns a copy of n carrying the given explicit name.
func Named(name string, n *Node) *Node {
	out := *n
	out.Name = name
	return &out
}

// Describe returns a copy of n carrying the given description.
func Describe(desc string, n *Node) *Node {
	out := *n
	out.Description = desc
	return &out
}

// SeqOf wraps elem in a sequence container.
func SeqOf(elem *Node) *Node {
	return &Node{Kind: KindSequence, Elem: elem}
}

// SetOf wraps elem in a set container.
func SetOf(elem *Node) *Node {
	return &Node{Kind: KindSet, Elem: elem}
}

// Required builds a required literal key.
func Required(name string, n *Node) Key {
	return Key{Name: name, Required: true, Schema: n}
}

// Optional builds an optional literal key.
func Optional(name string, n *Node) Key {
	return Key{Name: name, Schema: n}
}

// Predicate builds a wildcard/validation key. The name is informational
// only; predicate keys never appear as properties or parameters.
func Predicate(name string, n *Node) Key {
	return Key{Name: name, Predicate: true, Schema: n}
}

// String returns a string leaf.
func String() *Node { return &Node{Kind: KindLeaf, Type: "string"} }

// Int returns an integer leaf.
func Int() *Node { return &Node{Kind: KindLeaf, Type: "integer"} }

// Number returns a floating point leaf.
func Number() *Node { return &Node{Kind: KindLeaf, Type: "number"} }

// Boolean returns a boolean leaf.
func Boolean() *Node { return &Node{Kind: KindLeaf, Type: "boolean"} }

// Leaf returns a leaf with an explicit type and format.
func Leaf(typ, format string) *Node {
	return &Node{Kind: KindLeaf, Type: typ, Format: format}
}

// EnumOf returns a string leaf restricted to the given values.
func EnumOf(values ...any) *Node {
	return &Node{Kind: KindLeaf, Type: "string", Enum: values}
}

// IsContainer reports whether n is a sequence or set wrapper.
func (n *Node) IsContainer() bool {
	return n != nil && (n.Kind == KindSequence || n.Kind == KindSet)
}

// IsMap reports whether n is a map node.
func (n *Node) IsMap() bool {
	return n != nil && n.Kind == KindMap
}

// SchemaName returns the explicit name of n, or the empty string for
// anonymous nodes.
func (n *Node) SchemaName() string {
	if n == nil {
		return ""
	}
	return n.Name
}
