package swagger

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/apikit/swaggen/schema"
)

// RequiresDefinition reports whether n should become an entry of the
// definitions registry: it must carry a name, and that name must not be
// one of the reserved Nothing/Anything placeholders.
func RequiresDefinition(n *schema.Node) bool {
	if n == nil || n == schema.Nothing || n == schema.Anything {
		return false
	}
	name := n.SchemaName()
	return name != "" &&
		name != schema.Nothing.Name &&
		name != schema.Anything.Name
}

// NameSubschemas returns a tree structurally identical to n in which
// every anonymous map node between the root and a pre-named descendant
// carries a deterministic name derived from its key path. Pre-existing
// names are never overwritten. An anonymous root contributes a unique
// placeholder segment so unrelated anonymous trees cannot collide.
func NameSubschemas(n *schema.Node) *schema.Node {
	root := n.SchemaName()
	if root == "" {
		root = placeholderName()
	}
	return nameWithPath([]string{root}, n)
}

func nameWithPath(path []string, n *schema.Node) *schema.Node {
	switch n.Kind {
	case schema.KindSequence, schema.KindSet:
		out := *n
		out.Elem = nameWithPath(path, n.Elem)
		return &out

	case schema.KindMap:
		// A named node below the root was named in its own pass;
		// leave it and its subtree alone.
		if len(path) > 1 && n.Name != "" {
			return n
		}
		out := *n
		out.Keys = make([]schema.Key, len(n.Keys))
		for i, key := range n.Keys {
			out.Keys[i] = key
			if key.Predicate || key.Schema == nil {
				continue
			}
			child := append(path[:len(path):len(path)], key.Name)
			out.Keys[i].Schema = nameWithPath(child, key.Schema)
		}
		if out.Name == "" {
			out.Name = joinPath(path)
		}
		return &out

	default:
		return n
	}
}

// joinPath concatenates the capitalized path segments into a generated
// schema name, e.g. [schema pet owner] -> "SchemaPetOwner".
func joinPath(path []string) string {
	var b strings.Builder
	for _, seg := range path {
		b.WriteString(capitalize(seg))
	}
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// placeholderName returns a fresh root segment for anonymous trees.
func placeholderName() string {
	return "schema" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
