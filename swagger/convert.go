package swagger

import "github.com/apikit/swaggen/schema"

// Config controls schema-to-fragment conversion. It is passed explicitly
// into every build; there is no process-wide toggle.
type Config struct {
	// RefPrefix is prepended to definition names in $ref strings.
	// Defaults to "#/definitions/".
	RefPrefix string
}

func (c Config) refPrefix() string {
	if c.RefPrefix == "" {
		return "#/definitions/"
	}
	return c.RefPrefix
}

// converter turns schema nodes into Swagger schema fragments. It is the
// single place that decides between a $ref and an inline rendition.
type converter struct {
	cfg Config
}

func (c converter) ref(name string) *Schema {
	return &Schema{Ref: c.cfg.refPrefix() + name}
}

// toSchema converts any schema node to a Swagger schema fragment.
// Definition-requiring nodes become references; anonymous maps inline
// their model transform; containers become arrays; leaves map directly.
func (c converter) toSchema(n *schema.Node) *Schema {
	if n == nil {
		return nil
	}
	if n == schema.Nothing || n == schema.Anything {
		return &Schema{}
	}

	switch n.Kind {
	case schema.KindSequence:
		return &Schema{
			Type:        "array",
			Items:       c.toSchema(n.Elem),
			Description: n.Description,
		}

	case schema.KindSet:
		return &Schema{
			Type:        "array",
			Items:       c.toSchema(n.Elem),
			UniqueItems: true,
			Description: n.Description,
		}

	case schema.KindMap:
		if RequiresDefinition(n) {
			return c.ref(n.Name)
		}
		out := c.transformModel(n)
		out.Description = n.Description
		return out

	default:
		return &Schema{
			Type:        n.Type,
			Format:      n.Format,
			Enum:        n.Enum,
			Description: n.Description,
		}
	}
}
