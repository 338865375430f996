package swagger

import (
	"fmt"

	"github.com/apikit/swaggen/schema"
)

// SchemaShapeError reports a route parameter whose schema violates the
// extraction contract: body parameters need a map or a container, every
// other location needs a map of parameter names.
type SchemaShapeError struct {
	In     ParamIn
	Schema *schema.Node
	Reason string
}

func (e *SchemaShapeError) Error() string {
	return fmt.Sprintf("swagger: %s parameter schema %s", e.In, e.Reason)
}

// convertParameters turns route parameter declarations into Swagger
// parameter objects. A declaration without a schema contributes nothing.
func (c converter) convertParameters(params []RouteParam) ([]*Parameter, error) {
	var out []*Parameter
	for _, p := range params {
		if p.Schema == nil {
			continue
		}

		if p.In == InBody {
			body, err := c.convertBodyParameter(p)
			if err != nil {
				return nil, err
			}
			out = append(out, body)
			continue
		}

		keyed, err := c.convertKeyedParameters(p)
		if err != nil {
			return nil, err
		}
		out = append(out, keyed...)
	}
	return out, nil
}

// convertBodyParameter produces the single body parameter of an
// operation. Containers render as arrays around their element schema;
// a set additionally constrains items to be unique.
func (c converter) convertBodyParameter(p RouteParam) (*Parameter, error) {
	node := p.Schema
	elem := node

	var body *Schema
	switch node.Kind {
	case schema.KindSequence:
		elem = node.Elem
		body = &Schema{Type: "array", Items: c.toSchema(elem)}
	case schema.KindSet:
		elem = node.Elem
		body = &Schema{Type: "array", Items: c.toSchema(elem), UniqueItems: true}
	case schema.KindMap:
		body = c.toSchema(node)
	default:
		return nil, &SchemaShapeError{
			In:     p.In,
			Schema: node,
			Reason: "must be a map or a container",
		}
	}

	param := &Parameter{
		In:       string(InBody),
		Name:     bodyParamName(elem),
		Required: true,
		Schema:   body,
	}
	liftDescription(param, body)
	return param, nil
}

// convertKeyedParameters emits one parameter per non-predicate key of a
// map schema, merged with the key schema's fragment fields.
func (c converter) convertKeyedParameters(p RouteParam) ([]*Parameter, error) {
	node := p.Schema
	if node.Kind != schema.KindMap {
		return nil, &SchemaShapeError{
			In:     p.In,
			Schema: node,
			Reason: "must be a map of parameter names",
		}
	}

	var out []*Parameter
	for _, key := range node.Keys {
		if key.Predicate {
			continue
		}
		param := &Parameter{
			In:       string(p.In),
			Name:     key.Name,
			Required: key.Required,
		}
		mergeFragment(param, c.toSchema(key.Schema))
		out = append(out, param)
	}
	return out, nil
}

// bodyParamName derives the parameter name from the element schema,
// falling back to "body" for anonymous elements.
func bodyParamName(elem *schema.Node) string {
	if name := elem.SchemaName(); name != "" {
		return name
	}
	return "body"
}

// liftDescription moves the element description up to the parameter and
// strips it from the nested schema so it is not emitted twice.
func liftDescription(param *Parameter, body *Schema) {
	target := body
	if body.Type == "array" && body.Items != nil {
		target = body.Items
	}
	if target.Description != "" {
		param.Description = target.Description
		target.Description = ""
	}
}

// mergeFragment copies an inline fragment's fields onto a non-body
// parameter.
func mergeFragment(param *Parameter, frag *Schema) {
	if frag == nil {
		return
	}
	param.Type = frag.Type
	param.Format = frag.Format
	param.Description = frag.Description
	param.Default = frag.Default
	param.Enum = frag.Enum
	if frag.Type == "array" {
		param.Items = frag.Items
		param.UniqueItems = frag.UniqueItems
	}
}
