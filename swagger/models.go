package swagger

import (
	"sort"

	"github.com/apikit/swaggen/schema"
)

// ExtractModels gathers the top-level models used across all routes:
// every body parameter schema and every response schema, with container
// wrappers flattened to their element. Only definition-requiring schemas
// survive; each gets its sub-schemas named, and duplicates of the same
// name collapse to the last occurrence.
func ExtractModels(paths map[string][]RouteOperation) []*schema.Node {
	var used []*schema.Node

	for _, tpl := range sortedPathKeys(paths) {
		for _, op := range paths[tpl] {
			for _, p := range op.Parameters {
				if p.In == InBody && p.Schema != nil {
					used = append(used, flattenContainers(p.Schema))
				}
			}
			for _, code := range sortedStatusKeys(op.Responses) {
				if rs := op.Responses[code]; rs.Schema != nil {
					used = append(used, flattenContainers(rs.Schema))
				}
			}
		}
	}

	var named []*schema.Node
	for _, n := range used {
		if RequiresDefinition(n) {
			named = append(named, NameSubschemas(n))
		}
	}
	return dedupeByName(named)
}

// CollectModels walks the entire structure of each input schema and
// registers every definition-requiring node by name, however deeply it
// is nested. The registry is scoped to this call; on a name collision
// the later write wins.
func CollectModels(models []*schema.Node) map[string]*schema.Node {
	registry := make(map[string]*schema.Node)
	for _, n := range models {
		collectInto(registry, n)
	}
	return registry
}

func collectInto(registry map[string]*schema.Node, n *schema.Node) {
	if n == nil {
		return
	}
	if RequiresDefinition(n) {
		registry[n.Name] = n
	}
	switch n.Kind {
	case schema.KindSequence, schema.KindSet:
		collectInto(registry, n.Elem)
	case schema.KindMap:
		for _, key := range n.Keys {
			collectInto(registry, key.Schema)
		}
	}
}

// transformModel converts a map node into a definitions fragment: a
// properties map plus the ordered required-key list. The required field
// is omitted entirely when no key is required.
func (c converter) transformModel(n *schema.Node) *Schema {
	out := &Schema{}

	props := make(map[string]*Schema, len(n.Keys))
	var required []string
	for _, key := range n.Keys {
		if key.Predicate {
			continue
		}
		props[key.Name] = c.toSchema(key.Schema)
		if key.Required {
			required = append(required, key.Name)
		}
	}

	if len(props) > 0 {
		out.Properties = props
	}
	if len(required) > 0 {
		out.Required = required
	}
	if n.Open {
		out.AdditionalProps = &Schema{}
	}
	return out
}

// buildDefinitions applies the model transform to every registry entry.
func (c converter) buildDefinitions(registry map[string]*schema.Node) map[string]*Schema {
	if len(registry) == 0 {
		return nil
	}
	definitions := make(map[string]*Schema, len(registry))
	for name, node := range registry {
		definitions[name] = c.transformModel(node)
	}
	return definitions
}

// flattenContainers unwraps sequence and set wrappers down to the
// element schema.
func flattenContainers(n *schema.Node) *schema.Node {
	for n.IsContainer() {
		n = n.Elem
	}
	return n
}

// dedupeByName keeps one schema per name, preserving first-seen order
// while letting later occurrences replace earlier ones.
func dedupeByName(models []*schema.Node) []*schema.Node {
	index := make(map[string]int, len(models))
	var out []*schema.Node
	for _, n := range models {
		if at, ok := index[n.Name]; ok {
			out[at] = n
			continue
		}
		index[n.Name] = len(out)
		out = append(out, n)
	}
	return out
}

func sortedPathKeys(paths map[string][]RouteOperation) []string {
	keys := make([]string, 0, len(paths))
	for k := range paths {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedStatusKeys(responses map[int]RouteResponse) []int {
	keys := make([]int, 0, len(responses))
	for k := range responses {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
