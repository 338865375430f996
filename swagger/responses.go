package swagger

import "strconv"

// convertResponses converts the per-status responses of one operation.
// Definition-requiring schemas are replaced by a reference into the
// definitions registry; everything else is inlined. Descriptions and
// headers pass through untouched.
func (c converter) convertResponses(responses map[int]RouteResponse) map[string]*Response {
	out := make(map[string]*Response, len(responses))
	for code, rr := range responses {
		out[strconv.Itoa(code)] = c.convertResponse(rr)
	}
	return out
}

func (c converter) convertResponse(rr RouteResponse) *Response {
	resp := &Response{
		Description: rr.Description,
		Headers:     rr.Headers,
	}
	if rr.Schema == nil {
		return resp
	}
	if RequiresDefinition(rr.Schema) {
		resp.Schema = c.ref(rr.Schema.Name)
	} else {
		resp.Schema = c.toSchema(rr.Schema)
	}
	return resp
}
