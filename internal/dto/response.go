package dto

// ListFromResponse returns the items of a list endpoint body. Upstream wraps
// most lists as {"items": [...]} but some endpoints answer with a bare array.
func ListFromResponse(entity string, body any) ([]any, error) {
	switch v := body.(type) {
	case []any:
		return v, nil
	case map[string]any:
		f := read(entity+" list", v)
		items := f.list("items")
		if f.err != nil {
			return nil, f.err
		}
		return items, nil
	default:
		return nil, invalidField(entity+" list", "items", "must be a list")
	}
}

// ObjectFromResponse returns body as a record. Anything else yields an empty
// record so the entity factory reports its first missing field.
func ObjectFromResponse(body any) map[string]any {
	rec, _ := body.(map[string]any)
	return rec
}
