package llm

// BuildNoteBatchSchema returns the JSON-Schema (draft 2020-12 subset) for the
// note-batch response as a generic map. We pass it to the service as a
// structured output constraint and also use it locally to validate.
func BuildNoteBatchSchema() map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"id":         map[string]any{"type": "string", "minLength": 1},
				"note":       map[string]any{"type": "string", "minLength": 4, "maxLength": 200},
				"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
			},
			"required": []string{"id", "note", "confidence"},
		},
	}
}
