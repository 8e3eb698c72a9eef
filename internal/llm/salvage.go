package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SalvageNoteArray recovers a JSON array from a service response that may be
// a bare array, an object wrapping the array under some key, or prose with a
// bracket-delimited array substring. Returns the canonical array bytes or an
// error when nothing parseable can be recovered.
func SalvageNoteArray(raw []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("salvage: empty response")
	}

	// 1) already a bare array
	if isJSONArray(trimmed) {
		return trimmed, nil
	}

	// 2) object wrapping an array under any key
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err == nil {
		for _, v := range obj {
			inner := bytes.TrimSpace(v)
			if isJSONArray(inner) {
				return inner, nil
			}
		}
	}

	// 3) bracket-delimited substring (handles code fences and prose)
	start := bytes.IndexByte(trimmed, '[')
	end := bytes.LastIndexByte(trimmed, ']')
	if start >= 0 && end > start {
		candidate := trimmed[start : end+1]
		if isJSONArray(candidate) {
			return candidate, nil
		}
	}

	// 4) truncated output: cut at the last complete element and close the array
	if start >= 0 {
		if lastObj := bytes.LastIndexByte(trimmed, '}'); lastObj > start {
			candidate := append(append([]byte{}, trimmed[start:lastObj+1]...), ']')
			if isJSONArray(candidate) {
				return candidate, nil
			}
		}
	}

	return nil, fmt.Errorf("salvage: no JSON array found in %d-byte response", len(raw))
}

func isJSONArray(b []byte) bool {
	if len(b) == 0 || b[0] != '[' {
		return false
	}
	var arr []json.RawMessage
	return json.Unmarshal(b, &arr) == nil
}
