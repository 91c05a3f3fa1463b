package tools

import "encoding/json"

// DecodeArguments parses a tool call's raw argument payload into a map.
// Providers send either a JSON-encoded string ("{\"days\":7}") or an
// already-parsed object; both are accepted. Malformed payloads degrade to an
// empty argument map — a bad argument blob must never abort the turn.
func DecodeArguments(raw json.RawMessage) map[string]any {
	if len(raw) == 0 {
		return map[string]any{}
	}

	var args map[string]any
	if err := json.Unmarshal(raw, &args); err == nil && args != nil {
		return args
	}

	// String-encoded JSON object
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		if err := json.Unmarshal([]byte(encoded), &args); err == nil && args != nil {
			return args
		}
	}

	return map[string]any{}
}
