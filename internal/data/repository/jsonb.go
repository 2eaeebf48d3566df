package repository

import (
	"encoding/json"
	"fmt"
)

// Helpers for JSONB blob columns. A NULL column always unmarshals into the
// empty value so callers never receive a propagated nil.

func marshalBlob(v any) ([]byte, error) {
	if v == nil {
		return []byte("{}"), nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal blob: %w", err)
	}
	return data, nil
}

func unmarshalBlob(data []byte, dest any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("unmarshal blob: %w", err)
	}
	return nil
}

func unmarshalStringList(data []byte) []string {
	if len(data) == 0 {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil || list == nil {
		return []string{}
	}
	return list
}
