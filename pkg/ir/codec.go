package ir

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Serialize renders records as canonical JSON IR: records sorted by
// module path, two-space indentation, trailing newline. Serializing the
// same records always produces identical bytes, and re-serializing a
// deserialized payload is stable.
func Serialize(records []ModuleRecord) ([]byte, error) {
	sorted := CloneAll(records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ModulePath < sorted[j].ModulePath
	})

	// Normalize nil slices so round-trips stay byte-identical.
	for i := range sorted {
		if sorted[i].Relationships == nil {
			sorted[i].Relationships = []Relationship{}
		}
		if sorted[i].Files == nil {
			sorted[i].Files = []FileEntry{}
		}
	}

	data, err := json.MarshalIndent(sorted, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing IR: %w", err)
	}
	return append(data, '\n'), nil
}

// Deserialize parses JSON IR and applies full schema validation before
// returning records. Malformed payloads are rejected wholesale with
// every violation enumerated.
func Deserialize(data []byte) ([]ModuleRecord, error) {
	var records []ModuleRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("invalid IR: %w", err)
	}
	if err := ValidateRecords(records); err != nil {
		return nil, err
	}
	return records, nil
}

// ValidateJSON checks that a payload conforms to the IR schema without
// returning the decoded records.
func ValidateJSON(data []byte) error {
	_, err := Deserialize(data)
	return err
}
