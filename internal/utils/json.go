package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LoadJSON reads the JSON file at path into target. Unknown fields and
// trailing data are rejected so a typo in a config file is not silently ignored.
func LoadJSON(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if err := DecodeStrict(data, target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON from %s: %w", path, err)
	}
	return nil
}

// DecodeStrict unmarshals a single JSON document, rejecting unknown fields
func DecodeStrict(data []byte, target interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("unexpected data after JSON document")
	}
	return nil
}
