package event

import (
	"encoding/json"
	"errors"
)

var errNilPayload = errors.New("event payload is nil")

// DecodePayload returns the payload as T. Payloads published in-process are
// already T or *T; payloads read back from the dead-letter file are generic
// JSON maps and go through a marshal round trip.
func DecodePayload[T any](input interface{}) (T, error) {
	var result T
	switch v := input.(type) {
	case nil:
		return result, errNilPayload
	case T:
		return v, nil
	case *T:
		if v == nil {
			return result, errNilPayload
		}
		return *v, nil
	}

	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
