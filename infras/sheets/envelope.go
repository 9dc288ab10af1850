package sheets

import (
	"encoding/json"

	"libdash/shared/failure"
)

type successEnvelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// ExtractRecords unwraps the shapes the sheet-backed API is known to
// produce: a {"status":"success","data":...} envelope whose data may be a
// single object or an array, a bare array, or an object keyed by altKey
// (pass "" to disallow the keyed shape). Anything else is rejected so the
// caller can keep serving its previous snapshot.
func ExtractRecords(payload []byte, altKey string) ([]Record, error) {
	var envelope successEnvelope
	if err := json.Unmarshal(payload, &envelope); err == nil && envelope.Status == "success" && len(envelope.Data) > 0 {
		return decodeRecords(envelope.Data)
	}

	var records []Record
	if err := json.Unmarshal(payload, &records); err == nil {
		return records, nil
	}

	if altKey != "" {
		var keyed map[string]json.RawMessage
		if err := json.Unmarshal(payload, &keyed); err == nil {
			if raw, ok := keyed[altKey]; ok {
				var nested []Record
				if err := json.Unmarshal(raw, &nested); err == nil {
					return nested, nil
				}
			}
		}
	}

	return nil, failure.InvalidDataFormat
}

// decodeRecords accepts either an array of rows or a single row, wrapping
// the latter into a one-element slice.
func decodeRecords(raw json.RawMessage) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(raw, &records); err == nil {
		return records, nil
	}

	var single Record
	if err := json.Unmarshal(raw, &single); err == nil {
		return []Record{single}, nil
	}

	return nil, failure.InvalidDataFormat
}
