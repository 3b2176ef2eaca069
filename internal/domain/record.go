package domain

import "strconv"

// IDField is the key under which every record carries its document id.
const IDField = "id"

// Record is a loosely-typed document loaded from one collection. Fields beyond
// the id are whatever the collection holds: strings, numbers, booleans, and
// ISO timestamps. The id is assigned by the store and never mutated afterwards.
type Record map[string]any

// ID returns the record's document id, or "" if unset.
func (r Record) ID() string {
	return r.String(IDField)
}

// Clone returns a shallow copy of the record. Nested values are shared, which
// matches the flat key/value shape of dashboard documents.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Merge returns a new record equal to r with the partial's keys overwriting
// r's keys. The id field is never overwritten. Neither input is mutated.
func (r Record) Merge(partial Record) Record {
	out := r.Clone()
	if out == nil {
		out = make(Record, len(partial))
	}
	for k, v := range partial {
		if k == IDField {
			continue
		}
		out[k] = v
	}
	return out
}

// String returns the field as a string, defaulting to "" when the field is
// absent or not a string.
func (r Record) String(key string) string {
	if s, ok := r[key].(string); ok {
		return s
	}
	return ""
}

// Bool returns the field as a bool, defaulting to false.
func (r Record) Bool(key string) bool {
	if b, ok := r[key].(bool); ok {
		return b
	}
	return false
}

// Number returns the field as a float64, defaulting to 0. JSON decoding
// produces float64 for all numbers; integer and string forms are coerced so
// that records written by older dashboard versions still read cleanly.
func (r Record) Number(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
