package domain

// Descriptor describes one managed collection: which fields the dashboard
// search box matches against, the JSON schema record updates are validated
// with, and the defaults applied when a stored document omits optional fields.
//
// Descriptors are the only thing that varies between management pages; the
// list engine, store, and HTTP handlers are generic over them.
type Descriptor struct {
	// Collection is the remote collection name, e.g. "coupon".
	Collection string

	// Title is the human-readable page title, e.g. "Coupons".
	Title string

	// SearchFields lists the string fields matched by the free-text search.
	SearchFields []string

	// Defaults holds field values filled in at deserialization when the
	// stored document omits them.
	Defaults Record

	// Schema is a JSON schema (as a decoded document) used to validate
	// updates. A nil schema accepts any bag.
	Schema map[string]any

	// Singleton marks collections holding exactly one well-known document,
	// like settings.
	Singleton bool
}

// ApplyDefaults returns rec with every missing default filled in. The input
// is not mutated; when nothing is missing the input is returned as-is.
func (d Descriptor) ApplyDefaults(rec Record) Record {
	if len(d.Defaults) == 0 {
		return rec
	}
	var out Record
	for k, v := range d.Defaults {
		if _, ok := rec[k]; ok {
			continue
		}
		if out == nil {
			out = rec.Clone()
			if out == nil {
				out = make(Record, len(d.Defaults))
			}
		}
		out[k] = v
	}
	if out == nil {
		return rec
	}
	return out
}
