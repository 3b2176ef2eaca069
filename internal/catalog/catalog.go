// Package catalog fixes the set of document collections managed by the
// dashboard. Each entry carries the page-specific knobs (searchable fields,
// validation schema, deserialization defaults); everything else about a
// management page is generic.
package catalog

import "github.com/fleetdesk/fleetdesk/internal/domain"

// SettingsID is the well-known document id of the singleton settings record.
const SettingsID = "settings"

var descriptors = []domain.Descriptor{
	{
		Collection:   "users",
		Title:        "Riders",
		SearchFields: []string{"id", "name", "email", "phone"},
		Defaults: domain.Record{
			"enable":   true,
			"verified": false,
			"photo":    "",
		},
		Schema: objectSchema(map[string]any{
			"name":     map[string]any{"type": "string"},
			"email":    map[string]any{"type": "string"},
			"phone":    map[string]any{"type": "string"},
			"photo":    map[string]any{"type": "string"},
			"enable":   map[string]any{"type": "boolean"},
			"verified": map[string]any{"type": "boolean"},
		}),
	},
	{
		Collection:   "driver_users",
		Title:        "Drivers",
		SearchFields: []string{"id", "name", "email", "phone", "vehicle_plate"},
		Defaults: domain.Record{
			"enable":        true,
			"approved":      false,
			"online":        false,
			"vehicle_plate": "",
		},
		Schema: objectSchema(map[string]any{
			"name":          map[string]any{"type": "string"},
			"email":         map[string]any{"type": "string"},
			"phone":         map[string]any{"type": "string"},
			"vehicle_plate": map[string]any{"type": "string"},
			"enable":        map[string]any{"type": "boolean"},
			"approved":      map[string]any{"type": "boolean"},
			"online":        map[string]any{"type": "boolean"},
		}),
	},
	{
		Collection:   "orders",
		Title:        "Orders",
		SearchFields: []string{"id", "user_name", "driver_name", "status"},
		Defaults: domain.Record{
			"status": "pending",
			"amount": float64(0),
		},
		Schema: objectSchema(map[string]any{
			"user_name":   map[string]any{"type": "string"},
			"driver_name": map[string]any{"type": "string"},
			"status":      map[string]any{"type": "string"},
			"amount":      map[string]any{"type": "number"},
			"pickup":      map[string]any{"type": "string"},
			"dropoff":     map[string]any{"type": "string"},
		}),
	},
	{
		Collection:   "review_customer",
		Title:        "Rider Reviews",
		SearchFields: []string{"id", "user_name", "comment"},
		Defaults: domain.Record{
			"rating":  float64(0),
			"comment": "",
		},
		Schema: objectSchema(map[string]any{
			"user_name": map[string]any{"type": "string"},
			"rating":    map[string]any{"type": "number"},
			"comment":   map[string]any{"type": "string"},
		}),
	},
	{
		Collection:   "review_driver",
		Title:        "Driver Reviews",
		SearchFields: []string{"id", "driver_name", "comment"},
		Defaults: domain.Record{
			"rating":  float64(0),
			"comment": "",
		},
		Schema: objectSchema(map[string]any{
			"driver_name": map[string]any{"type": "string"},
			"rating":      map[string]any{"type": "number"},
			"comment":     map[string]any{"type": "string"},
		}),
	},
	{
		Collection:   "coupon",
		Title:        "Coupons",
		SearchFields: []string{"id", "code", "type"},
		Defaults: domain.Record{
			"enable":   false,
			"type":     "percent",
			"discount": float64(0),
		},
		Schema: objectSchema(map[string]any{
			"code":     map[string]any{"type": "string"},
			"type":     map[string]any{"type": "string"},
			"discount": map[string]any{"type": "number"},
			"enable":   map[string]any{"type": "boolean"},
			"expires":  map[string]any{"type": "string"},
		}),
	},
	{
		Collection:   "currency",
		Title:        "Currencies",
		SearchFields: []string{"id", "code", "name"},
		Defaults: domain.Record{
			"enable": true,
			"rate":   float64(1),
			"symbol": "",
		},
		Schema: objectSchema(map[string]any{
			"code":   map[string]any{"type": "string"},
			"name":   map[string]any{"type": "string"},
			"symbol": map[string]any{"type": "string"},
			"rate":   map[string]any{"type": "number"},
			"enable": map[string]any{"type": "boolean"},
		}),
	},
	{
		Collection:   "language",
		Title:        "Languages",
		SearchFields: []string{"id", "code", "name"},
		Defaults: domain.Record{
			"enable": true,
			"rtl":    false,
		},
		Schema: objectSchema(map[string]any{
			"code":   map[string]any{"type": "string"},
			"name":   map[string]any{"type": "string"},
			"enable": map[string]any{"type": "boolean"},
			"rtl":    map[string]any{"type": "boolean"},
		}),
	},
	{
		Collection:   "faq",
		Title:        "FAQs",
		SearchFields: []string{"id", "title", "category"},
		Defaults: domain.Record{
			"enable":   true,
			"category": "general",
		},
		Schema: objectSchema(map[string]any{
			"title":    map[string]any{"type": "string"},
			"body":     map[string]any{"type": "string"},
			"category": map[string]any{"type": "string"},
			"enable":   map[string]any{"type": "boolean"},
		}),
	},
	{
		Collection:   "referral",
		Title:        "Referrals",
		SearchFields: []string{"id", "code", "user_name"},
		Defaults: domain.Record{
			"code":     "",
			"redeemed": false,
		},
		Schema: objectSchema(map[string]any{
			"code":      map[string]any{"type": "string"},
			"user_name": map[string]any{"type": "string"},
			"redeemed":  map[string]any{"type": "boolean"},
		}),
	},
	{
		Collection:   "wallet_transaction",
		Title:        "Wallet Transactions",
		SearchFields: []string{"id", "user_name", "type", "status"},
		Defaults: domain.Record{
			"type":   "credit",
			"status": "completed",
			"amount": float64(0),
		},
		Schema: objectSchema(map[string]any{
			"user_name": map[string]any{"type": "string"},
			"type":      map[string]any{"type": "string"},
			"status":    map[string]any{"type": "string"},
			"amount":    map[string]any{"type": "number"},
		}),
	},
	{
		Collection:   "document",
		Title:        "Rider Documents",
		SearchFields: []string{"id", "user_name", "kind", "status"},
		Defaults: domain.Record{
			"status": "pending",
			"url":    "",
		},
		Schema: objectSchema(map[string]any{
			"user_name": map[string]any{"type": "string"},
			"kind":      map[string]any{"type": "string"},
			"status":    map[string]any{"type": "string"},
			"url":       map[string]any{"type": "string"},
		}),
	},
	{
		Collection:   "driver_document",
		Title:        "Driver Documents",
		SearchFields: []string{"id", "driver_name", "kind", "status"},
		Defaults: domain.Record{
			"status": "pending",
			"url":    "",
		},
		Schema: objectSchema(map[string]any{
			"driver_name": map[string]any{"type": "string"},
			"kind":        map[string]any{"type": "string"},
			"status":      map[string]any{"type": "string"},
			"url":         map[string]any{"type": "string"},
		}),
	},
	{
		Collection:   "settings",
		Title:        "Settings",
		SearchFields: []string{"id"},
		Singleton:    true,
		Defaults:     SettingsDefaults(),
		Schema: objectSchema(map[string]any{
			"commission_percent":  map[string]any{"type": "number"},
			"referral_amount":     map[string]any{"type": "number"},
			"contact_email":       map[string]any{"type": "string"},
			"contact_phone":       map[string]any{"type": "string"},
			"maintenance_mode":    map[string]any{"type": "boolean"},
			"allow_registrations": map[string]any{"type": "boolean"},
			"payment_public_key":  map[string]any{"type": "string"},
			"payment_secret_key":  map[string]any{"type": "string"},
		}),
	},
}

// Descriptors returns all collection descriptors in a fixed order.
// The returned slice is a copy; callers may not mutate catalog state.
func Descriptors() []domain.Descriptor {
	out := make([]domain.Descriptor, len(descriptors))
	copy(out, descriptors)
	return out
}

// Lookup returns the descriptor for the named collection.
func Lookup(collection string) (domain.Descriptor, bool) {
	for _, d := range descriptors {
		if d.Collection == collection {
			return d, true
		}
	}
	return domain.Descriptor{}, false
}

// Settings returns the descriptor of the singleton settings collection.
func Settings() domain.Descriptor {
	d, _ := Lookup("settings")
	return d
}

// SettingsDefaults returns the default values of the settings document.
// Defaults apply wholesale: a settings read always yields every key.
func SettingsDefaults() domain.Record {
	return domain.Record{
		"commission_percent":  float64(10),
		"referral_amount":     float64(0),
		"contact_email":       "",
		"contact_phone":       "",
		"maintenance_mode":    false,
		"allow_registrations": true,
		"payment_public_key":  "",
		"payment_secret_key":  "",
	}
}

func objectSchema(properties map[string]any) map[string]any {
	return map[string]any{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": true,
	}
}
