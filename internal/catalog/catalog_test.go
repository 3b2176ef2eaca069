package catalog

import (
	"testing"

	"github.com/fleetdesk/fleetdesk/internal/domain"
)

func TestDescriptors_WellFormed(t *testing.T) {
	descs := Descriptors()
	if len(descs) == 0 {
		t.Fatal("expected descriptors")
	}

	seen := make(map[string]bool)
	for _, d := range descs {
		if d.Collection == "" {
			t.Error("descriptor without collection name")
		}
		if seen[d.Collection] {
			t.Errorf("duplicate collection %q", d.Collection)
		}
		seen[d.Collection] = true

		if d.Title == "" {
			t.Errorf("collection %q has no title", d.Collection)
		}
		if len(d.SearchFields) == 0 {
			t.Errorf("collection %q has no searchable fields", d.Collection)
		}
		if len(d.Schema) == 0 {
			t.Errorf("collection %q has no schema", d.Collection)
		}
	}
}

func TestDescriptors_ReturnsCopy(t *testing.T) {
	descs := Descriptors()
	descs[0] = domain.Descriptor{Collection: "tampered"}

	if Descriptors()[0].Collection == "tampered" {
		t.Error("Descriptors must return a copy")
	}
}

func TestLookup(t *testing.T) {
	d, ok := Lookup("coupon")
	if !ok || d.Collection != "coupon" {
		t.Fatalf("Lookup(coupon) = %+v, %v", d, ok)
	}
	if _, ok := Lookup("nope"); ok {
		t.Error("Lookup must miss unknown collections")
	}
}

func TestSettingsDescriptor(t *testing.T) {
	d := Settings()
	if d.Collection != SettingsID {
		t.Errorf("settings collection = %q", d.Collection)
	}
	if !d.Singleton {
		t.Error("settings must be a singleton")
	}

	defaults := SettingsDefaults()
	if defaults.Number("commission_percent") != 10 {
		t.Errorf("commission default = %v", defaults.Number("commission_percent"))
	}
	if !defaults.Bool("allow_registrations") {
		t.Error("allow_registrations default must be true")
	}

	// Every defaulted key is covered by the schema.
	props, ok := d.Schema["properties"].(map[string]any)
	if !ok {
		t.Fatal("settings schema has no properties")
	}
	for key := range defaults {
		if _, ok := props[key]; !ok {
			t.Errorf("default key %q missing from schema", key)
		}
	}
}
