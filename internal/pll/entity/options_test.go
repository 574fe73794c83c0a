package entity

import (
	"reflect"
	"testing"
)

func ptr[T any](v T) *T { return &v }

func TestCaseFieldsFields(t *testing.T) {
	var nilFields *CaseFields
	if got := nilFields.Fields(); got != nil {
		t.Fatalf("expected nil for nil fields, got %#v", got)
	}

	o := &CaseFields{
		CaseName: ptr("Fence permit"),
		X:        ptr(1.5),
		AssetID:  ptr("A-1"),
		Extra:    map[string]any{"CaseName": "ignored", "Custom": true},
	}

	got := o.Fields()
	want := map[string]any{
		"CaseName": "Fence permit",
		"X":        1.5,
		"AssetId":  "A-1",
		"Custom":   true,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Fields() = %#v, want %#v", got, want)
	}

	got["Custom"] = false
	if o.Extra["Custom"] != true {
		t.Fatalf("Fields leaked into Extra")
	}
}

func TestSearchFiltersFields(t *testing.T) {
	ids := []int64{3, 4}
	f := SearchFilters{CaseNumber: ptr("BLD-1"), CaseTypeIDs: ids}

	got := f.Fields()
	want := map[string]any{"CaseNumber": "BLD-1", "CaseTypeIds": []int64{3, 4}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Fields() = %#v, want %#v", got, want)
	}

	ids[0] = 99
	if got["CaseTypeIds"].([]int64)[0] != 3 {
		t.Fatalf("Fields shares the caller's slice")
	}

	if got := (SearchFilters{}).Fields(); len(got) != 0 {
		t.Fatalf("expected empty criteria, got %#v", got)
	}
}

func TestProjection(t *testing.T) {
	tests := []struct {
		name string
		p    Projection
		ok   bool
		want map[string]any
	}{
		{name: "empty", p: Projection{}, ok: false, want: map[string]any{}},
		{name: "vcs only", p: Projection{VcsWKID: "5703"}, ok: false, want: map[string]any{"VcsWKID": "5703"}},
		{name: "wkid", p: Projection{WKID: "4326"}, ok: true, want: map[string]any{"WKID": "4326"}},
		{name: "wkt", p: Projection{WKT: "GEOGCS[]", VcsWKID: "5703"}, ok: true, want: map[string]any{"WKT": "GEOGCS[]", "VcsWKID": "5703"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.HasReference(); got != tt.ok {
				t.Fatalf("HasReference() = %v, want %v", got, tt.ok)
			}
			if got := tt.p.Fields(); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Fields() = %#v, want %#v", got, tt.want)
			}
		})
	}
}
