package pkgmerge

import (
	"reflect"
	"testing"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name    string
		base    map[string]any
		overlay map[string]any
		want    map[string]any
	}{
		{
			name:    "nil overlay keeps base",
			base:    map[string]any{"A": 1},
			overlay: nil,
			want:    map[string]any{"A": 1},
		},
		{
			name:    "nil base takes overlay",
			base:    nil,
			overlay: map[string]any{"A": 1},
			want:    map[string]any{"A": 1},
		},
		{
			name:    "scalar override",
			base:    map[string]any{"A": 1, "B": "x"},
			overlay: map[string]any{"B": "y", "C": true},
			want:    map[string]any{"A": 1, "B": "y", "C": true},
		},
		{
			name:    "nested maps merge key by key",
			base:    map[string]any{"Loc": map[string]any{"X": 1.0, "Y": 2.0}},
			overlay: map[string]any{"Loc": map[string]any{"Y": 3.0, "Z": 4.0}},
			want:    map[string]any{"Loc": map[string]any{"X": 1.0, "Y": 3.0, "Z": 4.0}},
		},
		{
			name:    "slices replace",
			base:    map[string]any{"Ids": []any{1, 2, 3}},
			overlay: map[string]any{"Ids": []any{9}},
			want:    map[string]any{"Ids": []any{9}},
		},
		{
			name:    "map replaces scalar",
			base:    map[string]any{"A": 1},
			overlay: map[string]any{"A": map[string]any{"B": 2}},
			want:    map[string]any{"A": map[string]any{"B": 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.base, tt.overlay)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Merge() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	base := map[string]any{"Loc": map[string]any{"X": 1}}
	overlay := map[string]any{"Loc": map[string]any{"Y": 2}}

	got := Merge(base, overlay)
	got["Loc"].(map[string]any)["X"] = 99

	if !reflect.DeepEqual(base, map[string]any{"Loc": map[string]any{"X": 1}}) {
		t.Fatalf("base mutated: %#v", base)
	}
	if !reflect.DeepEqual(overlay, map[string]any{"Loc": map[string]any{"Y": 2}}) {
		t.Fatalf("overlay mutated: %#v", overlay)
	}
}

func TestComposeRequiredWins(t *testing.T) {
	required := map[string]any{"CaObjectId": int64(7)}
	options := map[string]any{"CaObjectId": int64(8), "CaseName": "Fence"}

	got := Compose(required, options)
	want := map[string]any{"CaObjectId": int64(7), "CaseName": "Fence"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Compose() = %#v, want %#v", got, want)
	}
}
