package entity

import "github.com/dustinpezley/cityworks/internal/pkg/pkgmerge"

// CaseFields is the optional part of a create or update request.
//
// Nil fields are left out. Extra carries wire fields that have no typed
// counterpart; it is applied first, so typed fields win on a collision.
type CaseFields struct {
	CaseName       *string
	CaseStatus     *string
	BusinessName   *string
	Location       *string
	StreetName     *string
	X              *float64
	Y              *float64
	AssetType      *string
	AssetID        *string
	ExpirationDate *string
	Extra          map[string]any
}

// Fields returns the set fields keyed by their wire names.
func (o *CaseFields) Fields() map[string]any {
	if o == nil {
		return nil
	}

	m := pkgmerge.Clone(o.Extra)
	if m == nil {
		m = make(map[string]any)
	}

	putPtr(m, "CaseName", o.CaseName)
	putPtr(m, "CaseStatus", o.CaseStatus)
	putPtr(m, "BusinessName", o.BusinessName)
	putPtr(m, "Location", o.Location)
	putPtr(m, "StreetName", o.StreetName)
	putPtr(m, "X", o.X)
	putPtr(m, "Y", o.Y)
	putPtr(m, "AssetType", o.AssetType)
	putPtr(m, "AssetId", o.AssetID)
	putPtr(m, "ExpirationDate", o.ExpirationDate)

	return m
}

// SearchFilters are the criteria of a case search. All set criteria are
// combined with a logical AND by the service.
type SearchFilters struct {
	CaseNumber   *string
	CaseName     *string
	CaseStatus   *string
	Location     *string
	BusinessName *string
	CaseTypeIDs  []int64
	SubTypeIDs   []int64
	BusCaseIDs   []int64
	Extra        map[string]any
}

// Fields returns the set criteria keyed by their wire names.
func (f SearchFilters) Fields() map[string]any {
	m := pkgmerge.Clone(f.Extra)
	if m == nil {
		m = make(map[string]any)
	}

	putPtr(m, "CaseNumber", f.CaseNumber)
	putPtr(m, "CaseName", f.CaseName)
	putPtr(m, "CaseStatus", f.CaseStatus)
	putPtr(m, "Location", f.Location)
	putPtr(m, "BusinessName", f.BusinessName)
	putIDs(m, "CaseTypeIds", f.CaseTypeIDs)
	putIDs(m, "SubTypeIds", f.SubTypeIDs)
	putIDs(m, "BusCaseIds", f.BusCaseIDs)

	return m
}

func putPtr[T any](m map[string]any, key string, v *T) {
	if v != nil {
		m[key] = *v
	}
}

func putIDs(m map[string]any, key string, ids []int64) {
	if len(ids) > 0 {
		m[key] = append([]int64(nil), ids...)
	}
}
