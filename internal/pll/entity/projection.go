package entity

// Projection names the coordinate reference of X/Y (and optionally Z).
// Empty fields are absent from the request.
type Projection struct {
	WKID    string `json:"WKID,omitempty"`
	WKT     string `json:"WKT,omitempty"`
	VcsWKID string `json:"VcsWKID,omitempty"`
}

// HasReference reports whether at least one of WKID or WKT is set.
func (p Projection) HasReference() bool {
	return p.WKID != "" || p.WKT != ""
}

// Fields returns the set projection fields keyed by their wire names.
func (p Projection) Fields() map[string]any {
	m := make(map[string]any, 3)
	putString(m, "WKID", p.WKID)
	putString(m, "WKT", p.WKT)
	putString(m, "VcsWKID", p.VcsWKID)
	return m
}

func putString(m map[string]any, key, v string) {
	if v != "" {
		m[key] = v
	}
}
