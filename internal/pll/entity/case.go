package entity

// CaseObject is a case as returned by the Pll services (CaObjectItemBase).
type CaseObject struct {
	CaObjectID       int64   `json:"CaObjectId"`
	CaseNumber       string  `json:"CaseNumber,omitempty"`
	CaseName         string  `json:"CaseName,omitempty"`
	CaseTypeID       int64   `json:"CaseTypeId,omitempty"`
	SubTypeID        int64   `json:"SubTypeId,omitempty"`
	BusCaseID        int64   `json:"BusCaseId,omitempty"`
	ParentCaObjectID int64   `json:"ParentCaObjectId,omitempty"`
	CaseStatus       string  `json:"CaseStatus,omitempty"`
	BusinessName     string  `json:"BusinessName,omitempty"`
	Location         string  `json:"Location,omitempty"`
	X                float64 `json:"X,omitempty"`
	Y                float64 `json:"Y,omitempty"`
	CreatedBy        int64   `json:"CreatedBy,omitempty"`
	DateEntered      string  `json:"DateEntered,omitempty"`
}

// GISPoint is the located point of a case after a move.
type GISPoint struct {
	X       float64  `json:"X"`
	Y       float64  `json:"Y"`
	Z       *float64 `json:"Z,omitempty"`
	WKID    string   `json:"WKID,omitempty"`
	WKT     string   `json:"WKT,omitempty"`
	VcsWKID string   `json:"VcsWKID,omitempty"`
}

// Record is a loosely typed row returned by listing services.
type Record map[string]any
