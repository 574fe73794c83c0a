package inbound

import (
	"net/http"

	"github.com/dustinpezley/cityworks/internal/pll/entity"
)

// CaseFields is the optional part of create and update bodies.
type CaseFields struct {
	CaseName       *string        `json:"case_name"`
	CaseStatus     *string        `json:"case_status"`
	BusinessName   *string        `json:"business_name"`
	Location       *string        `json:"location"`
	StreetName     *string        `json:"street_name"`
	X              *float64       `json:"x"`
	Y              *float64       `json:"y"`
	AssetType      *string        `json:"asset_type"`
	AssetID        *string        `json:"asset_id"`
	ExpirationDate *string        `json:"expiration_date"`
	Extra          map[string]any `json:"extra"`
}

func (f CaseFields) toEntity() *entity.CaseFields {
	return &entity.CaseFields{
		CaseName:       f.CaseName,
		CaseStatus:     f.CaseStatus,
		BusinessName:   f.BusinessName,
		Location:       f.Location,
		StreetName:     f.StreetName,
		X:              f.X,
		Y:              f.Y,
		AssetType:      f.AssetType,
		AssetID:        f.AssetID,
		ExpirationDate: f.ExpirationDate,
		Extra:          f.Extra,
	}
}

type CreateCaseRequest struct {
	CaseTypeID int64 `json:"case_type_id"`
	SubTypeID  int64 `json:"sub_type_id"`
	CaseFields
}

type CreateChildRequest struct {
	BusCaseID int64 `json:"bus_case_id"`
	CaseFields
}

type SearchRequest struct {
	CaseNumber   *string        `json:"case_number"`
	CaseName     *string        `json:"case_name"`
	CaseStatus   *string        `json:"case_status"`
	Location     *string        `json:"location"`
	BusinessName *string        `json:"business_name"`
	CaseTypeIDs  []int64        `json:"case_type_ids"`
	SubTypeIDs   []int64        `json:"sub_type_ids"`
	BusCaseIDs   []int64        `json:"bus_case_ids"`
	Extra        map[string]any `json:"extra"`
}

func (s SearchRequest) toEntity() entity.SearchFilters {
	return entity.SearchFilters{
		CaseNumber:   s.CaseNumber,
		CaseName:     s.CaseName,
		CaseStatus:   s.CaseStatus,
		Location:     s.Location,
		BusinessName: s.BusinessName,
		CaseTypeIDs:  s.CaseTypeIDs,
		SubTypeIDs:   s.SubTypeIDs,
		BusCaseIDs:   s.BusCaseIDs,
		Extra:        s.Extra,
	}
}

type MoveRequest struct {
	X       float64  `json:"x"`
	Y       float64  `json:"y"`
	Z       *float64 `json:"z"`
	WKID    string   `json:"wkid"`
	WKT     string   `json:"wkt"`
	VcsWKID string   `json:"vcs_wkid"`
}

type CaseResponse struct {
	entity.CaseObject
	status  int
	message string
}

func (r CaseResponse) StatusCode() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

func (r CaseResponse) Message() string {
	if r.message == "" {
		return "request has been successfully"
	}
	return r.message
}

type MoveResponse struct {
	entity.GISPoint
}

func (r MoveResponse) StatusCode() int { return http.StatusOK }

func (r MoveResponse) Message() string { return "case moved" }

type CasesResponse struct {
	Cases []entity.CaseObject `json:"cases"`
}

func (r CasesResponse) Meta() map[string]any {
	return map[string]any{"total": len(r.Cases)}
}

type SearchResponse struct {
	CaObjectIDs []int64 `json:"ca_object_ids"`
}

func (r SearchResponse) Meta() map[string]any {
	return map[string]any{"total": len(r.CaObjectIDs)}
}

type RecordsResponse struct {
	Records []entity.Record `json:"records"`
}

func (r RecordsResponse) Meta() map[string]any {
	return map[string]any{"total": len(r.Records)}
}
