package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/dustinpezley/cityworks/internal/pkg/pkgerror"
	"github.com/dustinpezley/cityworks/internal/pkg/pkgrouter"
	"github.com/dustinpezley/cityworks/internal/pll/cases"
	"github.com/dustinpezley/cityworks/internal/pll/entity"
)

const (
	codeInvalidBody = 201
	codePathID      = 202
	codeIDsQuery    = 203
	codeIDsRequired = 204
)

const maxBodyBytes = 1 << 20

type HTTPEndpoint struct {
	cs *cases.Case
}

func (h *HTTPEndpoint) Create(ctx context.Context, r *http.Request) (any, error) {
	var req CreateCaseRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}

	obj, err := h.cs.Create(ctx, req.CaseTypeID, req.SubTypeID, req.CaseFields.toEntity())
	if err != nil {
		return nil, err
	}

	return CaseResponse{CaseObject: obj, status: http.StatusCreated, message: "case created"}, nil
}

func (h *HTTPEndpoint) CreateChild(ctx context.Context, r *http.Request) (any, error) {
	parentID, err := pathID(ctx)
	if err != nil {
		return nil, err
	}

	var req CreateChildRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}

	obj, err := h.cs.CreateChild(ctx, req.BusCaseID, parentID, req.CaseFields.toEntity())
	if err != nil {
		return nil, err
	}

	return CaseResponse{CaseObject: obj, status: http.StatusCreated, message: "child case created"}, nil
}

func (h *HTTPEndpoint) CreateFromRequest(ctx context.Context, r *http.Request) (any, error) {
	requestID, err := pathID(ctx)
	if err != nil {
		return nil, err
	}

	var req CreateCaseRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}

	obj, err := h.cs.CreateFromRequest(ctx, req.CaseTypeID, req.SubTypeID, requestID, req.CaseFields.toEntity())
	if err != nil {
		return nil, err
	}

	return CaseResponse{CaseObject: obj, status: http.StatusCreated, message: "case created from service request"}, nil
}

func (h *HTTPEndpoint) Update(ctx context.Context, r *http.Request) (any, error) {
	id, err := pathID(ctx)
	if err != nil {
		return nil, err
	}

	var req CaseFields
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}

	obj, err := h.cs.Update(ctx, id, req.toEntity())
	if err != nil {
		return nil, err
	}

	return CaseResponse{CaseObject: obj, message: "case updated"}, nil
}

func (h *HTTPEndpoint) GetByIDs(ctx context.Context, r *http.Request) (any, error) {
	ids, err := parseIDs(r.URL.Query().Get("ids"))
	if err != nil {
		return nil, err
	}

	objs, err := h.cs.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if objs == nil {
		objs = []entity.CaseObject{}
	}

	return CasesResponse{Cases: objs}, nil
}

func (h *HTTPEndpoint) Search(ctx context.Context, r *http.Request) (any, error) {
	var req SearchRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}

	ids, err := h.cs.Search(ctx, req.toEntity())
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []int64{}
	}

	return SearchResponse{CaObjectIDs: ids}, nil
}

func (h *HTTPEndpoint) Move(ctx context.Context, r *http.Request) (any, error) {
	id, err := pathID(ctx)
	if err != nil {
		return nil, err
	}

	var req MoveRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}

	projection := entity.Projection{WKID: req.WKID, WKT: req.WKT, VcsWKID: req.VcsWKID}

	var z []float64
	if req.Z != nil {
		z = append(z, *req.Z)
	}

	pt, err := h.cs.Move(ctx, id, req.X, req.Y, projection, z...)
	if err != nil {
		return nil, err
	}

	return MoveResponse{GISPoint: pt}, nil
}

func (h *HTTPEndpoint) Delete(ctx context.Context, _ *http.Request) (any, error) {
	id, err := pathID(ctx)
	if err != nil {
		return nil, err
	}

	obj, err := h.cs.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	return CaseResponse{CaseObject: obj, message: "case deleted"}, nil
}

func (h *HTTPEndpoint) DataGroups(ctx context.Context, _ *http.Request) (any, error) {
	return h.records(ctx, h.cs.Data.Groups)
}

func (h *HTTPEndpoint) Addresses(ctx context.Context, _ *http.Request) (any, error) {
	return h.records(ctx, h.cs.Assets.Addresses)
}

func (h *HTTPEndpoint) Tasks(ctx context.Context, _ *http.Request) (any, error) {
	return h.records(ctx, h.cs.Workflow.Tasks)
}

func (h *HTTPEndpoint) Fees(ctx context.Context, _ *http.Request) (any, error) {
	return h.records(ctx, h.cs.Financial.Fees)
}

func (h *HTTPEndpoint) Comments(ctx context.Context, _ *http.Request) (any, error) {
	return h.records(ctx, func(ctx context.Context, id int64) ([]entity.Record, error) {
		return h.cs.Comment.Get(ctx, []int64{id})
	})
}

func (h *HTTPEndpoint) BusinessCases(ctx context.Context, _ *http.Request) (any, error) {
	recs, err := h.cs.Admin.BusinessCases(ctx)
	if err != nil {
		return nil, err
	}

	return toRecordsResponse(recs), nil
}

func (h *HTTPEndpoint) records(ctx context.Context, list func(context.Context, int64) ([]entity.Record, error)) (any, error) {
	id, err := pathID(ctx)
	if err != nil {
		return nil, err
	}

	recs, err := list(ctx, id)
	if err != nil {
		return nil, err
	}

	return toRecordsResponse(recs), nil
}

func toRecordsResponse(recs []entity.Record) RecordsResponse {
	if recs == nil {
		recs = []entity.Record{}
	}
	return RecordsResponse{Records: recs}
}

// decodeBody reads a JSON body into dst. An empty body leaves dst untouched.
func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return pkgerror.New(codeInvalidBody, "invalid request body", map[string]any{"reason": err.Error()})
	}

	return nil
}

func pathID(ctx context.Context) (int64, error) {
	id, raw, ok := pkgrouter.GetParamID(ctx, "id")
	if !ok {
		return 0, pkgerror.New(codePathID, "invalid id in path", map[string]any{"id": raw})
	}

	return id, nil
}

func parseIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, value := range strings.Split(raw, ",") {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil || id < 1 {
			return nil, pkgerror.New(codeIDsQuery, "invalid ids query", map[string]any{"ids": raw})
		}
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		return nil, pkgerror.New(codeIDsRequired, "ids is required", map[string]any{"ids": raw})
	}

	return ids, nil
}
