package cases

import (
	"context"
	"encoding/json"

	"github.com/dustinpezley/cityworks/internal/pkg/pkgerror"
	"github.com/dustinpezley/cityworks/internal/pkg/pkgmerge"
	"github.com/dustinpezley/cityworks/internal/pkg/pkgtransport"
	"github.com/dustinpezley/cityworks/internal/pll/entity"
)

const (
	PathCreate            = "Pll/Case/Create"
	PathCreateChild       = "Pll/Case/CreateChild"
	PathCreateFromRequest = "Pll/CaseObject/CreateCaseFromServiceRequest"
	PathUpdate            = "Pll/CaseObject/Update"
	PathByIDs             = "Pll/CaseObject/ByIds"
	PathSearch            = "Pll/CaseObject/Search"
	PathMove              = "Pll/CaseObject/Move"
	PathDelete            = "Pll/CaseObject/DeleteCase"
)

const (
	codeMoveProjection = 1
	codeDecodeValue    = 2
)

// Runner dispatches a payload to a Cityworks endpoint.
type Runner interface {
	RunRequest(ctx context.Context, path string, payload map[string]any) (*pkgtransport.Envelope, error)
}

// Case groups the case operations and the case sub-resources.
// All of them share the same Runner.
type Case struct {
	rt Runner

	Data      *Data      // Data detail groups
	Assets    *Assets    // Addresses attached to a case
	Workflow  *Workflow  // Tasks
	Financial *Financial // Fees, payments and receipts
	Comment   *Comments  // Comments on case objects
	Admin     *Admin     // PLL administration
}

// New builds the Case resource group on top of rt.
func New(rt Runner) *Case {
	return &Case{
		rt:        rt,
		Data:      &Data{rt: rt},
		Assets:    &Assets{rt: rt},
		Workflow:  &Workflow{rt: rt},
		Financial: &Financial{rt: rt},
		Comment:   &Comments{rt: rt, recordType: "CaObject"},
		Admin:     &Admin{rt: rt},
	}
}

// Create creates a case of the given type and subtype.
func (c *Case) Create(ctx context.Context, caseTypeID, subTypeID int64, opts *entity.CaseFields) (entity.CaseObject, error) {
	payload := pkgmerge.Compose(map[string]any{
		"CaseTypeId": caseTypeID,
		"SubTypeId":  subTypeID,
	}, opts.Fields())

	return call[entity.CaseObject](ctx, c.rt, PathCreate, payload)
}

// CreateChild creates a case under the parent case object.
func (c *Case) CreateChild(ctx context.Context, busCaseID, parentCaObjectID int64, opts *entity.CaseFields) (entity.CaseObject, error) {
	payload := pkgmerge.Compose(map[string]any{
		"BusCaseId":        busCaseID,
		"ParentCaObjectId": parentCaObjectID,
	}, opts.Fields())

	return call[entity.CaseObject](ctx, c.rt, PathCreateChild, payload)
}

// CreateFromRequest creates a case from a service request.
func (c *Case) CreateFromRequest(ctx context.Context, caseTypeID, subTypeID, requestID int64, opts *entity.CaseFields) (entity.CaseObject, error) {
	payload := pkgmerge.Compose(map[string]any{
		"CaseTypeId":       caseTypeID,
		"SubTypeId":        subTypeID,
		"ServiceRequestId": requestID,
	}, opts.Fields())

	return call[entity.CaseObject](ctx, c.rt, PathCreateFromRequest, payload)
}

// Update updates the case object.
func (c *Case) Update(ctx context.Context, caObjectID int64, opts *entity.CaseFields) (entity.CaseObject, error) {
	payload := pkgmerge.Compose(map[string]any{
		"CaObjectId": caObjectID,
	}, opts.Fields())

	return call[entity.CaseObject](ctx, c.rt, PathUpdate, payload)
}

// GetByIDs returns the cases with the given case object IDs.
func (c *Case) GetByIDs(ctx context.Context, caObjectIDs []int64) ([]entity.CaseObject, error) {
	payload := map[string]any{
		"CaObjectIds": cloneIDs(caObjectIDs),
	}

	return call[[]entity.CaseObject](ctx, c.rt, PathByIDs, payload)
}

// Search returns the IDs of the case objects matching every set filter.
func (c *Case) Search(ctx context.Context, filters entity.SearchFilters) ([]int64, error) {
	return call[[]int64](ctx, c.rt, PathSearch, filters.Fields())
}

// Move relocates the case point to x/y in the given projection. The optional
// z is sent only when supplied.
//
// The projection must carry a WKID or a WKT; otherwise Move fails with code 1
// without contacting the service.
func (c *Case) Move(ctx context.Context, caObjectID int64, x, y float64, projection entity.Projection, z ...float64) (entity.GISPoint, error) {
	if !projection.HasReference() {
		return entity.GISPoint{}, pkgerror.New(
			codeMoveProjection,
			"You must provide either the WKID or WKT for the x/y coordinates.",
			map[string]any{"projection": projection},
		)
	}

	required := map[string]any{
		"CaObjectId": caObjectID,
		"X":          x,
		"Y":          y,
	}
	if len(z) > 0 {
		required["Z"] = z[0]
	}

	return call[entity.GISPoint](ctx, c.rt, PathMove, pkgmerge.Compose(required, projection.Fields()))
}

// Delete deletes the case object.
func (c *Case) Delete(ctx context.Context, caObjectID int64) (entity.CaseObject, error) {
	payload := map[string]any{
		"CaObjectId": caObjectID,
	}

	return call[entity.CaseObject](ctx, c.rt, PathDelete, payload)
}

func call[T any](ctx context.Context, rt Runner, path string, payload map[string]any) (T, error) {
	var out T

	env, err := rt.RunRequest(ctx, path, payload)
	if err != nil {
		return out, err
	}

	if env == nil || len(env.Value) == 0 {
		return out, nil
	}

	if err := json.Unmarshal(env.Value, &out); err != nil {
		return out, pkgerror.Wrap(err, codeDecodeValue, "unable to decode response value", map[string]any{
			"path":  path,
			"value": string(env.Value),
		})
	}

	return out, nil
}

func cloneIDs(ids []int64) []int64 {
	out := make([]int64, len(ids))
	copy(out, ids)
	return out
}
