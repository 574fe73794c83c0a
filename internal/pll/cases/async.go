package cases

import (
	"context"

	"github.com/dustinpezley/cityworks/internal/pkg/pkgroutine"
	"github.com/dustinpezley/cityworks/internal/pll/entity"
)

// Async runs case operations in the background. Every method returns at once
// with a Future resolving to exactly what the synchronous call would return.
type Async struct {
	c   *Case
	mgr *pkgroutine.Manager
}

// Async returns the background variant of c, bounded by mgr (nil for unbounded).
func (c *Case) Async(mgr *pkgroutine.Manager) *Async {
	return &Async{c: c, mgr: mgr}
}

func (a *Async) Create(ctx context.Context, caseTypeID, subTypeID int64, opts *entity.CaseFields) *pkgroutine.Future[entity.CaseObject] {
	return pkgroutine.Go(ctx, a.mgr, func(ctx context.Context) (entity.CaseObject, error) {
		return a.c.Create(ctx, caseTypeID, subTypeID, opts)
	})
}

func (a *Async) CreateChild(ctx context.Context, busCaseID, parentCaObjectID int64, opts *entity.CaseFields) *pkgroutine.Future[entity.CaseObject] {
	return pkgroutine.Go(ctx, a.mgr, func(ctx context.Context) (entity.CaseObject, error) {
		return a.c.CreateChild(ctx, busCaseID, parentCaObjectID, opts)
	})
}

func (a *Async) CreateFromRequest(ctx context.Context, caseTypeID, subTypeID, requestID int64, opts *entity.CaseFields) *pkgroutine.Future[entity.CaseObject] {
	return pkgroutine.Go(ctx, a.mgr, func(ctx context.Context) (entity.CaseObject, error) {
		return a.c.CreateFromRequest(ctx, caseTypeID, subTypeID, requestID, opts)
	})
}

func (a *Async) Update(ctx context.Context, caObjectID int64, opts *entity.CaseFields) *pkgroutine.Future[entity.CaseObject] {
	return pkgroutine.Go(ctx, a.mgr, func(ctx context.Context) (entity.CaseObject, error) {
		return a.c.Update(ctx, caObjectID, opts)
	})
}

func (a *Async) GetByIDs(ctx context.Context, caObjectIDs []int64) *pkgroutine.Future[[]entity.CaseObject] {
	ids := append([]int64(nil), caObjectIDs...)
	return pkgroutine.Go(ctx, a.mgr, func(ctx context.Context) ([]entity.CaseObject, error) {
		return a.c.GetByIDs(ctx, ids)
	})
}

func (a *Async) Search(ctx context.Context, filters entity.SearchFilters) *pkgroutine.Future[[]int64] {
	return pkgroutine.Go(ctx, a.mgr, func(ctx context.Context) ([]int64, error) {
		return a.c.Search(ctx, filters)
	})
}

func (a *Async) Move(ctx context.Context, caObjectID int64, x, y float64, projection entity.Projection, z ...float64) *pkgroutine.Future[entity.GISPoint] {
	zz := append([]float64(nil), z...)
	return pkgroutine.Go(ctx, a.mgr, func(ctx context.Context) (entity.GISPoint, error) {
		return a.c.Move(ctx, caObjectID, x, y, projection, zz...)
	})
}

func (a *Async) Delete(ctx context.Context, caObjectID int64) *pkgroutine.Future[entity.CaseObject] {
	return pkgroutine.Go(ctx, a.mgr, func(ctx context.Context) (entity.CaseObject, error) {
		return a.c.Delete(ctx, caObjectID)
	})
}
