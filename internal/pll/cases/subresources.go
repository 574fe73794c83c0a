package cases

import (
	"context"

	"github.com/dustinpezley/cityworks/internal/pll/entity"
)

const (
	PathDataGroups    = "Pll/CaseDataGroup/ByCaObjectId"
	PathAddresses     = "Pll/CaseAddress/ByCaObjectId"
	PathTasks         = "Pll/CaseTask/ByCaObjectId"
	PathFees          = "Pll/CaseFees/ByCaObjectId"
	PathComments      = "Ams/Comment/ByActivityIds"
	PathBusinessCases = "Pll/BusinessCase/All"
)

type Data struct{ rt Runner }

// Groups lists the data detail groups of a case.
func (d *Data) Groups(ctx context.Context, caObjectID int64) ([]entity.Record, error) {
	return call[[]entity.Record](ctx, d.rt, PathDataGroups, map[string]any{"CaObjectId": caObjectID})
}

type Assets struct{ rt Runner }

// Addresses lists the addresses attached to a case.
func (a *Assets) Addresses(ctx context.Context, caObjectID int64) ([]entity.Record, error) {
	return call[[]entity.Record](ctx, a.rt, PathAddresses, map[string]any{"CaObjectId": caObjectID})
}

type Workflow struct{ rt Runner }

// Tasks lists the workflow tasks of a case.
func (w *Workflow) Tasks(ctx context.Context, caObjectID int64) ([]entity.Record, error) {
	return call[[]entity.Record](ctx, w.rt, PathTasks, map[string]any{"CaObjectId": caObjectID})
}

type Financial struct{ rt Runner }

// Fees lists the fees charged on a case.
func (f *Financial) Fees(ctx context.Context, caObjectID int64) ([]entity.Record, error) {
	return call[[]entity.Record](ctx, f.rt, PathFees, map[string]any{"CaObjectId": caObjectID})
}

// Comments reads comments of one activity type.
type Comments struct {
	rt         Runner
	recordType string
}

// RecordType is the activity type the comments belong to.
func (c *Comments) RecordType() string {
	return c.recordType
}

// Get lists the comments of the given records.
func (c *Comments) Get(ctx context.Context, recordIDs []int64) ([]entity.Record, error) {
	return call[[]entity.Record](ctx, c.rt, PathComments, map[string]any{
		"ActivityIds":  cloneIDs(recordIDs),
		"ActivityType": c.recordType,
	})
}

type Admin struct{ rt Runner }

// BusinessCases lists every business case template.
func (a *Admin) BusinessCases(ctx context.Context) ([]entity.Record, error) {
	return call[[]entity.Record](ctx, a.rt, PathBusinessCases, map[string]any{})
}
