package inbound

import (
	"github.com/dustinpezley/cityworks/internal/pkg/pkgrouter"
	"github.com/dustinpezley/cityworks/internal/pll/cases"
)

func RegisterHTTPEndpoint(r *pkgrouter.Router, cs *cases.Case) {
	end := &HTTPEndpoint{cs: cs}

	r.POST("/cases", end.Create)
	r.GET("/cases", end.GetByIDs) // ?ids=1,2,3
	r.PATCH("/cases/:id", end.Update)
	r.DELETE("/cases/:id", end.Delete)
	r.POST("/cases/:id/children", end.CreateChild)
	r.POST("/cases/:id/move", end.Move)
	r.POST("/requests/:id/case", end.CreateFromRequest)
	r.POST("/search/cases", end.Search)

	r.GET("/cases/:id/data-groups", end.DataGroups)
	r.GET("/cases/:id/addresses", end.Addresses)
	r.GET("/cases/:id/tasks", end.Tasks)
	r.GET("/cases/:id/fees", end.Fees)
	r.GET("/cases/:id/comments", end.Comments)
	r.GET("/business-cases", end.BusinessCases)
}
