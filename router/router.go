package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	batchCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
	},
	obsCtrl interface {
		Upsert(echo.Context) error
		List(echo.Context) error
	},
	harvestCtrl interface {
		Upsert(echo.Context) error
		List(echo.Context) error
	},
	insightCtrl interface {
		Insights(echo.Context) error
		Compare(echo.Context) error
	},
	guideCtrl interface {
		IngestText(echo.Context) error
		IngestURL(echo.Context) error
		Search(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	e.POST("/batches", batchCtrl.Create)
	e.GET("/batches", batchCtrl.List)
	e.POST("/batches/compare", insightCtrl.Compare)
	e.GET("/batches/:id", batchCtrl.Get)

	g := e.Group("/batches")
	g.POST("/:id/observations", obsCtrl.Upsert)
	g.GET("/:id/observations", obsCtrl.List)
	g.POST("/:id/harvests", harvestCtrl.Upsert)
	g.GET("/:id/harvests", harvestCtrl.List)

	e.GET("/insights/:id", insightCtrl.Insights)

	// guide library
	e.POST("/guides/ingest", guideCtrl.IngestText)
	e.POST("/guides/ingest/url", guideCtrl.IngestURL)
	e.GET("/guides/search", guideCtrl.Search)

	return e
}
