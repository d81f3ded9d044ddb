package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"mycolog/config"
	"mycolog/database"
	"mycolog/router"

	"mycolog/pkg/insight"
	"mycolog/pkg/middleware"

	batchCtrlImp "mycolog/pkg/batch/controllerImp"
	batchRepoImp "mycolog/pkg/batch/repositoryImp"

	obsCtrlImp "mycolog/pkg/observation/controllerImp"
	obsRepoImp "mycolog/pkg/observation/repositoryImp"

	harvestCtrlImp "mycolog/pkg/harvest/controllerImp"
	harvestRepoImp "mycolog/pkg/harvest/repositoryImp"

	insightCtrlImp "mycolog/pkg/insight/controllerImp"
	insightSvc "mycolog/pkg/insight/serviceImp"

	guideCtrlImp "mycolog/pkg/guide/controllerImp"
	guideRepoImp "mycolog/pkg/guide/repositoryImp"
	guideSvcImp "mycolog/pkg/guide/serviceImp"

	userRepoImp "mycolog/pkg/user/repositoryImp"

	healthCtrlImp "mycolog/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Insight thresholds (defaults, optionally overridden from XLSX)
	thresholds := insight.DefaultThresholds()
	if cfg.ThresholdsXLSX != "" {
		t, err := insight.LoadThresholdsXLSX(cfg.ThresholdsXLSX, thresholds)
		if err != nil {
			log.Printf("thresholds warn: %v", err)
		} else {
			thresholds = t
		}
	}

	// 4) Repos
	users := userRepoImp.New(db)
	batches := batchRepoImp.New(db)
	observations := obsRepoImp.New(db)
	harvests := harvestRepoImp.New(db)
	guides := guideRepoImp.New(db)

	// 5) Services + controllers
	iSvc := insightSvc.New(batches, observations, harvests, thresholds)
	gSvc := guideSvcImp.New(guides)

	bCtrl := batchCtrlImp.New(batches)
	oCtrl := obsCtrlImp.New(observations, batches)
	hCtrl := harvestCtrlImp.New(harvests, batches)
	iCtrl := insightCtrlImp.New(iSvc)
	gCtrl := guideCtrlImp.New(gSvc)
	healthCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 6) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(middleware.Identity(users))

	r := router.New(e, bCtrl, oCtrl, hCtrl, iCtrl, gCtrl, healthCtrl)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
