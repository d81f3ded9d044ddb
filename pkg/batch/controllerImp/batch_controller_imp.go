package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"mycolog/entities"
	repo "mycolog/pkg/batch/repository"
	"mycolog/pkg/middleware"
)

type BatchCtrl struct{ repo repo.BatchRepository }

func New(repo repo.BatchRepository) *BatchCtrl { return &BatchCtrl{repo} }

type createReq struct {
	SubstrateType            string   `json:"substrate_type"`
	SubstrateMoisturePercent *float64 `json:"substrate_moisture_percent"`
	SpawnRatePercent         *float64 `json:"spawn_rate_percent"`
	StartDate                string   `json:"start_date"`
}

func (h *BatchCtrl) Create(c echo.Context) error {
	u := middleware.RequireUser(c)
	if u == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "x-username header is required"})
	}
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if req.SubstrateType == "" || req.SubstrateMoisturePercent == nil || req.SpawnRatePercent == nil || req.StartDate == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "substrate_type, substrate_moisture_percent, spawn_rate_percent and start_date are required"})
	}
	sd, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_date must be YYYY-MM-DD"})
	}
	b := &entities.Batch{
		UserID:                   u.UserID,
		SubstrateType:            req.SubstrateType,
		SubstrateMoisturePercent: *req.SubstrateMoisturePercent,
		SpawnRatePercent:         *req.SpawnRatePercent,
		StartDate:                sd,
	}
	if err := h.repo.Create(b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *BatchCtrl) List(c echo.Context) error {
	// ?username= gives a cross-cutting view over another grower's batches
	if name := c.QueryParam("username"); name != "" {
		out, err := h.repo.ListByUsername(name)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, out)
	}
	u := middleware.RequireUser(c)
	if u == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "x-username header is required"})
	}
	out, err := h.repo.ListByUser(u.UserID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BatchCtrl) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid batch id"})
	}
	b, obs, harvests, err := h.repo.Detail(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "batch not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"batch_id":                   b.BatchID,
		"user_id":                    b.UserID,
		"substrate_type":             b.SubstrateType,
		"substrate_moisture_percent": b.SubstrateMoisturePercent,
		"spawn_rate_percent":         b.SpawnRatePercent,
		"start_date":                 b.StartDate,
		"created_at":                 b.CreatedAt,
		"updated_at":                 b.UpdatedAt,
		"observations":               obs,
		"harvests":                   harvests,
	})
}
