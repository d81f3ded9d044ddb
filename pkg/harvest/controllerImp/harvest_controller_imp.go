package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"mycolog/entities"
	batchrepo "mycolog/pkg/batch/repository"
	repo "mycolog/pkg/harvest/repository"
)

type HarvestCtrl struct {
	repo    repo.HarvestRepository
	batches batchrepo.BatchRepository
}

func New(repo repo.HarvestRepository, batches batchrepo.BatchRepository) *HarvestCtrl {
	return &HarvestCtrl{repo: repo, batches: batches}
}

type harvestReq struct {
	FlushNumber       *int     `json:"flush_number"`
	FlushYieldKg      *float64 `json:"flush_yield_kg"`
	TotalBatchYieldKg *float64 `json:"total_batch_yield_kg"`
	Date              string   `json:"date"`
}

func (h *HarvestCtrl) Upsert(c echo.Context) error {
	bid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid batch id"})
	}
	if _, err := h.batches.FindByID(uint(bid)); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "batch not found"})
	}
	var req harvestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if req.FlushNumber == nil || req.FlushYieldKg == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "flush_number and flush_yield_kg are required"})
	}
	hv := &entities.Harvest{
		BatchID:      uint(bid),
		FlushNumber:  *req.FlushNumber,
		FlushYieldKg: *req.FlushYieldKg,
	}
	if req.TotalBatchYieldKg != nil {
		hv.TotalBatchYieldKg = *req.TotalBatchYieldKg
	}
	if req.Date != "" {
		d, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
		}
		hv.Date = d
	}
	stored, err := h.repo.Upsert(hv)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, stored)
}

func (h *HarvestCtrl) List(c echo.Context) error {
	bid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid batch id"})
	}
	if _, err := h.batches.FindByID(uint(bid)); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "batch not found"})
	}
	out, err := h.repo.ListByBatch(uint(bid))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
