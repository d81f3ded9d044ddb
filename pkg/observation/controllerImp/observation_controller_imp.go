package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"mycolog/entities"
	batchrepo "mycolog/pkg/batch/repository"
	repo "mycolog/pkg/observation/repository"
)

type ObservationCtrl struct {
	repo    repo.ObservationRepository
	batches batchrepo.BatchRepository
}

func New(repo repo.ObservationRepository, batches batchrepo.BatchRepository) *ObservationCtrl {
	return &ObservationCtrl{repo: repo, batches: batches}
}

type obsReq struct {
	Date                      string   `json:"date"`
	AmbientTemperatureCelsius *float64 `json:"ambient_temperature_celsius"`
	RelativeHumidityPercent   *float64 `json:"relative_humidity_percent"`
	CO2Level                  string   `json:"co2_level"`
	LightHoursPerDay          *float64 `json:"light_hours_per_day"`
}

func (h *ObservationCtrl) Upsert(c echo.Context) error {
	bid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid batch id"})
	}
	if _, err := h.batches.FindByID(uint(bid)); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "batch not found"})
	}
	var req obsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if req.Date == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date is required"})
	}
	d, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}
	o := &entities.Observation{BatchID: uint(bid), Date: d, CO2Level: req.CO2Level}
	if req.AmbientTemperatureCelsius != nil {
		o.AmbientTemperatureCelsius = *req.AmbientTemperatureCelsius
	}
	if req.RelativeHumidityPercent != nil {
		o.RelativeHumidityPercent = *req.RelativeHumidityPercent
	}
	if req.LightHoursPerDay != nil {
		o.LightHoursPerDay = *req.LightHoursPerDay
	}
	stored, err := h.repo.Upsert(o)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, stored)
}

func (h *ObservationCtrl) List(c echo.Context) error {
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
