package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"mycolog/pkg/insight/serviceImp"
)

type InsightCtrl struct{ svc *serviceImp.InsightSvc }

func New(svc *serviceImp.InsightSvc) *InsightCtrl { return &InsightCtrl{svc} }

func (h *InsightCtrl) Insights(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid batch id"})
	}
	rep, err := h.svc.ForBatch(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "batch not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rep)
}

func (h *InsightCtrl) Compare(c echo.Context) error {
	var body struct {
		BatchIDs []uint `json:"batch_ids"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if len(body.BatchIDs) < 2 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "at least 2 batch ids are required for comparison"})
	}
	rows, err := h.svc.Compare(body.BatchIDs)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"batches": rows})
}
