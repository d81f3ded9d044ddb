package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"mycolog/pkg/guide/serviceImp"
)

type GuideCtrl struct{ s *serviceImp.Svc }

func New(s *serviceImp.Svc) *GuideCtrl { return &GuideCtrl{s: s} }

func (h *GuideCtrl) IngestText(c echo.Context) error {
	var body struct {
		Title string `json:"title"`
		Tags  string `json:"tags"`
		Text  string `json:"text"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	d, n, err := h.s.Ingest(body.Title, body.Tags, body.Text, "")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"doc": d, "chunks": n})
}

func (h *GuideCtrl) IngestURL(c echo.Context) error {
	var body struct {
		URL  string `json:"url"`
		Tags string `json:"tags"`
	}
	if err := c.Bind(&body); err != nil || body.URL == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "url is required"})
	}
	d, n, err := h.s.IngestURL(body.URL, body.Tags)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"doc": d, "chunks": n})
}

func (h *GuideCtrl) Search(c echo.Context) error {
	q := c.QueryParam("q")
	k, _ := strconv.Atoi(c.QueryParam("k"))
	if k <= 0 {
		k = 5
	}
	res, err := h.s.Search(q, k)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if res == nil {
		res = []serviceImp.Result{}
	}
	return c.JSON(http.StatusOK, echo.Map{"results": res})
}
