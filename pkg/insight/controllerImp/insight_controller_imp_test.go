package controllerImp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mycolog/entities"
	batchRepoImp "mycolog/pkg/batch/repositoryImp"
	harvestRepoImp "mycolog/pkg/harvest/repositoryImp"
	"mycolog/pkg/insight"
	"mycolog/pkg/insight/serviceImp"
	obsRepoImp "mycolog/pkg/observation/repositoryImp"
)

func newInsightEcho(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Batch{}, &entities.Observation{}, &entities.Harvest{}))

	svc := serviceImp.New(batchRepoImp.New(db), obsRepoImp.New(db), harvestRepoImp.New(db), insight.DefaultThresholds())
	ctrl := New(svc)
	e := echo.New()
	e.GET("/insights/:id", ctrl.Insights)
	e.POST("/batches/compare", ctrl.Compare)
	return e, db
}

func TestInsightsUnknownBatch(t *testing.T) {
	e, _ := newInsightEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/insights/5", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInsightsPayloadContract(t *testing.T) {
	e, db := newInsightEcho(t)

	b := entities.Batch{SubstrateType: "Straw", StartDate: time.Now().UTC()}
	require.NoError(t, db.Create(&b).Error)
	require.NoError(t, db.Create(&entities.Harvest{BatchID: b.BatchID, FlushNumber: 1, FlushYieldKg: 0.3}).Error)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/insights/%d", b.BatchID), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var rep insight.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	require.Equal(t, []string{insight.SignalLowYield}, rep.Signals)
	require.Equal(t, insight.SignalLowYield, rep.Summary)
}

func TestInsightsEmptyBatchHasEmptySignalList(t *testing.T) {
	e, db := newInsightEcho(t)

	b := entities.Batch{SubstrateType: "Straw", StartDate: time.Now().UTC()}
	require.NoError(t, db.Create(&b).Error)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/insights/%d", b.BatchID), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	// signals marshals as [], never null
	require.JSONEq(t, `{"summary":"","signals":[]}`, rec.Body.String())
}

func TestCompareRequiresTwoIDs(t *testing.T) {
	e, _ := newInsightEcho(t)

	req := httptest.NewRequest(http.MethodPost, "/batches/compare", strings.NewReader(`{"batch_ids":[1]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompareUnknownID(t *testing.T) {
	e, db := newInsightEcho(t)

	b := entities.Batch{SubstrateType: "Straw", StartDate: time.Now().UTC()}
	require.NoError(t, db.Create(&b).Error)

	body := fmt.Sprintf(`{"batch_ids":[%d,404]}`, b.BatchID)
	req := httptest.NewRequest(http.MethodPost, "/batches/compare", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "404")
}
