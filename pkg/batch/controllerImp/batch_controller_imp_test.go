package controllerImp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mycolog/entities"
	batchRepoImp "mycolog/pkg/batch/repositoryImp"
	"mycolog/pkg/middleware"
	userRepoImp "mycolog/pkg/user/repositoryImp"
)

func newBatchEcho(t *testing.T) *echo.Echo {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.Batch{}, &entities.Observation{}, &entities.Harvest{}))

	ctrl := New(batchRepoImp.New(db))
	e := echo.New()
	e.Use(middleware.Identity(userRepoImp.New(db)))
	e.POST("/batches", ctrl.Create)
	e.GET("/batches", ctrl.List)
	e.GET("/batches/:id", ctrl.Get)
	return e
}

func doJSON(e *echo.Echo, method, path, username, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if username != "" {
		req.Header.Set("x-username", username)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const validBatch = `{"substrate_type":"Straw","substrate_moisture_percent":65,"spawn_rate_percent":5,"start_date":"2025-11-04"}`

func TestCreateRequiresUsernameHeader(t *testing.T) {
	e := newBatchEcho(t)
	rec := doJSON(e, http.MethodPost, "/batches", "", validBatch)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "x-username")
}

func TestCreateRejectsMissingFields(t *testing.T) {
	e := newBatchEcho(t)
	rec := doJSON(e, http.MethodPost, "/batches", "dhanush", `{"substrate_type":"Straw"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateAndListSharesOwner(t *testing.T) {
	e := newBatchEcho(t)

	// two batches under the same username resolve to one owner id
	var ids []uint
	for _, sd := range []string{"2025-11-04", "2025-11-18"} {
		body := fmt.Sprintf(`{"substrate_type":"Straw","substrate_moisture_percent":65,"spawn_rate_percent":5,"start_date":%q}`, sd)
		rec := doJSON(e, http.MethodPost, "/batches", "dhanush", body)
		require.Equal(t, http.StatusCreated, rec.Code)
		var b entities.Batch
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
		ids = append(ids, b.UserID)
	}
	require.Equal(t, ids[0], ids[1])

	rec := doJSON(e, http.MethodGet, "/batches", "dhanush", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var out []entities.Batch
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 2)
	// most recent start date first
	require.True(t, out[0].StartDate.After(out[1].StartDate))
}

func TestGetUnknownBatchIs404(t *testing.T) {
	e := newBatchEcho(t)
	rec := doJSON(e, http.MethodGet, "/batches/99", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetDetailIncludesNestedRows(t *testing.T) {
	e := newBatchEcho(t)

	rec := doJSON(e, http.MethodPost, "/batches", "rakesh", validBatch)
	require.Equal(t, http.StatusCreated, rec.Code)
	var b entities.Batch
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))

	rec = doJSON(e, http.MethodGet, fmt.Sprintf("/batches/%d", b.BatchID), "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var detail map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	require.Contains(t, detail, "observations")
	require.Contains(t, detail, "harvests")
	require.Equal(t, "[]", string(detail["observations"]))
}
