package admin_test

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyovotewatch/district-alerts-api/internal/handlers/admin"
	"github.com/wyovotewatch/district-alerts-api/internal/metrics"
	"github.com/wyovotewatch/district-alerts-api/internal/models"
	"github.com/wyovotewatch/district-alerts-api/internal/roster"
)

type mockStore struct {
	replaced   []models.Legislator
	replaceErr error
	listed     []models.Legislator
	listErr    error
	gotCodes   []string
}

func (m *mockStore) ReplaceAll(_ context.Context, legislators []models.Legislator) (int, error) {
	m.replaced = legislators
	if m.replaceErr != nil {
		return 0, m.replaceErr
	}
	return len(legislators), nil
}

func (m *mockStore) ListActive(_ context.Context, codes []string) ([]models.Legislator, error) {
	m.gotCodes = codes
	return m.listed, m.listErr
}

func setupRouter(store *mockStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := admin.NewHandler(store, metrics.New("admin_handler_test", &sql.DB{}, "test"))
	r.POST("/admin/legislators/import", h.ImportLegislators)
	r.GET("/legislators", h.ListLegislators)

	return r
}

func TestImportEndpoint(t *testing.T) {
	store := &mockStore{}
	router := setupRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/admin/legislators/import", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"imported":92}`, w.Body.String())
	assert.Len(t, store.replaced, len(roster.Wyoming))
}

func TestImportEndpoint_Failure(t *testing.T) {
	store := &mockStore{replaceErr: errors.New("db down")}
	router := setupRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/admin/legislators/import", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestListEndpoint(t *testing.T) {
	store := &mockStore{listed: []models.Legislator{
		{Name: "Rep. One", Chamber: models.ChamberHouse, DistrictCode: "7", Active: true},
	}}
	router := setupRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/legislators?districts=h07,%20s04,", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"H07", "S04"}, store.gotCodes)
	assert.Contains(t, w.Body.String(), "Rep. One")
}

func TestListEndpoint_EmptyIsArray(t *testing.T) {
	store := &mockStore{}
	router := setupRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/legislators", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
	assert.Nil(t, store.gotCodes)
}
