package reports_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/reports"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/apperror"
)

type fakeService struct {
	summaryFn func(ctx context.Context, siteID, from, to string) (*reports.SiteSummary, error)
}

func (f *fakeService) Summary(ctx context.Context, siteID, from, to string) (*reports.SiteSummary, error) {
	return f.summaryFn(ctx, siteID, from, to)
}

func newRouter(svc reports.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := reports.NewHandler(svc)
	r.GET("/reports/summary", h.Summary)
	return r
}

func TestHandler_Summary_NoSiteAssigned(t *testing.T) {
	svc := &fakeService{summaryFn: func(context.Context, string, string, string) (*reports.SiteSummary, error) {
		t.Fatal("service must not be called without siteId")
		return nil, nil
	}}
	router := newRouter(svc)

	// Tanpa siteId dan dengan placeholder frontend lama, dua-duanya 200
	for _, target := range []string{"/reports/summary", "/reports/summary?siteId=your-site-id"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, target, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, target)

		var body map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "no_site_assigned", body["error"])
		assert.Equal(t, "No site assigned to your account.", body["message"])
	}
}

func TestHandler_Summary_PassesQueryParams(t *testing.T) {
	var gotSite, gotFrom, gotTo string
	svc := &fakeService{summaryFn: func(_ context.Context, siteID, from, to string) (*reports.SiteSummary, error) {
		gotSite, gotFrom, gotTo = siteID, from, to
		return &reports.SiteSummary{TillDateSpend: 10}, nil
	}}
	router := newRouter(svc)
	siteID := uuid.New().String()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/summary?siteId="+siteID+"&from=2026-08-01&to=2026-08-31", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, siteID, gotSite)
	assert.Equal(t, "2026-08-01", gotFrom)
	assert.Equal(t, "2026-08-31", gotTo)

	var body reports.SiteSummary
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.InDelta(t, 10, body.TillDateSpend, 0.001)
}

func TestHandler_Summary_ServiceError(t *testing.T) {
	svc := &fakeService{summaryFn: func(context.Context, string, string, string) (*reports.SiteSummary, error) {
		return nil, apperror.New(apperror.CodeInternalError, "An unexpected error occurred", http.StatusInternalServerError)
	}}
	router := newRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/summary?siteId="+uuid.New().String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, apperror.CodeInternalError, body["error"])
}
