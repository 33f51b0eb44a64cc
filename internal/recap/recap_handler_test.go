package recap_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-absensi/internal/recap"
	recaperrors "go-absensi/internal/recap/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	assembleFn func(ctx context.Context, month, year int) ([]recap.StatusGroup, error)
	generateFn func(ctx context.Context, month, year int) (recap.RecapFile, error)
}

func (f *fakeService) Assemble(ctx context.Context, month, year int) ([]recap.StatusGroup, error) {
	return f.assembleFn(ctx, month, year)
}
func (f *fakeService) Generate(ctx context.Context, month, year int) (recap.RecapFile, error) {
	return f.generateFn(ctx, month, year)
}

func setupRouter(svc recap.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := recap.NewHandler(svc)
	api := r.Group("/api/v1")
	api.GET("/recap", h.Export)
	return r
}

func TestHandler_Export(t *testing.T) {
	svc := &fakeService{
		generateFn: func(ctx context.Context, month, year int) (recap.RecapFile, error) {
			assert.Equal(t, 3, month)
			assert.Equal(t, 2025, year)
			return recap.RecapFile{Name: "rekap-absensi-03-2025.xlsx", Content: []byte("xlsx-bytes")}, nil
		},
	}
	router := setupRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recap?month=3&year=2025", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"),
	)
	assert.Equal(t,
		"attachment; filename=rekap-absensi-03-2025.xlsx",
		w.Header().Get("Content-Disposition"),
	)
	assert.Equal(t, "xlsx-bytes", w.Body.String())
}

func TestHandler_Export_MissingParams(t *testing.T) {
	router := setupRouter(&fakeService{})

	for _, target := range []string{
		"/api/v1/recap",
		"/api/v1/recap?month=3",
		"/api/v1/recap?month=abc&year=2025",
		"/api/v1/recap?month=3&year=dua-ribu",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Contains(t, w.Body.String(), "INVALID_PERIOD", target)
	}
}

func TestHandler_Export_InvalidPeriodFromService(t *testing.T) {
	svc := &fakeService{
		generateFn: func(ctx context.Context, month, year int) (recap.RecapFile, error) {
			return recap.RecapFile{}, recaperrors.ErrInvalidPeriod
		},
	}
	router := setupRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recap?month=13&year=2025", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_PERIOD")
}

func TestHandler_Export_MissingConfiguration(t *testing.T) {
	svc := &fakeService{
		generateFn: func(ctx context.Context, month, year int) (recap.RecapFile, error) {
			return recap.RecapFile{}, recaperrors.ErrMissingConfiguration
		},
	}
	router := setupRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recap?month=3&year=2025", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "MISSING_CONFIGURATION")
}
