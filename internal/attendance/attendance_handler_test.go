package attendance_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-absensi/internal/attendance"
	attendanceerrors "go-absensi/internal/attendance/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	recordFn         func(ctx context.Context, req attendance.RecordAttendanceRequest) (attendance.RecordResponse, error)
	getAllByPeriodFn func(ctx context.Context, start, end time.Time) ([]attendance.RecordResponse, error)
	getByEmployeeFn  func(ctx context.Context, karyawanID uint, start, end time.Time) ([]attendance.RecordResponse, error)
}

func (f *fakeService) Record(ctx context.Context, req attendance.RecordAttendanceRequest) (attendance.RecordResponse, error) {
	return f.recordFn(ctx, req)
}
func (f *fakeService) GetAllByPeriod(ctx context.Context, start, end time.Time) ([]attendance.RecordResponse, error) {
	return f.getAllByPeriodFn(ctx, start, end)
}
func (f *fakeService) GetByEmployee(ctx context.Context, karyawanID uint, start, end time.Time) ([]attendance.RecordResponse, error) {
	return f.getByEmployeeFn(ctx, karyawanID, start, end)
}

func setupRouter(svc attendance.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := attendance.NewHandler(svc)
	api := r.Group("/api/v1")
	attendances := api.Group("/attendances")
	attendances.POST("", h.Record)
	attendances.GET("", h.GetAll)
	return r
}

func TestHandler_Record(t *testing.T) {
	svc := &fakeService{
		recordFn: func(ctx context.Context, req attendance.RecordAttendanceRequest) (attendance.RecordResponse, error) {
			return attendance.RecordResponse{
				ID:         5,
				KaryawanID: req.KaryawanID,
				Timestamp:  req.Timestamp,
				Status:     req.Status,
			}, nil
		},
	}
	router := setupRouter(svc)

	body, _ := json.Marshal(gin.H{
		"employee_id": 3,
		"timestamp":   "2025-02-03T08:05:00+07:00",
		"status":      "Tepat Waktu",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendances", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":5`)
}

func TestHandler_Record_ValidationError(t *testing.T) {
	router := setupRouter(&fakeService{})

	body, _ := json.Marshal(gin.H{"employee_id": 3})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendances", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_INPUT")
}

func TestHandler_Record_InvalidTimestamp(t *testing.T) {
	svc := &fakeService{
		recordFn: func(ctx context.Context, req attendance.RecordAttendanceRequest) (attendance.RecordResponse, error) {
			return attendance.RecordResponse{}, attendanceerrors.ErrInvalidTimestamp
		},
	}
	router := setupRouter(svc)

	body, _ := json.Marshal(gin.H{
		"employee_id": 3,
		"timestamp":   "kemarin sore",
		"status":      "Tepat Waktu",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendances", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetAll_FilterByEmployee(t *testing.T) {
	var gotID uint
	svc := &fakeService{
		getByEmployeeFn: func(ctx context.Context, karyawanID uint, start, end time.Time) ([]attendance.RecordResponse, error) {
			gotID = karyawanID
			return []attendance.RecordResponse{{ID: 1, KaryawanID: karyawanID}}, nil
		},
	}
	router := setupRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendances?employee_id=7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), gotID)
}

func TestHandler_GetAll_BadFrom(t *testing.T) {
	router := setupRouter(&fakeService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendances?from=01-02-2025", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
