package attendance

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	attendanceerrors "go-absensi/internal/attendance/errors"
	"go-absensi/internal/shared/apperror"
	"go-absensi/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Record(c *gin.Context) {
	lockKey, _ := c.Get("idempotency_lock_key")
	cacheKey, _ := c.Get("idempotency_cache_key")

	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	var req RecordAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Record(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
			}
		}
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	start, end, err := parsePeriod(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	var resp []RecordResponse
	if raw := c.Query("employee_id"); raw != "" {
		id, convErr := strconv.ParseUint(raw, 10, 32)
		if convErr != nil || id == 0 {
			writeServiceError(c, apperror.InvalidField("employee_id"))
			return
		}
		resp, err = h.service.GetByEmployee(c.Request.Context(), uint(id), start, end)
	} else {
		resp, err = h.service.GetAllByPeriod(c.Request.Context(), start, end)
	}
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// parsePeriod membaca ?from=&to= (RFC3339); default 30 hari terakhir.
func parsePeriod(c *gin.Context) (time.Time, time.Time, error) {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -30)

	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, time.Time{}, apperror.InvalidField("from")
		}
		start = t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, time.Time{}, apperror.InvalidField("to")
		}
		end = t
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, attendanceerrors.ErrInvalidPeriodRange
	}

	return start, end, nil
}
