package recap

import (
	"fmt"
	"net/http"
	"strconv"

	recaperrors "go-absensi/internal/recap/errors"
	"go-absensi/internal/shared/apperror"
	"go-absensi/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Export menangani GET /recap?month=&year= dan mengembalikan workbook
// xlsx sebagai attachment. Body hanya ditulis setelah workbook utuh di
// memori; tidak ada output parsial.
func (h *Handler) Export(c *gin.Context) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		writeServiceError(c, recaperrors.ErrInvalidPeriod)
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		writeServiceError(c, recaperrors.ErrInvalidPeriod)
		return
	}

	file, err := h.service.Generate(c.Request.Context(), month, year)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", file.Name))
	c.Data(http.StatusOK, xlsxContentType, file.Content)
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}
