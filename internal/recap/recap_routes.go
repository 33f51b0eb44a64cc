package recap

import (
	"go-absensi/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/recap", middleware.RateLimitByIP(2, 5), h.Export)
}
