package setting

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	settings := r.Group("/settings/attendance")
	{
		settings.GET("", h.Get)
		settings.PUT("", h.Upsert)
	}
}
