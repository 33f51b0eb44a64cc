package attendance

import (
	"go-absensi/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	attendances := r.Group("/attendances")
	{
		attendances.POST("", middleware.Idempotency(rdb), h.Record)
		attendances.GET("", h.GetAll)
	}
}
