package holiday

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	holidays := r.Group("/holidays")
	{
		holidays.POST("", h.Create)
		holidays.GET("", h.GetAll)
		holidays.GET("/:id", h.GetByID)
		holidays.PUT("/:id", h.Update)
		holidays.DELETE("/:id", h.Delete)
	}
}
