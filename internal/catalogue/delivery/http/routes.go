package http

import (
	"github.com/gin-gonic/gin"

	"storefront-catalogue/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every catalogue route is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit())

	lists := rg.Group("/lists")
	{
		lists.GET("/:kind", h.Browse)
	}

	sessions := rg.Group("/sessions")
	{
		sessions.POST("", h.OpenSession)
		sessions.GET("/:id", h.GetSession)
		sessions.DELETE("/:id", h.CloseSession)
		sessions.PATCH("/:id/filters", h.EditFilter)
		sessions.POST("/:id/reset", h.ResetFilters)
		sessions.PUT("/:id/page", h.SetPage)
	}
}
