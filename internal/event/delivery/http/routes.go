package http

import (
	"github.com/gin-gonic/gin"

	"weatherornot/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The dialogue and weather routes sit behind the rate limiter because every
// call fans out into oracle requests.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/dialogue", mw.RateLimit(), h.Dialogue)

	weather := rg.Group("/weather")
	{
		weather.POST("/check", mw.RateLimit(), h.CheckWeather)
		weather.POST("/alternative", mw.RateLimit(), h.AlternativeSlot)
	}

	events := rg.Group("/events")
	{
		events.POST("", h.Create)
		events.GET("", h.List)
		events.GET("/calendar.ics", h.CalendarICS)
		events.GET("/:id", h.Detail)
		events.PUT("/:id", h.Update)
		events.DELETE("/:id", h.Delete)
	}
}
