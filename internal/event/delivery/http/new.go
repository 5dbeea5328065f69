package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"weatherornot/internal/event"
	"weatherornot/pkg/log"
)

// Handler is the public interface for the event HTTP delivery layer.
type Handler interface {
	Dialogue(c *gin.Context)
	CheckWeather(c *gin.Context)
	AlternativeSlot(c *gin.Context)
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	CalendarICS(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       event.UseCase
	location *time.Location
}

// New creates a new HTTP handler for the event domain.
func New(l log.Logger, uc event.UseCase, timezone string) *handler {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return &handler{
		l:        l,
		uc:       uc,
		location: loc,
	}
}
