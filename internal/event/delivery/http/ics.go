package http

import (
	"fmt"
	"net/http"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/gin-gonic/gin"

	"weatherornot/pkg/response"
)

// CalendarICS godoc
// @Summary     Export stored events as iCalendar
// @Description Returns the user's events as a text/calendar document.
// @Tags        Events
// @Produce     plain
// @Success     200 {string} string "iCalendar document"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/calendar.ics [GET]
func (h *handler) CalendarICS(c *gin.Context) {
	ctx := c.Request.Context()

	events, err := h.uc.List(ctx, h.scope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.InternalError(c, err)
		return
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//weatherornot//event planner//EN")

	for _, ev := range events {
		start, err := time.ParseInLocation("2006-01-02 15:04", ev.Date+" "+ev.StartTime, h.location)
		if err != nil {
			continue
		}
		end, err := time.ParseInLocation("2006-01-02 15:04", ev.Date+" "+ev.EndTime, h.location)
		if err != nil {
			continue
		}
		if !end.After(start) {
			end = end.AddDate(0, 0, 1)
		}

		item := cal.AddEvent(fmt.Sprintf("event-%d@weatherornot", ev.ID))
		item.SetCreatedTime(ev.CreatedAt)
		item.SetModifiedAt(ev.UpdatedAt)
		item.SetStartAt(start)
		item.SetEndAt(end)
		item.SetSummary(ev.Title)
		item.SetDescription(ev.Description)
		item.SetLocation(fmt.Sprintf("%g, %g", ev.Latitude, ev.Longitude))
	}

	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(cal.Serialize()))
}
