package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"weatherornot/pkg/response"
)

// Dialogue godoc
// @Summary     Advance the event-planning dialogue
// @Description Runs one slot-filling turn: merges the latest message into the partial event and returns either the completed event, a terminal rejection, or one clarifying question.
// @Tags        Dialogue
// @Accept      json
// @Produce     json
// @Param       body body dialogueReq true "Partial event (optional) and message history"
// @Success     200 {object} dialogueResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/dialogue [POST]
func (h *handler) Dialogue(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDialogueReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Advance(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Advance: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newDialogueResp(out))
}

// CheckWeather godoc
// @Summary     Check weather suitability for an event
// @Description Fetches forecast values for the event window and returns a suitability verdict with reasoning.
// @Tags        Weather
// @Accept      json
// @Produce     json
// @Param       body body eventReq true "Completed event"
// @Success     200 {object} verdictResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/weather/check [POST]
func (h *handler) CheckWeather(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEventReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	verdict, err := h.uc.CheckSuitability(ctx, req.toModel())
	if err != nil {
		h.l.Errorf(ctx, "uc.CheckSuitability: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, verdictResp{Suitable: verdict.Suitable, Reason: verdict.Reason})
}

// AlternativeSlot godoc
// @Summary     Find an alternative time slot
// @Description Scans nearby 3-hour slots (96h forward, elapsed time backward) for the first with acceptable weather, preserving day/night classification.
// @Tags        Weather
// @Accept      json
// @Produce     json
// @Param       body body eventReq true "Completed event"
// @Success     200 {object} slotResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/weather/alternative [POST]
func (h *handler) AlternativeSlot(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEventReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	proposal, err := h.uc.FindAlternativeSlot(ctx, req.toModel())
	if err != nil {
		h.l.Errorf(ctx, "uc.FindAlternativeSlot: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, slotResp{NewTime: proposal.NewTime, Accepted: proposal.Accepted})
}

// Create godoc
// @Summary     Store a completed event
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body eventReq true "Event data"
// @Success     200 {object} eventResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEventReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	stored, err := h.uc.Create(ctx, h.scope(c), req.toModel())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newEventResp(stored))
}

// List godoc
// @Summary     List stored events
// @Tags        Events
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	events, err := h.uc.List(ctx, h.scope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newListResp(events))
}

// Detail godoc
// @Summary     Get one event
// @Tags        Events
// @Produce     json
// @Param       id path int true "Event ID"
// @Success     200 {object} eventResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/events/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	ev, err := h.uc.Detail(ctx, h.scope(c), id)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, newEventResp(ev))
}

// Update godoc
// @Summary     Update an event
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       id   path int      true "Event ID"
// @Param       body body eventReq true "Event data"
// @Success     200 {object} eventResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/events/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	req, err := h.processEventReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	ev := req.toModel()
	ev.ID = id

	updated, err := h.uc.Update(ctx, h.scope(c), ev)
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newEventResp(updated))
}

// Delete godoc
// @Summary     Delete an event
// @Tags        Events
// @Produce     json
// @Param       id path int true "Event ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/events/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	if err := h.uc.Delete(ctx, h.scope(c), id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}
