package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"weatherornot/internal/model"
)

// userIDHeader carries the caller's account namespace. Requests without it
// share a single fixed namespace.
const (
	userIDHeader  = "X-User-ID"
	defaultUserID = "default"
)

// scope extracts the account namespace for the request.
func (h *handler) scope(c *gin.Context) model.Scope {
	userID := c.GetHeader(userIDHeader)
	if userID == "" {
		userID = defaultUserID
	}
	return model.Scope{UserID: userID}
}

// processDialogueReq binds and validates the dialogue request body.
func (h *handler) processDialogueReq(c *gin.Context) (dialogueReq, error) {
	var req dialogueReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processEventReq binds and validates a full event body.
func (h *handler) processEventReq(c *gin.Context) (eventReq, error) {
	var req eventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processIDParam parses the :id path parameter.
func (h *handler) processIDParam(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
