package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"weatherornot/internal/event"
	"weatherornot/pkg/response"
)

// mapError translates domain/use-case errors into HTTP responses.
// Oracle and forecast transport failures are service failures; everything
// the user can fix is a 400 with the error text.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, event.ErrEventNotFound):
		response.NotFound(c, err)
	case errors.Is(err, event.ErrEmptyHistory), errors.Is(err, event.ErrIncompleteEvent):
		response.Error(c, err)
	default:
		response.InternalError(c, err)
	}
}
