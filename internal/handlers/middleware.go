package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"home_relay/internal/models"

	"github.com/gin-gonic/gin"
)

const relayIDKey = "relayID"

// relayIDMiddleware validates the :relay_id path param and stores it in the Gin context.
func (h *Handler) relayIDMiddleware(c *gin.Context) {
	raw := c.Param("relay_id")
	id, err := strconv.Atoi(raw)
	if err != nil || !models.ValidRelayID(id) {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf("relay_id must be an integer between %d and %d", models.MinRelayID, models.MaxRelayID),
		})
		return
	}

	// store in Gin context
	c.Set(relayIDKey, id)
	c.Next()
}

func relayID(c *gin.Context) int {
	return c.GetInt(relayIDKey)
}
