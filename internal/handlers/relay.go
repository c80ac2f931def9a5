package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Get relay status
// @Description  Creates the default OFF status on first read.
// @Tags         relay
// @Produce      json
// @Param        relay_id  path      int  true  "Relay id (1-4)"
// @Success      200       {object}  models.RelayStatus
// @Failure      400       {object}  ErrorResponse
// @Failure      500       {object}  ErrorResponse
// @Router       /api/get_relay_status/{relay_id} [get]
func (h *Handler) getRelayStatus(c *gin.Context) {
	st, err := h.services.Relays.GetStatus(c.Request.Context(), relayID(c))
	if err != nil {
		h.serviceError(c, "relay_status_get_failed", "", err, "relay", relayID(c))
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Set relay status
// @Description  Stores the status and appends the switch to the ON or OFF log.
// @Tags         relay
// @Accept       json
// @Produce      json
// @Param        relay_id  path      int                 true  "Relay id (1-4)"
// @Param        body      body      RelayStatusRequest  true  "Status"
// @Success      200       {object}  MessageResponse
// @Failure      400       {object}  ErrorResponse
// @Failure      500       {object}  ErrorResponse
// @Router       /api/post_relay_status/{relay_id} [post]
func (h *Handler) postRelayStatus(c *gin.Context) {
	var req RelayStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badBody(c, "relay_status_bad_body", err)
		return
	}
	if err := h.services.Relays.SetStatus(c.Request.Context(), relayID(c), *req.Status); err != nil {
		h.serviceError(c, "relay_status_set_failed", "", err, "relay", relayID(c))
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Msg: msgSaved})
}

// @Summary      Set relay mode
// @Tags         relay
// @Accept       json
// @Produce      json
// @Param        relay_id  path      int               true  "Relay id (1-4)"
// @Param        body      body      RelayModeRequest  true  "Mode: 0 auto, 1 manual"
// @Success      200       {object}  MessageResponse
// @Failure      400       {object}  ErrorResponse
// @Failure      500       {object}  ErrorResponse
// @Router       /api/post_relay_mode/{relay_id} [post]
func (h *Handler) postRelayMode(c *gin.Context) {
	var req RelayModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badBody(c, "relay_mode_bad_body", err)
		return
	}
	msg, err := h.services.Relays.SetMode(c.Request.Context(), relayID(c), *req.Mode)
	if err != nil {
		h.serviceError(c, "relay_mode_set_failed", "", err, "relay", relayID(c))
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Msg: msg})
}

// @Summary      Get relay mode
// @Tags         relay
// @Produce      json
// @Param        relay_id  path      int  true  "Relay id (1-4)"
// @Success      200       {object}  models.RelayMode
// @Failure      400       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Failure      500       {object}  ErrorResponse
// @Router       /api/get_relay_mode/{relay_id} [get]
func (h *Handler) getRelayMode(c *gin.Context) {
	m, err := h.services.Relays.GetMode(c.Request.Context(), relayID(c))
	if err != nil {
		h.serviceError(c, "relay_mode_get_failed", "no mode", err, "relay", relayID(c))
		return
	}
	c.JSON(http.StatusOK, m)
}

// @Summary      Relay on/off log of one day
// @Tags         relay
// @Produce      json
// @Param        date  query     string  true  "Day as dd-mm-yyyy"  example(10-01-2024)
// @Success      200   {object}  RelayLogResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/get_relay_log [get]
func (h *Handler) getRelayLog(c *gin.Context) {
	date := c.Query("date")
	events, err := h.services.Relays.RelayLog(c.Request.Context(), date)
	if err != nil {
		h.serviceError(c, "relay_log_list_failed", "", err, "date", date)
		return
	}
	c.JSON(http.StatusOK, RelayLogResponse{Date: date, Count: len(events), Events: events})
}
