package handlers

import (
	"net/http"
	"strconv"

	"home_relay/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	kindTemperature = models.KindTemperature
	kindHumidity    = models.KindHumidity
)

// @Summary      Save a threshold
// @Description  One route per kind: post_threshold_temp and post_threshold_hum.
// @Tags         threshold
// @Accept       json
// @Produce      json
// @Param        body  body      ThresholdRequest  true  "Band"
// @Success      200   {object}  MessageResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/post_threshold_temp [post]
// @Router       /api/post_threshold_hum [post]
func (h *Handler) postThreshold(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ThresholdRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.badBody(c, "threshold_bad_body", err)
			return
		}
		t := models.Threshold{MinVal: *req.MinVal, MaxVal: *req.MaxVal}
		if err := h.services.Thresholds.SaveThreshold(c.Request.Context(), kind, t); err != nil {
			h.serviceError(c, "threshold_save_failed", "", err, "kind", kind)
			return
		}
		c.JSON(http.StatusOK, MessageResponse{Msg: msgSaved})
	}
}

// @Summary      Get a threshold
// @Tags         threshold
// @Produce      json
// @Success      200  {object}  models.Threshold
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/get_threshold_temp [get]
// @Router       /api/get_threshold_hum [get]
func (h *Handler) getThreshold(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, err := h.services.Thresholds.GetThreshold(c.Request.Context(), kind)
		if err != nil {
			h.serviceError(c, "threshold_get_failed", "no data", err, "kind", kind)
			return
		}
		c.JSON(http.StatusOK, t)
	}
}

// @Summary      Save a relay schedule
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        relay_id  path      int              true  "Relay id (1-4)"
// @Param        body      body      ScheduleRequest  true  "Schedule"
// @Success      200       {object}  MessageResponse
// @Failure      400       {object}  ErrorResponse
// @Failure      500       {object}  ErrorResponse
// @Router       /api/post_schedule_relay/{relay_id} [post]
func (h *Handler) postSchedule(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badBody(c, "schedule_bad_body", err)
		return
	}
	s := models.RelaySchedule{Relay: relayID(c), OnTime: req.OnTime, DurationSec: req.DurationSec}
	if err := h.services.Schedules.SaveSchedule(c.Request.Context(), s); err != nil {
		h.serviceError(c, "schedule_save_failed", "", err, "relay", s.Relay)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Msg: msgSaved})
}

// @Summary      Get a relay schedule
// @Tags         schedule
// @Produce      json
// @Param        relay_id  path      int  true  "Relay id (1-4)"
// @Success      200       {object}  models.RelaySchedule
// @Failure      400       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Failure      500       {object}  ErrorResponse
// @Router       /api/get_schedule_relay/{relay_id} [get]
func (h *Handler) getSchedule(c *gin.Context) {
	s, err := h.services.Schedules.GetSchedule(c.Request.Context(), relayID(c))
	if err != nil {
		h.serviceError(c, "schedule_get_failed", "no schedule", err, "relay", relayID(c))
		return
	}
	c.JSON(http.StatusOK, s)
}

// @Summary      Log an over-limit value
// @Tags         alert
// @Produce      json
// @Param        value  path      number  true  "Measured value"
// @Success      200    {object}  MessageResponse
// @Failure      400    {object}  ErrorResponse
// @Failure      500    {object}  ErrorResponse
// @Router       /api/post_over_temp/{value} [post]
// @Router       /api/post_over_hum/{value} [post]
func (h *Handler) postOverLimit(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := strconv.ParseFloat(c.Param("value"), 64)
		if err != nil {
			h.logAndJSONError(c, http.StatusBadRequest, "value must be a number", "over_limit_bad_value", err, "kind", kind)
			return
		}
		if err := h.services.Alerts.RecordOverLimit(c.Request.Context(), kind, value); err != nil {
			h.serviceError(c, "over_limit_record_failed", "", err, "kind", kind)
			return
		}
		c.JSON(http.StatusOK, MessageResponse{Msg: msgLogged})
	}
}
