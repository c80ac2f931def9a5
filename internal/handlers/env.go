package handlers

import (
	"io"
	"net/http"
	"strconv"

	"home_relay/internal/ingest"
	"home_relay/internal/service"

	"github.com/gin-gonic/gin"
)

const maxEnvBody = 1 << 12

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{Status: statusOK})
}

// @Summary      Record a sensor reading
// @Description  Accepts {temperature, humidity} or the device keys {nhiet_do, do_am}.
// @Tags         env
// @Accept       json
// @Produce      json
// @Param        body  body      EnvRequest  true  "Reading"
// @Success      200   {object}  MessageResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/post_env [post]
func (h *Handler) postEnv(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxEnvBody))
	if err != nil {
		h.badBody(c, "env_read_body_failed", err)
		return
	}
	reading, err := ingest.DecodeReading(body)
	if err != nil {
		h.badBody(c, "env_bad_body", err)
		return
	}
	if err := h.services.Env.Record(c.Request.Context(), reading); err != nil {
		h.serviceError(c, "env_record_failed", "", err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Msg: msgLogged})
}

// @Summary      Latest sensor readings
// @Tags         env
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of readings"  default(50)
// @Success      200    {array}   SensorReadingResponse
// @Failure      400    {object}  ErrorResponse
// @Failure      500    {object}  ErrorResponse
// @Router       /api/get_env [get]
func (h *Handler) getEnv(c *gin.Context) {
	limit := service.DefaultEnvLimit
	if qs := c.Query("limit"); qs != "" {
		n, err := strconv.Atoi(qs)
		if err != nil {
			h.logAndJSONError(c, http.StatusBadRequest, "limit must be an integer", "env_bad_limit", err)
			return
		}
		limit = n
	}
	readings, err := h.services.Env.Latest(c.Request.Context(), limit)
	if err != nil {
		h.serviceError(c, "env_list_failed", "", err, "limit", limit)
		return
	}
	c.JSON(http.StatusOK, readings)
}
