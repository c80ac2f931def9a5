package handlers

import (
	"errors"
	"net/http"

	"home_relay/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response messages to avoid magic strings and typos.
const (
	statusOK  = "ok"
	msgSaved  = "saved"
	msgLogged = "logged"

	errInvalidBodyPref = "invalid body: "
	errInternal        = "internal error"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		if httpCode >= http.StatusInternalServerError {
			h.log.Errorw(logKey, fields...)
		} else {
			h.log.Warnw(logKey, fields...)
		}
	}
	c.JSON(httpCode, ErrorResponse{Error: userMsg})
}

// serviceError maps service errors to status codes:
// validation and bad requests are 400, missing rows 404, the rest 500.
func (h *Handler) serviceError(c *gin.Context, logKey, notFoundMsg string, err error, kv ...interface{}) {
	var (
		ve  *service.ValidationError
		bre *service.BadRequestError
	)
	switch {
	case errors.As(err, &ve), errors.As(err, &bre):
		h.logAndJSONError(c, http.StatusBadRequest, err.Error(), logKey, err, kv...)
	case errors.Is(err, service.ErrNotFound):
		h.logAndJSONError(c, http.StatusNotFound, notFoundMsg, logKey, err, kv...)
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, logKey, err, kv...)
	}
}

func (h *Handler) badBody(c *gin.Context, logKey string, err error) {
	h.logAndJSONError(c, http.StatusBadRequest, errInvalidBodyPref+err.Error(), logKey, err)
}
