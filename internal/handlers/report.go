package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Email the daily report
// @Description  Validates the date and starts a background job that builds the workbook and chart and mails them. Build and delivery failures are only logged.
// @Tags         report
// @Accept       json
// @Produce      json
// @Param        body  body      ReportRequest  true  "Recipient and day"
// @Success      202   {object}  MessageResponse
// @Failure      400   {object}  ErrorResponse
// @Router       /api/send_report [post]
func (h *Handler) sendReport(c *gin.Context) {
	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badBody(c, "report_bad_body", err)
		return
	}
	msg, err := h.services.Reports.Submit(req.Email, req.Date)
	if err != nil {
		h.serviceError(c, "report_rejected", "", err, "date", req.Date)
		return
	}
	c.JSON(http.StatusAccepted, MessageResponse{Msg: msg})
}
