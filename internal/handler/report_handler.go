package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/prepitus/college-chances-api/internal/dto"
	appErrors "github.com/prepitus/college-chances-api/pkg/errors"
	"github.com/prepitus/college-chances-api/pkg/response"
)

type reportService interface {
	StoreAndSend(ctx context.Context, req dto.StoreAndSendRequest) (*dto.ReportDelivery, error)
	SendLegacy(ctx context.Context, req dto.SendReportRequest) (*dto.ReportDelivery, error)
}

// ReportHandler exposes the two report delivery endpoints.
type ReportHandler struct {
	reports      reportService
	exposeDetail bool
}

// NewReportHandler constructs the handler. exposeDetail echoes internal
// error text to clients and must be false in production.
func NewReportHandler(reports reportService, exposeDetail bool) *ReportHandler {
	return &ReportHandler{reports: reports, exposeDetail: exposeDetail}
}

// StoreAndSend godoc
// @Summary Store lead and send admission report
// @Tags Reports
// @Accept json
// @Produce json
// @Param request body dto.StoreAndSendRequest true "Lead and selected colleges"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/store-user-and-send-report [post]
func (h *ReportHandler) StoreAndSend(c *gin.Context) {
	var req dto.StoreAndSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "All user information is required"), h.exposeDetail)
		return
	}

	delivery, err := h.reports.StoreAndSend(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err, h.exposeDetail)
		return
	}
	response.OK(c, "Your college admission report has been sent successfully!", delivery)
}

// SendReport godoc
// @Summary Send admission report (legacy, no lead capture)
// @Tags Reports
// @Accept json
// @Produce json
// @Param request body dto.SendReportRequest true "Profile and selected colleges"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/send-college-report [post]
func (h *ReportHandler) SendReport(c *gin.Context) {
	var req dto.SendReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Email address is required"), h.exposeDetail)
		return
	}

	delivery, err := h.reports.SendLegacy(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err, h.exposeDetail)
		return
	}
	response.OK(c, "Your college admission report has been sent successfully! Please check your email.", delivery)
}
