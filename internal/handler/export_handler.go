package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prepitus/college-chances-api/internal/service"
	"github.com/prepitus/college-chances-api/pkg/response"
)

// ExportHandler streams stored leads as downloadable documents.
type ExportHandler struct {
	exports      *service.ExportService
	exposeDetail bool
}

// NewExportHandler constructs the handler.
func NewExportHandler(exports *service.ExportService, exposeDetail bool) *ExportHandler {
	return &ExportHandler{exports: exports, exposeDetail: exposeDetail}
}

// Leads godoc
// @Summary Export captured leads
// @Tags Leads
// @Produce text/csv
// @Produce application/pdf
// @Param format query string true "csv or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /api/leads/export [get]
func (h *ExportHandler) Leads(c *gin.Context) {
	format := service.ExportFormat(c.DefaultQuery("format", string(service.ExportFormatCSV)))

	result, err := h.exports.Leads(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err, h.exposeDetail)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Content)
}
