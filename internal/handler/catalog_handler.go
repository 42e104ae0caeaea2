package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/prepitus/college-chances-api/internal/repository"
	"github.com/prepitus/college-chances-api/pkg/response"
)

// CatalogHandler serves the static college reference data the wizard
// searches against.
type CatalogHandler struct {
	catalog *repository.CatalogRepository
}

// NewCatalogHandler constructs the handler.
func NewCatalogHandler(catalog *repository.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// List godoc
// @Summary List the college catalog
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/colleges [get]
func (h *CatalogHandler) List(c *gin.Context) {
	response.OK(c, "", h.catalog.List(c.Request.Context()))
}
