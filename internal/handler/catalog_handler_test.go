package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepitus/college-chances-api/internal/repository"
)

func TestCatalogHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewCatalogHandler(repository.NewCatalogRepository(nil, 0))

	c, w := newGinContext(http.MethodGet, "/api/colleges", nil)
	handler.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	colleges, ok := env.Data.([]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, colleges)

	first, ok := colleges[0].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, first, "name")
	assert.Contains(t, first, "combined")
}
