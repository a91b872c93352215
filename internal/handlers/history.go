package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary      Recent command history
// @Description  Returns the most recent entries, most recent first. Omitting limit uses the configured default.
// @Tags         history
// @Produce      json
// @Param        limit  query   int  false  "Maximum number of entries"  minimum(1)
// @Success      200    {object}  map[string]interface{}  "count, entries"
// @Failure      400    {object}  map[string]string
// @Router       /api/v1/history [get]
func (h *Handler) getHistory(c *gin.Context) {
	limit := 0
	if qs := c.Query("limit"); qs != "" {
		v, err := strconv.Atoi(qs)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'limit': want a positive integer"})
			return
		}
		limit = v
	}

	entries := h.services.Recent(limit)
	c.JSON(http.StatusOK, gin.H{
		"count":   len(entries),
		"entries": entries,
	})
}
