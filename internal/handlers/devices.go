package handlers

import (
	"errors"
	"net/http"

	"voiceplc/internal/registry"

	"github.com/gin-gonic/gin"
)

// @Summary      List devices
// @Tags         devices
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, devices"
// @Router       /api/v1/devices [get]
func (h *Handler) listDevices(c *gin.Context) {
	devices := h.services.Overview()
	c.JSON(http.StatusOK, gin.H{
		"count":   len(devices),
		"devices": devices,
	})
}

// @Summary      Device status
// @Description  Point-in-time snapshot of one device's actuator states and sensor readings. Does not write history.
// @Tags         devices
// @Produce      json
// @Param        name  path  string  true  "Device name (case-insensitive)"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/devices/{name}/status [get]
func (h *Handler) deviceStatus(c *gin.Context) {
	st, err := h.services.Status(c.Param("name"))
	if err != nil {
		if errors.Is(err, registry.ErrDeviceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if h.log != nil {
			h.log.Errorw("device_status_failed", "err", err, "device", c.Param("name"))
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load status"})
		return
	}
	c.JSON(http.StatusOK, st)
}
