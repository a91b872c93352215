package handlers

import (
	"net/http"

	"voiceplc/internal/service"

	"github.com/gin-gonic/gin"
)

// commandRequest is one line of command text, already transcribed by
// whatever front end (CLI, voice) produced it.
type commandRequest struct {
	Text string `json:"text" binding:"required"`
}

// CommandRequest is an exported model for Swagger docs of the command payload.
type CommandRequest struct {
	// Free-form command text, e.g. "turn on MainPump in WaterSystem"
	Text string `json:"text" example:"turn on MainPump in WaterSystem"`
}

// @Summary      Process a command
// @Description  Interprets the text, executes it against the device registry, and returns the rendered reply plus the structured result. Engine-level failures (unknown device, unrecognized command, ...) are reported inside the result, not as HTTP errors.
// @Tags         commands
// @Accept       json
// @Produce      json
// @Param        mode  query   string          false  "Response mode override"  Enums(natural,structured)
// @Param        body  body    CommandRequest  true   "Command payload"
// @Success      200   {object}  map[string]interface{}  "reply, result"
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/command [post]
func (h *Handler) postCommand(c *gin.Context) {
	var req commandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
		return
	}

	mode := h.defaultMode
	if q := c.Query("mode"); q != "" {
		parsed, err := service.ParseMode(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		mode = parsed
	}

	result, reply := h.services.Process(c.Request.Context(), req.Text, mode)
	c.JSON(http.StatusOK, gin.H{
		"reply":  reply,
		"result": result,
	})
}
