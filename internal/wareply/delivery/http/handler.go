package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Reply godoc
// @Summary Answer a classified WhatsApp message
// @Description Internal endpoint for the worker. Returns the reply text, mentions, and an optional register result as a bare JSON object.
// @Tags Internal
// @Accept json
// @Produce json
// @Param X-Internal-Secret header string true "Shared worker secret"
// @Param body body replyReq true "Intent and chat context"
// @Success 200 {object} replyResp
// @Router /api/internal/wa/reply [post]
func (h handler) Reply(c *gin.Context) {
	ctx := c.Request.Context()

	var req replyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "wareply.http.Reply: bind: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	out, err := h.uc.Reply(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "wareply.http.Reply: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	c.JSON(http.StatusOK, newReplyResp(out))
}
