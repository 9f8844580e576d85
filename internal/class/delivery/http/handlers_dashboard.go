package http

import (
	"github.com/gin-gonic/gin"

	"unibot/pkg/response"
)

// Dashboard godoc
// @Summary Dashboard counters
// @Description Returns entity counts for the admin landing page.
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dashboardResp
// @Router /api/v1/dashboard [get]
func (h handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Dashboard(ctx)
	if err != nil {
		h.l.Errorf(ctx, "class.http.Dashboard: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, dashboardResp{
		Classes:     out.Classes,
		Schedules:   out.Schedules,
		Assignments: out.Assignments,
		Groups:      out.Groups,
		Members:     out.Members,
	})
}
