package http

import (
	"github.com/gin-gonic/gin"

	"unibot/internal/class"
	"unibot/pkg/response"
)

// CreateClass godoc
// @Summary Create a class
// @Description Creates a campus class. The WhatsApp group link is added later via the register command.
// @Tags Class
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body classReq true "Class payload"
// @Success 200 {object} classResp
// @Router /api/v1/classes [post]
func (h handler) CreateClass(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClassReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.CreateClass(ctx, class.CreateClassInput{Name: req.Name})
	if err != nil {
		h.l.Errorf(ctx, "class.http.CreateClass: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newClassResp(out.Class))
}

// ListClasses godoc
// @Summary List classes
// @Tags Class
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} listClassesResp
// @Router /api/v1/classes [get]
func (h handler) ListClasses(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListClassesReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ListClasses(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "class.http.ListClasses: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newListClassesResp(out))
}

// DetailClass godoc
// @Summary Class detail
// @Description Returns the class together with its schedules, assignments, and groups.
// @Tags Class
// @Produce json
// @Security BearerAuth
// @Param classId path string true "Class ID"
// @Success 200 {object} detailClassResp
// @Router /api/v1/classes/{classId} [get]
func (h handler) DetailClass(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.DetailClass(ctx, c.Param("classId"))
	if err != nil {
		h.l.Errorf(ctx, "class.http.DetailClass: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newDetailClassResp(out))
}

// UpdateClass godoc
// @Summary Update a class
// @Tags Class
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param classId path string true "Class ID"
// @Param body body classReq true "Class payload"
// @Success 200 {object} classResp
// @Router /api/v1/classes/{classId} [put]
func (h handler) UpdateClass(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClassReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.UpdateClass(ctx, class.UpdateClassInput{
		ID:       c.Param("classId"),
		Name:     req.Name,
		GroupJID: req.GroupJID,
	})
	if err != nil {
		h.l.Errorf(ctx, "class.http.UpdateClass: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newClassResp(out.Class))
}

// DeleteClass godoc
// @Summary Delete a class
// @Description Deletes the class and everything under it.
// @Tags Class
// @Produce json
// @Security BearerAuth
// @Param classId path string true "Class ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/classes/{classId} [delete]
func (h handler) DeleteClass(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteClass(ctx, c.Param("classId")); err != nil {
		h.l.Errorf(ctx, "class.http.DeleteClass: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
