package http

import (
	"github.com/gin-gonic/gin"

	"unibot/internal/class"
	"unibot/pkg/response"
)

// CreateAssignment godoc
// @Summary Create an assignment
// @Tags Assignment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param classId path string true "Class ID"
// @Param body body assignmentReq true "Assignment payload"
// @Success 200 {object} assignmentResp
// @Router /api/v1/classes/{classId}/assignments [post]
func (h handler) CreateAssignment(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAssignmentReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	dueAt, _ := req.dueAt()
	out, err := h.uc.CreateAssignment(ctx, class.CreateAssignmentInput{
		ClassID:     c.Param("classId"),
		ScheduleID:  req.ScheduleID,
		Title:       req.Title,
		Description: req.Description,
		DueAt:       dueAt,
	})
	if err != nil {
		h.l.Errorf(ctx, "class.http.CreateAssignment: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newAssignmentResp(out.Assignment))
}

// ListAssignments godoc
// @Summary List assignments of a class
// @Tags Assignment
// @Produce json
// @Security BearerAuth
// @Param classId path string true "Class ID"
// @Success 200 {object} listAssignmentsResp
// @Router /api/v1/classes/{classId}/assignments [get]
func (h handler) ListAssignments(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.ListAssignments(ctx, class.ListAssignmentsInput{
		ClassID: c.Param("classId"),
	})
	if err != nil {
		h.l.Errorf(ctx, "class.http.ListAssignments: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newListAssignmentsResp(out))
}

// UpdateAssignment godoc
// @Summary Update an assignment
// @Tags Assignment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param assignmentId path string true "Assignment ID"
// @Param body body assignmentReq true "Assignment payload"
// @Success 200 {object} assignmentResp
// @Router /api/v1/assignments/{assignmentId} [put]
func (h handler) UpdateAssignment(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAssignmentReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	dueAt, _ := req.dueAt()
	out, err := h.uc.UpdateAssignment(ctx, class.UpdateAssignmentInput{
		ID:          c.Param("assignmentId"),
		ScheduleID:  req.ScheduleID,
		Title:       req.Title,
		Description: req.Description,
		DueAt:       dueAt,
	})
	if err != nil {
		h.l.Errorf(ctx, "class.http.UpdateAssignment: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newAssignmentResp(out.Assignment))
}

// DeleteAssignment godoc
// @Summary Delete an assignment
// @Tags Assignment
// @Produce json
// @Security BearerAuth
// @Param assignmentId path string true "Assignment ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/assignments/{assignmentId} [delete]
func (h handler) DeleteAssignment(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteAssignment(ctx, c.Param("assignmentId")); err != nil {
		h.l.Errorf(ctx, "class.http.DeleteAssignment: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
