package http

import (
	"github.com/gin-gonic/gin"

	"unibot/internal/class"
	"unibot/pkg/response"
)

// ListGroups godoc
// @Summary List groups of a class
// @Tags Group
// @Produce json
// @Security BearerAuth
// @Param classId path string true "Class ID"
// @Param with_members query bool false "Include group members"
// @Success 200 {object} listGroupsResp
// @Router /api/v1/classes/{classId}/groups [get]
func (h handler) ListGroups(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.ListGroups(ctx, class.ListGroupsInput{
		ClassID:     c.Param("classId"),
		WithMembers: c.Query("with_members") == "true",
	})
	if err != nil {
		h.l.Errorf(ctx, "class.http.ListGroups: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newListGroupsResp(out))
}

// CreateGroup godoc
// @Summary Create a work group
// @Tags Group
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body groupReq true "Group payload"
// @Success 200 {object} groupResp
// @Router /api/v1/groups [post]
func (h handler) CreateGroup(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGroupReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.CreateGroup(ctx, class.CreateGroupInput{
		ScheduleID: req.ScheduleID,
		Name:       req.Name,
		Hints:      req.Hints,
	})
	if err != nil {
		h.l.Errorf(ctx, "class.http.CreateGroup: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newGroupResp(out.Group))
}

// UpdateGroup godoc
// @Summary Update a work group
// @Tags Group
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Param body body groupReq true "Group payload"
// @Success 200 {object} groupResp
// @Router /api/v1/groups/{groupId} [put]
func (h handler) UpdateGroup(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGroupReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.UpdateGroup(ctx, class.UpdateGroupInput{
		ID:         c.Param("groupId"),
		ScheduleID: req.ScheduleID,
		Name:       req.Name,
		Hints:      req.Hints,
	})
	if err != nil {
		h.l.Errorf(ctx, "class.http.UpdateGroup: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newGroupResp(out.Group))
}

// DeleteGroup godoc
// @Summary Delete a work group
// @Tags Group
// @Produce json
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/groups/{groupId} [delete]
func (h handler) DeleteGroup(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteGroup(ctx, c.Param("groupId")); err != nil {
		h.l.Errorf(ctx, "class.http.DeleteGroup: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// AddGroupMember godoc
// @Summary Add a member to a group
// @Tags Group
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Param body body memberReq true "Member payload"
// @Success 200 {object} memberResp
// @Router /api/v1/groups/{groupId}/members [post]
func (h handler) AddGroupMember(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMemberReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.AddGroupMember(ctx, class.AddGroupMemberInput{
		GroupID: c.Param("groupId"),
		Name:    req.Name,
		Phone:   req.Phone,
	})
	if err != nil {
		h.l.Errorf(ctx, "class.http.AddGroupMember: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newMemberResp(out.Member))
}

// UpdateGroupMember godoc
// @Summary Update a group member
// @Tags Group
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param memberId path string true "Member ID"
// @Param body body memberReq true "Member payload"
// @Success 200 {object} memberResp
// @Router /api/v1/group-members/{memberId} [put]
func (h handler) UpdateGroupMember(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMemberReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.UpdateGroupMember(ctx, class.UpdateGroupMemberInput{
		ID:    c.Param("memberId"),
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		h.l.Errorf(ctx, "class.http.UpdateGroupMember: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newMemberResp(out.Member))
}

// DeleteGroupMember godoc
// @Summary Remove a member from a group
// @Tags Group
// @Produce json
// @Security BearerAuth
// @Param memberId path string true "Member ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/group-members/{memberId} [delete]
func (h handler) DeleteGroupMember(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteGroupMember(ctx, c.Param("memberId")); err != nil {
		h.l.Errorf(ctx, "class.http.DeleteGroupMember: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
