package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errWrongBody = errors.New("wrong body")

func (h handler) processClassReq(c *gin.Context) (classReq, error) {
	ctx := c.Request.Context()

	var req classReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "class.http.processClassReq: %v", err)
		return classReq{}, errWrongBody
	}

	if err := req.validate(); err != nil {
		h.l.Warnf(ctx, "class.http.processClassReq.validate: %v", err)
		return classReq{}, err
	}

	return req, nil
}

func (h handler) processListClassesReq(c *gin.Context) (listClassesReq, error) {
	ctx := c.Request.Context()

	var req listClassesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "class.http.processListClassesReq: %v", err)
		return listClassesReq{}, errWrongBody
	}

	return req, nil
}

func (h handler) processScheduleReq(c *gin.Context) (scheduleReq, error) {
	ctx := c.Request.Context()

	var req scheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "class.http.processScheduleReq: %v", err)
		return scheduleReq{}, errWrongBody
	}

	if err := req.validate(); err != nil {
		h.l.Warnf(ctx, "class.http.processScheduleReq.validate: %v", err)
		return scheduleReq{}, err
	}

	return req, nil
}

func (h handler) processAssignmentReq(c *gin.Context) (assignmentReq, error) {
	ctx := c.Request.Context()

	var req assignmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "class.http.processAssignmentReq: %v", err)
		return assignmentReq{}, errWrongBody
	}

	if err := req.validate(); err != nil {
		h.l.Warnf(ctx, "class.http.processAssignmentReq.validate: %v", err)
		return assignmentReq{}, err
	}

	return req, nil
}

func (h handler) processGroupReq(c *gin.Context) (groupReq, error) {
	ctx := c.Request.Context()

	var req groupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "class.http.processGroupReq: %v", err)
		return groupReq{}, errWrongBody
	}

	if err := req.validate(); err != nil {
		h.l.Warnf(ctx, "class.http.processGroupReq.validate: %v", err)
		return groupReq{}, err
	}

	return req, nil
}

func (h handler) processMemberReq(c *gin.Context) (memberReq, error) {
	ctx := c.Request.Context()

	var req memberReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "class.http.processMemberReq: %v", err)
		return memberReq{}, errWrongBody
	}

	if err := req.validate(); err != nil {
		h.l.Warnf(ctx, "class.http.processMemberReq.validate: %v", err)
		return memberReq{}, err
	}

	return req, nil
}
