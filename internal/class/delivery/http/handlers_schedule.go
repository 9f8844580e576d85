package http

import (
	"github.com/gin-gonic/gin"

	"unibot/internal/class"
	"unibot/internal/model"
	"unibot/pkg/response"
)

// CreateSchedule godoc
// @Summary Create a schedule
// @Tags Schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param classId path string true "Class ID"
// @Param body body scheduleReq true "Schedule payload"
// @Success 200 {object} scheduleResp
// @Router /api/v1/classes/{classId}/schedules [post]
func (h handler) CreateSchedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.CreateSchedule(ctx, class.CreateScheduleInput{
		ClassID:     c.Param("classId"),
		Title:       req.Title,
		Description: req.Description,
		Room:        req.Room,
		DayOfWeek:   model.Weekday(req.DayOfWeek),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	})
	if err != nil {
		h.l.Errorf(ctx, "class.http.CreateSchedule: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newScheduleResp(out.Schedule))
}

// ListSchedules godoc
// @Summary List schedules of a class
// @Tags Schedule
// @Produce json
// @Security BearerAuth
// @Param classId path string true "Class ID"
// @Success 200 {object} listSchedulesResp
// @Router /api/v1/classes/{classId}/schedules [get]
func (h handler) ListSchedules(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.ListSchedules(ctx, class.ListSchedulesInput{
		ClassID: c.Param("classId"),
	})
	if err != nil {
		h.l.Errorf(ctx, "class.http.ListSchedules: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newListSchedulesResp(out))
}

// UpdateSchedule godoc
// @Summary Update a schedule
// @Tags Schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param scheduleId path string true "Schedule ID"
// @Param body body scheduleReq true "Schedule payload"
// @Success 200 {object} scheduleResp
// @Router /api/v1/schedules/{scheduleId} [put]
func (h handler) UpdateSchedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.UpdateSchedule(ctx, class.UpdateScheduleInput{
		ID:          c.Param("scheduleId"),
		Title:       req.Title,
		Description: req.Description,
		Room:        req.Room,
		DayOfWeek:   model.Weekday(req.DayOfWeek),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	})
	if err != nil {
		h.l.Errorf(ctx, "class.http.UpdateSchedule: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newScheduleResp(out.Schedule))
}

// DeleteSchedule godoc
// @Summary Delete a schedule
// @Tags Schedule
// @Produce json
// @Security BearerAuth
// @Param scheduleId path string true "Schedule ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/schedules/{scheduleId} [delete]
func (h handler) DeleteSchedule(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteSchedule(ctx, c.Param("scheduleId")); err != nil {
		h.l.Errorf(ctx, "class.http.DeleteSchedule: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
