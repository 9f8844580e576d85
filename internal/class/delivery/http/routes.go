package http

import (
	"github.com/gin-gonic/gin"

	"unibot/internal/middleware"
)

// RegisterRoutes maps the admin dashboard API onto Handler methods.
// Every route requires the admin bearer token.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.GET("/dashboard", mw.AdminAuth(), h.Dashboard)

	classes := rg.Group("/classes")
	{
		classes.POST("", mw.AdminAuth(), h.CreateClass)
		classes.GET("", mw.AdminAuth(), h.ListClasses)
		classes.GET("/:classId", mw.AdminAuth(), h.DetailClass)
		classes.PUT("/:classId", mw.AdminAuth(), h.UpdateClass)
		classes.DELETE("/:classId", mw.AdminAuth(), h.DeleteClass)

		classes.POST("/:classId/schedules", mw.AdminAuth(), h.CreateSchedule)
		classes.GET("/:classId/schedules", mw.AdminAuth(), h.ListSchedules)
		classes.POST("/:classId/assignments", mw.AdminAuth(), h.CreateAssignment)
		classes.GET("/:classId/assignments", mw.AdminAuth(), h.ListAssignments)
		classes.GET("/:classId/groups", mw.AdminAuth(), h.ListGroups)
	}

	schedules := rg.Group("/schedules")
	{
		schedules.PUT("/:scheduleId", mw.AdminAuth(), h.UpdateSchedule)
		schedules.DELETE("/:scheduleId", mw.AdminAuth(), h.DeleteSchedule)
	}

	assignments := rg.Group("/assignments")
	{
		assignments.PUT("/:assignmentId", mw.AdminAuth(), h.UpdateAssignment)
		assignments.DELETE("/:assignmentId", mw.AdminAuth(), h.DeleteAssignment)
	}

	groups := rg.Group("/groups")
	{
		groups.POST("", mw.AdminAuth(), h.CreateGroup)
		groups.PUT("/:groupId", mw.AdminAuth(), h.UpdateGroup)
		groups.DELETE("/:groupId", mw.AdminAuth(), h.DeleteGroup)
		groups.POST("/:groupId/members", mw.AdminAuth(), h.AddGroupMember)
	}

	members := rg.Group("/group-members")
	{
		members.PUT("/:memberId", mw.AdminAuth(), h.UpdateGroupMember)
		members.DELETE("/:memberId", mw.AdminAuth(), h.DeleteGroupMember)
	}
}
