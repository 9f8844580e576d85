package http

import (
	"github.com/gin-gonic/gin"

	"unibot/internal/class"
	"unibot/pkg/log"
)

// Handler exposes the admin dashboard endpoints.
type Handler interface {
	Dashboard(c *gin.Context)

	CreateClass(c *gin.Context)
	ListClasses(c *gin.Context)
	DetailClass(c *gin.Context)
	UpdateClass(c *gin.Context)
	DeleteClass(c *gin.Context)

	CreateSchedule(c *gin.Context)
	ListSchedules(c *gin.Context)
	UpdateSchedule(c *gin.Context)
	DeleteSchedule(c *gin.Context)

	CreateAssignment(c *gin.Context)
	ListAssignments(c *gin.Context)
	UpdateAssignment(c *gin.Context)
	DeleteAssignment(c *gin.Context)

	CreateGroup(c *gin.Context)
	ListGroups(c *gin.Context)
	UpdateGroup(c *gin.Context)
	DeleteGroup(c *gin.Context)
	AddGroupMember(c *gin.Context)
	UpdateGroupMember(c *gin.Context)
	DeleteGroupMember(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc class.UseCase
}

// New creates a new HTTP handler for the class domain.
func New(l log.Logger, uc class.UseCase) Handler {
	return handler{
		l:  l,
		uc: uc,
	}
}
