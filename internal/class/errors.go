package class

import "errors"

var (
	ErrClassNotFound      = errors.New("class not found")
	ErrScheduleNotFound   = errors.New("schedule not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrGroupNotFound      = errors.New("group not found")
	ErrMemberNotFound     = errors.New("group member not found")
)
