package model

import "time"

// Class is a campus class that owns schedules, assignments, and groups.
// GroupJID is set once an admin links the class to a WhatsApp group.
type Class struct {
	ID        string
	Name      string
	GroupJID  string // empty until registered
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Schedule is a recurring weekly class session.
// StartTime and EndTime are 24h "HH:MM" strings.
type Schedule struct {
	ID          string
	ClassID     string
	Title       string
	Description string
	Room        string
	DayOfWeek   Weekday
	StartTime   string
	EndTime     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Assignment is a task with an optional deadline, optionally tied to a
// schedule (the course it belongs to).
type Assignment struct {
	ID          string
	ClassID     string
	ScheduleID  string // optional
	Title       string
	Description string
	DueAt       *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Schedule is populated by list queries that join the parent schedule.
	Schedule *Schedule
}

// Group is a student work group attached to a schedule. Hints are extra
// keywords admins add to help chat lookups find the group.
type Group struct {
	ID         string
	ScheduleID string
	Name       string
	Hints      []string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Populated by list queries. MemberCount is always set; Members only
	// when the caller asked for them.
	Schedule    *Schedule
	Members     []GroupMember
	MemberCount int
}

// GroupMember is a student inside a work group.
type GroupMember struct {
	ID        string
	GroupID   string
	Name      string
	Phone     string // optional, normalized international format
	CreatedAt time.Time
}
