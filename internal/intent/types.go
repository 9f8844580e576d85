package intent

import "unibot/pkg/datemath"

// Name identifies a classified user goal. The set is open: new intents
// appear by adding phrase table entries, not code.
type Name string

const (
	NameGreetings    Name = "greetings"
	NameHelp         Name = "help"
	NameRegister     Name = "register"
	NameSchedule     Name = "schedule"
	NameAssignment   Name = "assignment"
	NameGroup        Name = "group"
	NameGroupMembers Name = "groupMembers"
	NameReminder     Name = "reminder"
	NameAbout        Name = "about"
	NameThanks       Name = "thanks"
)

// Filters are the structured parameters extracted from the text around a
// matched phrase. At most one of RelativeDay/Day is set, and at most one
// of the free-text slots. JSON tags match the internal API wire format.
type Filters struct {
	RelativeDay datemath.RelativeDay `json:"relativeDay,omitempty"`
	Day         string               `json:"day,omitempty"` // raw weekday keyword as typed
	Query       string               `json:"query,omitempty"`
	Subject     string               `json:"subject,omitempty"`
	Group       string               `json:"group,omitempty"`
	GroupQuery  string               `json:"groupQuery,omitempty"`
}

// Empty reports whether no filter field is set.
func (f Filters) Empty() bool {
	return f.RelativeDay == "" && f.Day == "" && f.Query == "" &&
		f.Subject == "" && f.Group == "" && f.GroupQuery == ""
}

// Detected is the result of classifying one inbound message. It is
// immutable and lives only for the duration of a single routing call.
type Detected struct {
	Name          Name     `json:"name"`
	Confidence    float64  `json:"confidence"`
	MatchedPhrase string   `json:"matchedPhrase"`
	Filters       *Filters `json:"filters,omitempty"`
}
