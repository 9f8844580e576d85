package http

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"unibot/internal/class"
	"unibot/internal/model"
)

var (
	timePattern  = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	phonePattern = regexp.MustCompile(`^\+?\d{9,15}$`)
)

var (
	errTitleRequired    = errors.New("judul wajib diisi")
	errTitleTooLong     = errors.New("judul terlalu panjang")
	errNameRequired     = errors.New("nama wajib diisi")
	errNameTooLong      = errors.New("nama terlalu panjang")
	errDescTooLong      = errors.New("deskripsi terlalu panjang")
	errRoomTooLong      = errors.New("nama ruangan maksimal 64 karakter")
	errInvalidWeekday   = errors.New("hari tidak valid")
	errInvalidTime      = errors.New("waktu harus dalam format 24 jam (HH:MM)")
	errEndBeforeStart   = errors.New("jam selesai harus setelah jam mulai")
	errInvalidDueAt     = errors.New("tanggal tenggat tidak valid")
	errInvalidPhone     = errors.New("nomor telepon harus 9-15 digit dan dapat diawali +")
	errTooManyHints     = errors.New("maksimal 10 hint")
	errHintTooLong      = errors.New("hint maksimal 48 karakter")
	errScheduleRequired = errors.New("pilih jadwal mata kuliah")
)

// --- Class requests ---

type classReq struct {
	Name     string  `json:"name"`
	GroupJID *string `json:"group_jid"`
}

func (r classReq) validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errNameRequired
	}
	if len(name) > 160 {
		return errNameTooLong
	}
	return nil
}

type listClassesReq struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

func (r listClassesReq) toInput() class.ListClassesInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return class.ListClassesInput{Limit: limit, Offset: offset}
}

// --- Schedule requests ---

type scheduleReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Room        string `json:"room"`
	DayOfWeek   string `json:"day_of_week"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

func (r scheduleReq) validate() error {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return errTitleRequired
	}
	if len(title) > 120 {
		return errTitleTooLong
	}
	if len(r.Description) > 280 {
		return errDescTooLong
	}
	if len(r.Room) > 64 {
		return errRoomTooLong
	}
	if !model.Weekday(r.DayOfWeek).Valid() {
		return errInvalidWeekday
	}
	if !timePattern.MatchString(r.StartTime) || !timePattern.MatchString(r.EndTime) {
		return errInvalidTime
	}
	// "HH:MM" strings compare correctly as text.
	if r.EndTime <= r.StartTime {
		return errEndBeforeStart
	}
	return nil
}

// --- Assignment requests ---

type assignmentReq struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ScheduleID  string  `json:"schedule_id"`
	DueAt       *string `json:"due_at"`
}

func (r assignmentReq) validate() error {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return errTitleRequired
	}
	if len(title) > 160 {
		return errTitleTooLong
	}
	if len(r.Description) > 500 {
		return errDescTooLong
	}
	if _, err := r.dueAt(); err != nil {
		return err
	}
	return nil
}

func (r assignmentReq) dueAt() (*time.Time, error) {
	if r.DueAt == nil || *r.DueAt == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *r.DueAt)
	if err != nil {
		return nil, errInvalidDueAt
	}
	return &t, nil
}

// --- Group requests ---

type groupReq struct {
	Name       string   `json:"name"`
	ScheduleID string   `json:"schedule_id"`
	Hints      []string `json:"hints"`
}

func (r groupReq) validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errNameRequired
	}
	if len(name) > 160 {
		return errNameTooLong
	}
	if r.ScheduleID == "" {
		return errScheduleRequired
	}
	if len(r.Hints) > 10 {
		return errTooManyHints
	}
	for _, hint := range r.Hints {
		if len(strings.TrimSpace(hint)) > 48 {
			return errHintTooLong
		}
	}
	return nil
}

type memberReq struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (r memberReq) validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errNameRequired
	}
	if len(name) > 160 {
		return errNameTooLong
	}
	if phone := strings.TrimSpace(r.Phone); phone != "" && !phonePattern.MatchString(phone) {
		return errInvalidPhone
	}
	return nil
}

// --- Response DTOs ---

type classResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	GroupJID  string    `json:"group_jid,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newClassResp(cls model.Class) classResp {
	return classResp{
		ID:        cls.ID,
		Name:      cls.Name,
		GroupJID:  cls.GroupJID,
		CreatedAt: cls.CreatedAt,
		UpdatedAt: cls.UpdatedAt,
	}
}

type scheduleResp struct {
	ID          string    `json:"id"`
	ClassID     string    `json:"class_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Room        string    `json:"room,omitempty"`
	DayOfWeek   string    `json:"day_of_week"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newScheduleResp(sch model.Schedule) scheduleResp {
	return scheduleResp{
		ID:          sch.ID,
		ClassID:     sch.ClassID,
		Title:       sch.Title,
		Description: sch.Description,
		Room:        sch.Room,
		DayOfWeek:   string(sch.DayOfWeek),
		StartTime:   sch.StartTime,
		EndTime:     sch.EndTime,
		CreatedAt:   sch.CreatedAt,
		UpdatedAt:   sch.UpdatedAt,
	}
}

type assignmentResp struct {
	ID          string        `json:"id"`
	ClassID     string        `json:"class_id"`
	ScheduleID  string        `json:"schedule_id,omitempty"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	DueAt       *time.Time    `json:"due_at,omitempty"`
	Schedule    *scheduleResp `json:"schedule,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func newAssignmentResp(asg model.Assignment) assignmentResp {
	resp := assignmentResp{
		ID:          asg.ID,
		ClassID:     asg.ClassID,
		ScheduleID:  asg.ScheduleID,
		Title:       asg.Title,
		Description: asg.Description,
		DueAt:       asg.DueAt,
		CreatedAt:   asg.CreatedAt,
		UpdatedAt:   asg.UpdatedAt,
	}
	if asg.Schedule != nil {
		sch := newScheduleResp(*asg.Schedule)
		resp.Schedule = &sch
	}
	return resp
}

type memberResp struct {
	ID        string    `json:"id"`
	GroupID   string    `json:"group_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func newMemberResp(member model.GroupMember) memberResp {
	return memberResp{
		ID:        member.ID,
		GroupID:   member.GroupID,
		Name:      member.Name,
		Phone:     member.Phone,
		CreatedAt: member.CreatedAt,
	}
}

type groupResp struct {
	ID          string        `json:"id"`
	ScheduleID  string        `json:"schedule_id"`
	Name        string        `json:"name"`
	Hints       []string      `json:"hints,omitempty"`
	Schedule    *scheduleResp `json:"schedule,omitempty"`
	Members     []memberResp  `json:"members,omitempty"`
	MemberCount int           `json:"member_count"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func newGroupResp(grp model.Group) groupResp {
	resp := groupResp{
		ID:          grp.ID,
		ScheduleID:  grp.ScheduleID,
		Name:        grp.Name,
		Hints:       grp.Hints,
		MemberCount: grp.MemberCount,
		CreatedAt:   grp.CreatedAt,
		UpdatedAt:   grp.UpdatedAt,
	}
	if grp.Schedule != nil {
		sch := newScheduleResp(*grp.Schedule)
		resp.Schedule = &sch
	}
	for _, member := range grp.Members {
		resp.Members = append(resp.Members, newMemberResp(member))
	}
	if resp.MemberCount == 0 {
		resp.MemberCount = len(resp.Members)
	}
	return resp
}

type listClassesResp struct {
	Items  []classResp `json:"items"`
	Total  int         `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

func newListClassesResp(out class.ListClassesOutput) listClassesResp {
	resp := listClassesResp{
		Items:  make([]classResp, 0, len(out.Classes)),
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
	for _, cls := range out.Classes {
		resp.Items = append(resp.Items, newClassResp(cls))
	}
	return resp
}

type detailClassResp struct {
	Class       classResp        `json:"class"`
	Schedules   []scheduleResp   `json:"schedules"`
	Assignments []assignmentResp `json:"assignments"`
	Groups      []groupResp      `json:"groups"`
}

func newDetailClassResp(out class.DetailClassOutput) detailClassResp {
	resp := detailClassResp{
		Class:       newClassResp(out.Class),
		Schedules:   make([]scheduleResp, 0, len(out.Schedules)),
		Assignments: make([]assignmentResp, 0, len(out.Assignments)),
		Groups:      make([]groupResp, 0, len(out.Groups)),
	}
	for _, sch := range out.Schedules {
		resp.Schedules = append(resp.Schedules, newScheduleResp(sch))
	}
	for _, asg := range out.Assignments {
		resp.Assignments = append(resp.Assignments, newAssignmentResp(asg))
	}
	for _, grp := range out.Groups {
		resp.Groups = append(resp.Groups, newGroupResp(grp))
	}
	return resp
}

type listSchedulesResp struct {
	Items []scheduleResp `json:"items"`
}

func newListSchedulesResp(out class.ListSchedulesOutput) listSchedulesResp {
	resp := listSchedulesResp{Items: make([]scheduleResp, 0, len(out.Schedules))}
	for _, sch := range out.Schedules {
		resp.Items = append(resp.Items, newScheduleResp(sch))
	}
	return resp
}

type listAssignmentsResp struct {
	Items []assignmentResp `json:"items"`
}

func newListAssignmentsResp(out class.ListAssignmentsOutput) listAssignmentsResp {
	resp := listAssignmentsResp{Items: make([]assignmentResp, 0, len(out.Assignments))}
	for _, asg := range out.Assignments {
		resp.Items = append(resp.Items, newAssignmentResp(asg))
	}
	return resp
}

type listGroupsResp struct {
	Items []groupResp `json:"items"`
}

func newListGroupsResp(out class.ListGroupsOutput) listGroupsResp {
	resp := listGroupsResp{Items: make([]groupResp, 0, len(out.Groups))}
	for _, grp := range out.Groups {
		resp.Items = append(resp.Items, newGroupResp(grp))
	}
	return resp
}

type dashboardResp struct {
	Classes     int `json:"classes"`
	Schedules   int `json:"schedules"`
	Assignments int `json:"assignments"`
	Groups      int `json:"groups"`
	Members     int `json:"members"`
}
