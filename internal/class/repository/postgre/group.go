package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	repo "unibot/internal/class/repository"
	"unibot/internal/model"
)

const groupColumns = `id, schedule_id, name, hints, created_at, updated_at`

func scanGroup(row interface{ Scan(...any) error }) (model.Group, error) {
	var (
		grp   model.Group
		hints pq.StringArray
	)
	if err := row.Scan(&grp.ID, &grp.ScheduleID, &grp.Name, &hints, &grp.CreatedAt, &grp.UpdatedAt); err != nil {
		return model.Group{}, err
	}
	grp.Hints = hints
	return grp, nil
}

// CreateGroup inserts a new work group row and returns the created entity.
func (r *implRepository) CreateGroup(ctx context.Context, opt repo.CreateGroupOptions) (model.Group, error) {
	query := fmt.Sprintf(`
		INSERT INTO groups (id, schedule_id, name, hints, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING %s`, groupColumns)

	grp, err := scanGroup(r.db.QueryRowContext(ctx, query,
		uuid.New().String(), opt.ScheduleID, opt.Name, pq.Array(opt.Hints),
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateGroup"), err)
		return model.Group{}, repo.ErrFailedToInsert
	}
	return grp, nil
}

// GetOneGroup retrieves a group by ID. Returns a zero-value Group when
// not found.
func (r *implRepository) GetOneGroup(ctx context.Context, id string) (model.Group, error) {
	query := fmt.Sprintf(`SELECT %s FROM groups WHERE id = $1`, groupColumns)

	grp, err := scanGroup(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return model.Group{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneGroup"), err)
		return model.Group{}, repo.ErrFailedToGet
	}
	return grp, nil
}

// ListGroups returns groups with their schedule joined and member counts,
// oldest first. Filtering runs through the parent schedule's class.
func (r *implRepository) ListGroups(ctx context.Context, opt repo.ListGroupsOptions) ([]model.Group, error) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ClassID != "" {
		conditions = append(conditions, fmt.Sprintf("s.class_id = $%d", idx))
		args = append(args, opt.ClassID)
		idx++
	}
	if opt.ScheduleDay != "" {
		conditions = append(conditions, fmt.Sprintf("s.day_of_week = $%d", idx))
		args = append(args, string(opt.ScheduleDay))
		idx++
	}
	if opt.Search != "" {
		pattern := "%" + opt.Search + "%"
		clause := fmt.Sprintf("(g.name ILIKE $%d OR s.title ILIKE $%d", idx, idx)
		if opt.MatchMembers {
			clause += fmt.Sprintf(" OR EXISTS (SELECT 1 FROM group_members m WHERE m.group_id = g.id AND m.name ILIKE $%d)", idx)
		}
		clause += ")"
		conditions = append(conditions, clause)
		args = append(args, pattern)
		idx++
	}
	if len(conditions) == 0 {
		conditions = append(conditions, "1=1")
	}

	query := fmt.Sprintf(`
		SELECT g.id, g.schedule_id, g.name, g.hints, g.created_at, g.updated_at,
		       s.id, s.title, s.day_of_week, s.start_time, s.end_time,
		       (SELECT COUNT(*) FROM group_members m WHERE m.group_id = g.id)
		FROM groups g
		JOIN schedules s ON s.id = g.schedule_id
		WHERE %s
		ORDER BY g.created_at ASC`,
		strings.Join(conditions, " AND "))
	if opt.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", idx)
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListGroups"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var groups []model.Group
	for rows.Next() {
		var (
			grp   model.Group
			hints pq.StringArray
			sch   model.Schedule
		)
		err := rows.Scan(
			&grp.ID, &grp.ScheduleID, &grp.Name, &hints, &grp.CreatedAt, &grp.UpdatedAt,
			&sch.ID, &sch.Title, &sch.DayOfWeek, &sch.StartTime, &sch.EndTime,
			&grp.MemberCount,
		)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		grp.Hints = hints
		grp.Schedule = &sch
		groups = append(groups, grp)
	}

	if opt.WithMembers && len(groups) > 0 {
		if err := r.loadMembers(ctx, groups); err != nil {
			return nil, err
		}
	}
	return groups, nil
}

// loadMembers attaches member lists to the given groups in one query.
func (r *implRepository) loadMembers(ctx context.Context, groups []model.Group) error {
	ids := make([]string, len(groups))
	index := make(map[string]int, len(groups))
	for i, grp := range groups {
		ids[i] = grp.ID
		index[grp.ID] = i
	}

	const query = `
		SELECT id, group_id, name, COALESCE(phone, ''), created_at
		FROM group_members
		WHERE group_id = ANY($1)
		ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("loadMembers"), err)
		return repo.ErrFailedToList
	}
	defer rows.Close()

	for rows.Next() {
		var member model.GroupMember
		if err := rows.Scan(&member.ID, &member.GroupID, &member.Name, &member.Phone, &member.CreatedAt); err != nil {
			return repo.ErrFailedToList
		}
		if i, ok := index[member.GroupID]; ok {
			groups[i].Members = append(groups[i].Members, member)
		}
	}
	return nil
}

// UpdateGroup updates a group by ID and returns the updated entity.
func (r *implRepository) UpdateGroup(ctx context.Context, opt repo.UpdateGroupOptions) (model.Group, error) {
	query := fmt.Sprintf(`
		UPDATE groups
		SET schedule_id = $1, name = $2, hints = $3, updated_at = $4
		WHERE id = $5
		RETURNING %s`, groupColumns)

	grp, err := scanGroup(r.db.QueryRowContext(ctx, query,
		opt.ScheduleID, opt.Name, pq.Array(opt.Hints), time.Now(), opt.ID,
	))
	if err == sql.ErrNoRows {
		return model.Group{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateGroup"), err)
		return model.Group{}, repo.ErrFailedToUpdate
	}
	return grp, nil
}

// DeleteGroup removes a group by ID.
func (r *implRepository) DeleteGroup(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteGroup"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// AddGroupMember inserts a member row and returns the created entity.
func (r *implRepository) AddGroupMember(ctx context.Context, opt repo.AddGroupMemberOptions) (model.GroupMember, error) {
	const query = `
		INSERT INTO group_members (id, group_id, name, phone, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NOW())
		RETURNING id, group_id, name, COALESCE(phone, ''), created_at`

	var member model.GroupMember
	err := r.db.QueryRowContext(ctx, query, uuid.New().String(), opt.GroupID, opt.Name, opt.Phone).Scan(
		&member.ID, &member.GroupID, &member.Name, &member.Phone, &member.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AddGroupMember"), err)
		return model.GroupMember{}, repo.ErrFailedToInsert
	}
	return member, nil
}

// GetOneGroupMember retrieves a member by ID. Returns a zero-value
// GroupMember when not found.
func (r *implRepository) GetOneGroupMember(ctx context.Context, id string) (model.GroupMember, error) {
	const query = `
		SELECT id, group_id, name, COALESCE(phone, ''), created_at
		FROM group_members WHERE id = $1`

	var member model.GroupMember
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&member.ID, &member.GroupID, &member.Name, &member.Phone, &member.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.GroupMember{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneGroupMember"), err)
		return model.GroupMember{}, repo.ErrFailedToGet
	}
	return member, nil
}

// UpdateGroupMember updates a member by ID and returns the updated entity.
func (r *implRepository) UpdateGroupMember(ctx context.Context, opt repo.UpdateGroupMemberOptions) (model.GroupMember, error) {
	const query = `
		UPDATE group_members
		SET name = $1, phone = NULLIF($2, '')
		WHERE id = $3
		RETURNING id, group_id, name, COALESCE(phone, ''), created_at`

	var member model.GroupMember
	err := r.db.QueryRowContext(ctx, query, opt.Name, opt.Phone, opt.ID).Scan(
		&member.ID, &member.GroupID, &member.Name, &member.Phone, &member.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.GroupMember{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateGroupMember"), err)
		return model.GroupMember{}, repo.ErrFailedToUpdate
	}
	return member, nil
}

// DeleteGroupMember removes a member by ID.
func (r *implRepository) DeleteGroupMember(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM group_members WHERE id = $1`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteGroupMember"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
