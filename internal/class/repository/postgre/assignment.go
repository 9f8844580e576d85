package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	repo "unibot/internal/class/repository"
	"unibot/internal/model"
)

const assignmentColumns = `id, class_id, schedule_id, title, description, due_at, created_at, updated_at`

func scanAssignment(row interface{ Scan(...any) error }) (model.Assignment, error) {
	var (
		asg         model.Assignment
		scheduleID  sql.NullString
		description sql.NullString
		dueAt       sql.NullTime
	)
	err := row.Scan(
		&asg.ID, &asg.ClassID, &scheduleID, &asg.Title, &description,
		&dueAt, &asg.CreatedAt, &asg.UpdatedAt,
	)
	if err != nil {
		return model.Assignment{}, err
	}
	asg.ScheduleID = scheduleID.String
	asg.Description = description.String
	if dueAt.Valid {
		t := dueAt.Time
		asg.DueAt = &t
	}
	return asg, nil
}

// CreateAssignment inserts a new assignment row and returns the created
// entity.
func (r *implRepository) CreateAssignment(ctx context.Context, opt repo.CreateAssignmentOptions) (model.Assignment, error) {
	query := fmt.Sprintf(`
		INSERT INTO assignments (id, class_id, schedule_id, title, description, due_at, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''), $6, NOW(), NOW())
		RETURNING %s`, assignmentColumns)

	asg, err := scanAssignment(r.db.QueryRowContext(ctx, query,
		uuid.New().String(), opt.ClassID, opt.ScheduleID, opt.Title, opt.Description, opt.DueAt,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateAssignment"), err)
		return model.Assignment{}, repo.ErrFailedToInsert
	}
	return asg, nil
}

// GetOneAssignment retrieves an assignment by ID. Returns a zero-value
// Assignment when not found.
func (r *implRepository) GetOneAssignment(ctx context.Context, id string) (model.Assignment, error) {
	query := fmt.Sprintf(`SELECT %s FROM assignments WHERE id = $1`, assignmentColumns)

	asg, err := scanAssignment(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return model.Assignment{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneAssignment"), err)
		return model.Assignment{}, repo.ErrFailedToGet
	}
	return asg, nil
}

// ListAssignments returns assignments with the linked schedule joined,
// ordered by deadline (undated last) then recency.
func (r *implRepository) ListAssignments(ctx context.Context, opt repo.ListAssignmentsOptions) ([]model.Assignment, error) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ClassID != "" {
		conditions = append(conditions, fmt.Sprintf("a.class_id = $%d", idx))
		args = append(args, opt.ClassID)
		idx++
	}
	if opt.Search != "" {
		pattern := "%" + opt.Search + "%"
		conditions = append(conditions, fmt.Sprintf(
			"(a.title ILIKE $%d OR a.description ILIKE $%d OR s.title ILIKE $%d)", idx, idx, idx))
		args = append(args, pattern)
		idx++
	}
	if opt.DueFrom != nil {
		conditions = append(conditions, fmt.Sprintf("a.due_at >= $%d", idx))
		args = append(args, *opt.DueFrom)
		idx++
	}
	if opt.DueTo != nil {
		conditions = append(conditions, fmt.Sprintf("a.due_at <= $%d", idx))
		args = append(args, *opt.DueTo)
		idx++
	}
	if opt.ScheduleDay != "" {
		conditions = append(conditions, fmt.Sprintf("s.day_of_week = $%d", idx))
		args = append(args, string(opt.ScheduleDay))
		idx++
	}
	if len(conditions) == 0 {
		conditions = append(conditions, "1=1")
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.class_id, a.schedule_id, a.title, a.description, a.due_at, a.created_at, a.updated_at,
		       s.id, s.title, s.day_of_week, s.start_time, s.end_time
		FROM assignments a
		LEFT JOIN schedules s ON s.id = a.schedule_id
		WHERE %s
		ORDER BY a.due_at ASC NULLS LAST, a.created_at DESC`,
		strings.Join(conditions, " AND "))
	if opt.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", idx)
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListAssignments"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var assignments []model.Assignment
	for rows.Next() {
		var (
			asg         model.Assignment
			scheduleID  sql.NullString
			description sql.NullString
			dueAt       sql.NullTime
			schID       sql.NullString
			schTitle    sql.NullString
			schDay      sql.NullString
			schStart    sql.NullString
			schEnd      sql.NullString
		)
		err := rows.Scan(
			&asg.ID, &asg.ClassID, &scheduleID, &asg.Title, &description, &dueAt, &asg.CreatedAt, &asg.UpdatedAt,
			&schID, &schTitle, &schDay, &schStart, &schEnd,
		)
		if err != nil {
			return nil, repo.ErrFailedToList
		}

		asg.ScheduleID = scheduleID.String
		asg.Description = description.String
		if dueAt.Valid {
			t := dueAt.Time
			asg.DueAt = &t
		}
		if schID.Valid {
			asg.Schedule = &model.Schedule{
				ID:        schID.String,
				Title:     schTitle.String,
				DayOfWeek: model.Weekday(schDay.String),
				StartTime: schStart.String,
				EndTime:   schEnd.String,
			}
		}
		assignments = append(assignments, asg)
	}
	return assignments, nil
}

// UpdateAssignment updates an assignment by ID and returns the updated
// entity.
func (r *implRepository) UpdateAssignment(ctx context.Context, opt repo.UpdateAssignmentOptions) (model.Assignment, error) {
	query := fmt.Sprintf(`
		UPDATE assignments
		SET schedule_id = NULLIF($1, ''), title = $2, description = NULLIF($3, ''), due_at = $4, updated_at = $5
		WHERE id = $6
		RETURNING %s`, assignmentColumns)

	asg, err := scanAssignment(r.db.QueryRowContext(ctx, query,
		opt.ScheduleID, opt.Title, opt.Description, opt.DueAt, time.Now(), opt.ID,
	))
	if err == sql.ErrNoRows {
		return model.Assignment{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateAssignment"), err)
		return model.Assignment{}, repo.ErrFailedToUpdate
	}
	return asg, nil
}

// DeleteAssignment removes an assignment by ID.
func (r *implRepository) DeleteAssignment(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM assignments WHERE id = $1`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteAssignment"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
