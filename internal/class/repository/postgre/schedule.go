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

const scheduleColumns = `id, class_id, title, description, room, day_of_week, start_time, end_time, created_at, updated_at`

func scanSchedule(row interface{ Scan(...any) error }) (model.Schedule, error) {
	var (
		sch         model.Schedule
		description sql.NullString
		room        sql.NullString
	)
	err := row.Scan(
		&sch.ID, &sch.ClassID, &sch.Title, &description, &room,
		&sch.DayOfWeek, &sch.StartTime, &sch.EndTime, &sch.CreatedAt, &sch.UpdatedAt,
	)
	if err != nil {
		return model.Schedule{}, err
	}
	sch.Description = description.String
	sch.Room = room.String
	return sch, nil
}

// CreateSchedule inserts a new schedule row and returns the created entity.
func (r *implRepository) CreateSchedule(ctx context.Context, opt repo.CreateScheduleOptions) (model.Schedule, error) {
	query := fmt.Sprintf(`
		INSERT INTO schedules (id, class_id, title, description, room, day_of_week, start_time, end_time, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8, NOW(), NOW())
		RETURNING %s`, scheduleColumns)

	sch, err := scanSchedule(r.db.QueryRowContext(ctx, query,
		uuid.New().String(), opt.ClassID, opt.Title, opt.Description, opt.Room,
		string(opt.DayOfWeek), opt.StartTime, opt.EndTime,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateSchedule"), err)
		return model.Schedule{}, repo.ErrFailedToInsert
	}
	return sch, nil
}

// GetOneSchedule retrieves a schedule by ID. Returns a zero-value
// Schedule when not found.
func (r *implRepository) GetOneSchedule(ctx context.Context, id string) (model.Schedule, error) {
	query := fmt.Sprintf(`SELECT %s FROM schedules WHERE id = $1`, scheduleColumns)

	sch, err := scanSchedule(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return model.Schedule{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneSchedule"), err)
		return model.Schedule{}, repo.ErrFailedToGet
	}
	return sch, nil
}

// ListSchedules returns schedules ordered by weekday then start time.
func (r *implRepository) ListSchedules(ctx context.Context, opt repo.ListSchedulesOptions) ([]model.Schedule, error) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ClassID != "" {
		conditions = append(conditions, fmt.Sprintf("class_id = $%d", idx))
		args = append(args, opt.ClassID)
		idx++
	}
	if opt.DayOfWeek != "" {
		conditions = append(conditions, fmt.Sprintf("day_of_week = $%d", idx))
		args = append(args, string(opt.DayOfWeek))
		idx++
	}
	if opt.Query != "" {
		pattern := "%" + opt.Query + "%"
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR description ILIKE $%d OR room ILIKE $%d)", idx, idx, idx))
		args = append(args, pattern)
		idx++
	}
	if len(conditions) == 0 {
		conditions = append(conditions, "1=1")
	}

	query := fmt.Sprintf(`
		SELECT %s FROM schedules
		WHERE %s
		ORDER BY array_position(ARRAY['MONDAY','TUESDAY','WEDNESDAY','THURSDAY','FRIDAY','SATURDAY','SUNDAY'], day_of_week), start_time ASC`,
		scheduleColumns, strings.Join(conditions, " AND "))
	if opt.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", idx)
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSchedules"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var schedules []model.Schedule
	for rows.Next() {
		sch, err := scanSchedule(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		schedules = append(schedules, sch)
	}
	return schedules, nil
}

// UpdateSchedule updates a schedule by ID and returns the updated entity.
func (r *implRepository) UpdateSchedule(ctx context.Context, opt repo.UpdateScheduleOptions) (model.Schedule, error) {
	query := fmt.Sprintf(`
		UPDATE schedules
		SET title = $1, description = NULLIF($2, ''), room = NULLIF($3, ''),
		    day_of_week = $4, start_time = $5, end_time = $6, updated_at = $7
		WHERE id = $8
		RETURNING %s`, scheduleColumns)

	sch, err := scanSchedule(r.db.QueryRowContext(ctx, query,
		opt.Title, opt.Description, opt.Room, string(opt.DayOfWeek),
		opt.StartTime, opt.EndTime, time.Now(), opt.ID,
	))
	if err == sql.ErrNoRows {
		return model.Schedule{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateSchedule"), err)
		return model.Schedule{}, repo.ErrFailedToUpdate
	}
	return sch, nil
}

// DeleteSchedule removes a schedule by ID.
func (r *implRepository) DeleteSchedule(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = $1`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteSchedule"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
