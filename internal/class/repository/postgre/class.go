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

const classColumns = `id, name, group_jid, created_at, updated_at`

func scanClass(row interface{ Scan(...any) error }) (model.Class, error) {
	var (
		cls      model.Class
		groupJID sql.NullString
	)
	if err := row.Scan(&cls.ID, &cls.Name, &groupJID, &cls.CreatedAt, &cls.UpdatedAt); err != nil {
		return model.Class{}, err
	}
	cls.GroupJID = groupJID.String
	return cls, nil
}

// CreateClass inserts a new class row and returns the created entity.
func (r *implRepository) CreateClass(ctx context.Context, opt repo.CreateClassOptions) (model.Class, error) {
	query := fmt.Sprintf(`
		INSERT INTO classes (id, name, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING %s`, classColumns)

	cls, err := scanClass(r.db.QueryRowContext(ctx, query, uuid.New().String(), opt.Name))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateClass"), err)
		return model.Class{}, repo.ErrFailedToInsert
	}
	return cls, nil
}

// GetOneClass retrieves a single class by the provided filters (AND
// condition). Returns a zero-value Class (ID == "") when not found.
func (r *implRepository) GetOneClass(ctx context.Context, opt repo.GetOneClassOptions) (model.Class, error) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.GroupJID != "" {
		conditions = append(conditions, fmt.Sprintf("group_jid = $%d", idx))
		args = append(args, opt.GroupJID)
	}
	if len(conditions) == 0 {
		conditions = append(conditions, "1=1")
	}

	query := fmt.Sprintf(`SELECT %s FROM classes WHERE %s LIMIT 1`,
		classColumns, strings.Join(conditions, " AND "))

	cls, err := scanClass(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Class{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneClass"), err)
		return model.Class{}, repo.ErrFailedToGet
	}
	return cls, nil
}

// ListClasses returns a paginated list of classes and the total count.
func (r *implRepository) ListClasses(ctx context.Context, opt repo.ListClassesOptions) ([]model.Class, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM classes`).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListClasses"), err)
		return nil, 0, repo.ErrFailedToList
	}

	parts := []string{"ORDER BY created_at ASC"}
	var args []any
	idx := 1
	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	query := fmt.Sprintf(`SELECT %s FROM classes %s`, classColumns, strings.Join(parts, " "))
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListClasses"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var classes []model.Class
	for rows.Next() {
		cls, err := scanClass(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		classes = append(classes, cls)
	}
	return classes, total, nil
}

// UpdateClass updates a class by ID and returns the updated entity.
// Returns a zero-value Class when the ID does not exist.
func (r *implRepository) UpdateClass(ctx context.Context, opt repo.UpdateClassOptions) (model.Class, error) {
	sets := []string{"name = $1", "updated_at = $2"}
	args := []any{opt.Name, time.Now()}
	idx := 3

	if opt.GroupJID != nil {
		if *opt.GroupJID == "" {
			sets = append(sets, "group_jid = NULL")
		} else {
			sets = append(sets, fmt.Sprintf("group_jid = $%d", idx))
			args = append(args, *opt.GroupJID)
			idx++
		}
	}

	args = append(args, opt.ID)
	query := fmt.Sprintf(`UPDATE classes SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), idx, classColumns)

	cls, err := scanClass(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Class{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateClass"), err)
		return model.Class{}, repo.ErrFailedToUpdate
	}
	return cls, nil
}

// DeleteClass removes a class by ID; children go with it via FK cascade.
func (r *implRepository) DeleteClass(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM classes WHERE id = $1`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteClass"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// ClaimUnlinkedClass links the oldest class without a group to the given
// JID. The subquery plus the WHERE guard keeps the claim atomic when two
// groups register at once.
func (r *implRepository) ClaimUnlinkedClass(ctx context.Context, groupJID string) (model.Class, error) {
	query := fmt.Sprintf(`
		UPDATE classes
		SET group_jid = $1, updated_at = NOW()
		WHERE id = (
			SELECT id FROM classes
			WHERE group_jid IS NULL
			ORDER BY created_at ASC
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING %s`, classColumns)

	cls, err := scanClass(r.db.QueryRowContext(ctx, query, groupJID))
	if err == sql.ErrNoRows {
		return model.Class{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ClaimUnlinkedClass"), err)
		return model.Class{}, repo.ErrFailedToUpdate
	}
	return cls, nil
}

// CountEntities returns dashboard totals in a single round trip.
func (r *implRepository) CountEntities(ctx context.Context) (repo.EntityCounts, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM classes),
			(SELECT COUNT(*) FROM schedules),
			(SELECT COUNT(*) FROM assignments),
			(SELECT COUNT(*) FROM groups),
			(SELECT COUNT(*) FROM group_members)`

	var counts repo.EntityCounts
	err := r.db.QueryRowContext(ctx, query).Scan(
		&counts.Classes, &counts.Schedules, &counts.Assignments, &counts.Groups, &counts.Members,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountEntities"), err)
		return repo.EntityCounts{}, repo.ErrFailedToCount
	}
	return counts, nil
}
