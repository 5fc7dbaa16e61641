package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sweetfm/backoffice/internal/backoffice/domain"
)

type showsRepo struct {
	db dbtx
}

const showColumns = `id, name, presenter, description, category, days_of_week, start_time, end_time, start_date, end_date, color, status, created_at, updated_at`

func scanShow(row interface{ Scan(...any) error }) (domain.Show, error) {
	var (
		s        domain.Show
		category string
		days     string
		endDate  sql.NullTime
		status   string
	)
	err := row.Scan(
		&s.ID, &s.Name, &s.Presenter, &s.Description, &category, &days,
		&s.StartTime, &s.EndTime, &s.StartDate, &endDate, &s.Color, &status,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return domain.Show{}, err
	}
	s.Category = domain.ShowCategory(category)
	s.DaysOfWeek = decodeWeekdays(days)
	s.EndDate = mapNullTimePtr(endDate)
	s.Status = domain.ShowStatus(status)
	return s, nil
}

func (r *showsRepo) CreateShow(ctx context.Context, s domain.Show) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO shows (id, name, presenter, description, category, days_of_week, start_time, end_time, start_date, end_date, color, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.Presenter, s.Description, string(s.Category),
		encodeWeekdays(s.DaysOfWeek), s.StartTime, s.EndTime, s.StartDate,
		mapOptionalTime(s.EndDate), s.Color, string(s.Status),
		s.CreatedAt, s.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *showsRepo) GetShowByID(ctx context.Context, id string) (domain.Show, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+showColumns+` FROM shows WHERE id = ?`, id)
	s, err := scanShow(row)
	if err != nil {
		return domain.Show{}, mapNotFound(err)
	}
	return s, nil
}

func (r *showsRepo) ListShows(ctx context.Context, status domain.ShowStatus) ([]domain.Show, error) {
	query := `SELECT ` + showColumns + ` FROM shows`
	args := []any{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY start_time, name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Show
	for rows.Next() {
		s, err := scanShow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *showsRepo) UpdateShow(ctx context.Context, s domain.Show) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE shows
		SET name = ?, presenter = ?, description = ?, category = ?, days_of_week = ?, start_time = ?, end_time = ?, start_date = ?, end_date = ?, color = ?, updated_at = ?
		WHERE id = ?`,
		s.Name, s.Presenter, s.Description, string(s.Category),
		encodeWeekdays(s.DaysOfWeek), s.StartTime, s.EndTime, s.StartDate,
		mapOptionalTime(s.EndDate), s.Color, time.Now().UTC(), s.ID,
	)
	return affectedOrNotFound(res, err)
}

func (r *showsRepo) UpdateShowStatus(ctx context.Context, id string, status domain.ShowStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE shows SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC(), id)
	return affectedOrNotFound(res, err)
}

func (r *showsRepo) DeleteShow(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM shows WHERE id = ?`, id)
	return affectedOrNotFound(res, err)
}
