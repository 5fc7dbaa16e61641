package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sweetfm/backoffice/internal/backoffice/domain"
)

type leaveRequestsRepo struct {
	db dbtx
}

const leaveColumns = `id, employee_id, type, start_date, end_date, days, reason, status, requested_at, reviewed_by, reviewed_at, review_note`

func scanLeaveRequest(row interface{ Scan(...any) error }) (domain.LeaveRequest, error) {
	var (
		lr       domain.LeaveRequest
		typ      string
		status   string
		reviewed sql.NullTime
	)
	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &typ, &lr.StartDate, &lr.EndDate, &lr.Days,
		&lr.Reason, &status, &lr.RequestedAt, &lr.ReviewedBy, &reviewed,
		&lr.ReviewNote,
	)
	if err != nil {
		return domain.LeaveRequest{}, err
	}
	lr.Type = domain.LeaveType(typ)
	lr.Status = domain.LeaveStatus(status)
	lr.ReviewedAt = mapNullTimePtr(reviewed)
	return lr, nil
}

func (r *leaveRequestsRepo) CreateLeaveRequest(ctx context.Context, lr domain.LeaveRequest) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO leave_requests (id, employee_id, type, start_date, end_date, days, reason, status, requested_at, reviewed_by, review_note)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		lr.ID, lr.EmployeeID, string(lr.Type), lr.StartDate, lr.EndDate,
		lr.Days, lr.Reason, string(lr.Status), lr.RequestedAt,
		lr.ReviewedBy, lr.ReviewNote,
	)
	return mapConstraint(err)
}

func (r *leaveRequestsRepo) GetLeaveRequestByID(ctx context.Context, id string) (domain.LeaveRequest, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+leaveColumns+` FROM leave_requests WHERE id = ?`, id)
	lr, err := scanLeaveRequest(row)
	if err != nil {
		return domain.LeaveRequest{}, mapNotFound(err)
	}
	return lr, nil
}

func (r *leaveRequestsRepo) ListLeaveRequests(ctx context.Context) ([]domain.LeaveRequest, error) {
	return r.list(ctx,
		`SELECT `+leaveColumns+` FROM leave_requests ORDER BY requested_at DESC, id DESC`)
}

func (r *leaveRequestsRepo) ListLeaveRequestsByEmployee(ctx context.Context, employeeID string) ([]domain.LeaveRequest, error) {
	return r.list(ctx,
		`SELECT `+leaveColumns+` FROM leave_requests WHERE employee_id = ? ORDER BY requested_at DESC, id DESC`,
		employeeID)
}

func (r *leaveRequestsRepo) list(ctx context.Context, query string, args ...any) ([]domain.LeaveRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, lr)
	}
	return out, rows.Err()
}

func (r *leaveRequestsRepo) ReviewLeaveRequest(ctx context.Context, id string, status domain.LeaveStatus, reviewedBy, note string, at time.Time) error {
	// Guarded on status='pending' so a request can only be decided once.
	res, err := r.db.ExecContext(ctx, `
		UPDATE leave_requests
		SET status = ?, reviewed_by = ?, reviewed_at = ?, review_note = ?
		WHERE id = ? AND status = 'pending'`,
		string(status), reviewedBy, at, note, id,
	)
	return affectedOrNotFound(res, err)
}
