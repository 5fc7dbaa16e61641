package sqlite

import (
	"context"
	"time"

	"github.com/sweetfm/backoffice/internal/backoffice/domain"
)

type employeesRepo struct {
	db dbtx
}

const employeeColumns = `id, display_id, name, email, phone, position, department, hire_date, salary_cents, deductions_cents, employment_type, status, created_at, updated_at`

func scanEmployee(row interface{ Scan(...any) error }) (domain.Employee, error) {
	var (
		e       domain.Employee
		empType string
		status  string
	)
	err := row.Scan(
		&e.ID, &e.DisplayID, &e.Name, &e.Email, &e.Phone, &e.Position,
		&e.Department, &e.HireDate, &e.SalaryCents, &e.DeductionsCents,
		&empType, &status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return domain.Employee{}, err
	}
	e.EmploymentType = domain.EmploymentType(empType)
	e.Status = domain.EmployeeStatus(status)
	return e, nil
}

func (r *employeesRepo) CreateEmployee(ctx context.Context, e domain.Employee) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO employees (id, display_id, name, email, phone, position, department, hire_date, salary_cents, deductions_cents, employment_type, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.DisplayID, e.Name, e.Email, e.Phone, e.Position, e.Department,
		e.HireDate, e.SalaryCents, e.DeductionsCents,
		string(e.EmploymentType), string(e.Status), e.CreatedAt, e.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *employeesRepo) GetEmployeeByID(ctx context.Context, id string) (domain.Employee, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE id = ?`, id)
	e, err := scanEmployee(row)
	if err != nil {
		return domain.Employee{}, mapNotFound(err)
	}
	return e, nil
}

func (r *employeesRepo) GetEmployeeByEmail(ctx context.Context, email string) (domain.Employee, error) {
	// The column has no NOCASE collation; account emails are folded here.
	row := r.db.QueryRowContext(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE email = ? COLLATE NOCASE ORDER BY created_at, id LIMIT 1`, email)
	e, err := scanEmployee(row)
	if err != nil {
		return domain.Employee{}, mapNotFound(err)
	}
	return e, nil
}

func (r *employeesRepo) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+employeeColumns+` FROM employees ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *employeesRepo) UpdateEmployee(ctx context.Context, e domain.Employee) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE employees
		SET name = ?, email = ?, phone = ?, position = ?, department = ?, salary_cents = ?, deductions_cents = ?, employment_type = ?, updated_at = ?
		WHERE id = ?`,
		e.Name, e.Email, e.Phone, e.Position, e.Department,
		e.SalaryCents, e.DeductionsCents, string(e.EmploymentType),
		time.Now().UTC(), e.ID,
	)
	return affectedOrNotFound(res, err)
}

func (r *employeesRepo) UpdateEmployeeStatus(ctx context.Context, id string, status domain.EmployeeStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE employees SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC(), id)
	return affectedOrNotFound(res, err)
}

func (r *employeesRepo) DeleteEmployee(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	return affectedOrNotFound(res, err)
}
