package sqlite

import (
	"context"
	"time"

	"github.com/sweetfm/backoffice/internal/backoffice/domain"
)

type invoicesRepo struct {
	db dbtx
}

const invoiceColumns = `id, number, client_id, amount_cents, paid_cents, status, issue_date, due_date, description, created_at, updated_at`

func scanInvoice(row interface{ Scan(...any) error }) (domain.Invoice, error) {
	var (
		inv    domain.Invoice
		status string
	)
	err := row.Scan(
		&inv.ID, &inv.Number, &inv.ClientID, &inv.AmountCents, &inv.PaidCents,
		&status, &inv.IssueDate, &inv.DueDate, &inv.Description,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return domain.Invoice{}, err
	}
	inv.Status = domain.InvoiceStatus(status)
	return inv, nil
}

func (r *invoicesRepo) CreateInvoice(ctx context.Context, inv domain.Invoice) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invoices (id, number, client_id, amount_cents, paid_cents, status, issue_date, due_date, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.Number, inv.ClientID, inv.AmountCents, inv.PaidCents,
		string(inv.Status), inv.IssueDate, inv.DueDate, inv.Description,
		inv.CreatedAt, inv.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *invoicesRepo) GetInvoiceByID(ctx context.Context, id string) (domain.Invoice, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = ?`, id)
	inv, err := scanInvoice(row)
	if err != nil {
		return domain.Invoice{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invoicesRepo) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	return r.list(ctx,
		`SELECT `+invoiceColumns+` FROM invoices ORDER BY issue_date DESC, number DESC`)
}

func (r *invoicesRepo) ListInvoicesByClient(ctx context.Context, clientID string) ([]domain.Invoice, error) {
	return r.list(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE client_id = ? ORDER BY issue_date DESC, number DESC`,
		clientID)
}

func (r *invoicesRepo) list(ctx context.Context, query string, args ...any) ([]domain.Invoice, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *invoicesRepo) UpdateInvoiceStatus(ctx context.Context, id string, status domain.InvoiceStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invoices SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC(), id)
	return affectedOrNotFound(res, err)
}

func (r *invoicesRepo) ApplyPayment(ctx context.Context, id string, paidCents int64, status domain.InvoiceStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invoices SET paid_cents = ?, status = ?, updated_at = ? WHERE id = ?`,
		paidCents, string(status), time.Now().UTC(), id)
	return affectedOrNotFound(res, err)
}
