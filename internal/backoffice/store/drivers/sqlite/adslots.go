package sqlite

import (
	"context"
	"time"

	"github.com/sweetfm/backoffice/internal/backoffice/domain"
)

type adSlotsRepo struct {
	db dbtx
}

const adSlotColumns = `id, client_id, title, spot_type, days_of_week, air_time, duration_seconds, start_date, end_date, show_id, cost_cents, status, created_at, updated_at`

func scanAdSlot(row interface{ Scan(...any) error }) (domain.AdSlot, error) {
	var (
		a        domain.AdSlot
		spotType string
		days     string
		status   string
	)
	err := row.Scan(
		&a.ID, &a.ClientID, &a.Title, &spotType, &days, &a.AirTime,
		&a.DurationSeconds, &a.StartDate, &a.EndDate, &a.ShowID,
		&a.CostCents, &status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return domain.AdSlot{}, err
	}
	a.SpotType = domain.SpotType(spotType)
	a.DaysOfWeek = decodeWeekdays(days)
	a.Status = domain.AdSlotStatus(status)
	return a, nil
}

func (r *adSlotsRepo) CreateAdSlot(ctx context.Context, a domain.AdSlot) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO ad_slots (id, client_id, title, spot_type, days_of_week, air_time, duration_seconds, start_date, end_date, show_id, cost_cents, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.ClientID, a.Title, string(a.SpotType),
		encodeWeekdays(a.DaysOfWeek), a.AirTime, a.DurationSeconds,
		a.StartDate, a.EndDate, a.ShowID, a.CostCents, string(a.Status),
		a.CreatedAt, a.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *adSlotsRepo) GetAdSlotByID(ctx context.Context, id string) (domain.AdSlot, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+adSlotColumns+` FROM ad_slots WHERE id = ?`, id)
	a, err := scanAdSlot(row)
	if err != nil {
		return domain.AdSlot{}, mapNotFound(err)
	}
	return a, nil
}

func (r *adSlotsRepo) ListAdSlots(ctx context.Context) ([]domain.AdSlot, error) {
	return r.list(ctx, `SELECT `+adSlotColumns+` FROM ad_slots ORDER BY air_time, title`)
}

func (r *adSlotsRepo) ListAdSlotsByClient(ctx context.Context, clientID string) ([]domain.AdSlot, error) {
	return r.list(ctx,
		`SELECT `+adSlotColumns+` FROM ad_slots WHERE client_id = ? ORDER BY air_time, title`,
		clientID)
}

func (r *adSlotsRepo) list(ctx context.Context, query string, args ...any) ([]domain.AdSlot, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AdSlot
	for rows.Next() {
		a, err := scanAdSlot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *adSlotsRepo) UpdateAdSlotStatus(ctx context.Context, id string, status domain.AdSlotStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE ad_slots SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC(), id)
	return affectedOrNotFound(res, err)
}

func (r *adSlotsRepo) DeleteAdSlot(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM ad_slots WHERE id = ?`, id)
	return affectedOrNotFound(res, err)
}
