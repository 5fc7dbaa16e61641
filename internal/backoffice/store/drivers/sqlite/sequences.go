package sqlite

import "context"

type sequencesRepo struct {
	db dbtx
}

// Next allocates the next counter value for (kind, year) in a single
// statement. The upsert makes the read-modify-write atomic, so two
// concurrent callers can never observe the same value.
func (r *sequencesRepo) Next(ctx context.Context, kind string, year int) (int, error) {
	var next int
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO sequences (kind, year, next) VALUES (?, ?, 1)
		ON CONFLICT (kind, year) DO UPDATE SET next = next + 1
		RETURNING next`,
		kind, year,
	).Scan(&next)
	if err != nil {
		return 0, err
	}
	return next, nil
}
