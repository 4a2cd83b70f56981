package dashboard

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountActiveMembers(ctx context.Context) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM members
		WHERE status = 'active'
	`

	var count int
	err := r.db.GetContext(ctx, &count, query)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repository) CountExpiringSubscriptions(ctx context.Context, from, to time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM subscriptions
		WHERE is_active = true AND end_date >= $1 AND end_date <= $2
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, from, to)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repository) SumPaymentsSince(ctx context.Context, from time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE date >= $1
	`

	var total float64
	err := r.db.GetContext(ctx, &total, query, from)
	if err != nil {
		return 0, err
	}

	return total, nil
}

func (r *repository) PaymentsSince(ctx context.Context, from time.Time) ([]PaymentDay, error) {
	query := `
		SELECT date, amount
		FROM payments
		WHERE date >= $1
		ORDER BY date ASC
	`

	var payments []PaymentDay
	err := r.db.SelectContext(ctx, &payments, query, from)
	if err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *repository) RecentCheckIns(ctx context.Context, limit int) ([]Activity, error) {
	query := `
		SELECT
			a.id,
			m.full_name AS member_name,
			m.image_url AS member_image,
			a.date,
			a.check_in_time
		FROM attendance a
		JOIN members m ON a.member_id = m.id
		ORDER BY a.created_at DESC
		LIMIT $1
	`

	var activity []Activity
	err := r.db.SelectContext(ctx, &activity, query, limit)
	if err != nil {
		return nil, err
	}

	return activity, nil
}
