package subscription

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListByMember(ctx context.Context, memberID uuid.UUID) ([]Subscription, error) {
	query := `
		SELECT id, member_id, plan_name, price, start_date, end_date, is_active, created_at
		FROM subscriptions
		WHERE member_id = $1
		ORDER BY start_date DESC
	`

	var subs []Subscription
	err := r.db.SelectContext(ctx, &subs, query, memberID)
	if err != nil {
		return nil, err
	}

	return subs, nil
}

func (r *repository) ListWithMembers(ctx context.Context) ([]SubscriptionWithMember, error) {
	query := `
		SELECT
			s.id,
			s.member_id,
			s.plan_name,
			s.price,
			s.start_date,
			s.end_date,
			s.is_active,
			s.created_at,
			m.full_name AS member_name,
			m.image_url AS member_image
		FROM subscriptions s
		JOIN members m ON s.member_id = m.id
		ORDER BY s.end_date DESC
	`

	var subs []SubscriptionWithMember
	err := r.db.SelectContext(ctx, &subs, query)
	if err != nil {
		return nil, err
	}

	return subs, nil
}

func (r *repository) HasCurrentAccess(ctx context.Context, memberID uuid.UUID, today time.Time) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM subscriptions
			WHERE member_id = $1 AND is_active = true AND end_date >= $2
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, memberID, today)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) ListExpiringWithin(ctx context.Context, today time.Time, days int) ([]SubscriptionWithMember, error) {
	until := today.AddDate(0, 0, days)

	query := `
		SELECT
			s.id,
			s.member_id,
			s.plan_name,
			s.price,
			s.start_date,
			s.end_date,
			s.is_active,
			s.created_at,
			m.full_name AS member_name,
			m.image_url AS member_image,
			m.email AS member_email
		FROM subscriptions s
		JOIN members m ON s.member_id = m.id
		WHERE s.is_active = true AND s.end_date >= $1 AND s.end_date <= $2
		ORDER BY s.end_date ASC
	`

	var subs []SubscriptionWithMember
	err := r.db.SelectContext(ctx, &subs, query, today, until)
	if err != nil {
		return nil, err
	}

	return subs, nil
}

// Renew deactivates the member's previous subscriptions, inserts the new
// subscription and its payment, and flips the member back to active, all
// in one transaction.
func (r *repository) Renew(ctx context.Context, p RenewParams) (*Subscription, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		UPDATE subscriptions
		SET is_active = false
		WHERE member_id = $1 AND is_active = true
	`, p.MemberID)
	if err != nil {
		return nil, err
	}

	sub := &Subscription{}
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO subscriptions (member_id, plan_name, price, start_date, end_date, is_active)
		VALUES ($1, $2, $3, $4, $5, true)
		RETURNING id, member_id, plan_name, price, start_date, end_date, is_active, created_at
	`, p.MemberID, p.PlanName, p.Price, p.StartDate, p.EndDate).StructScan(sub)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO payments (member_id, amount, date, method, admin_note)
		VALUES ($1, $2, $3, $4, $5)
	`, p.MemberID, p.PaymentAmount, p.PaymentDate, p.PaymentMethod, p.AdminNote)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE members
		SET status = 'active'
		WHERE id = $1
	`, p.MemberID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return sub, nil
}
