package payment

import (
	"context"
	"fmt"
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

func (r *repository) ListByMember(ctx context.Context, memberID uuid.UUID) ([]Payment, error) {
	query := `
		SELECT id, member_id, amount, date, method, admin_note, created_at
		FROM payments
		WHERE member_id = $1
		ORDER BY date DESC
	`

	var payments []Payment
	err := r.db.SelectContext(ctx, &payments, query, memberID)
	if err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *repository) List(ctx context.Context, from, to *time.Time) ([]PaymentWithMember, error) {
	query := `
		SELECT
			p.id,
			p.member_id,
			p.amount,
			p.date,
			p.method,
			p.admin_note,
			p.created_at,
			m.full_name AS member_name,
			m.image_url AS member_image
		FROM payments p
		JOIN members m ON p.member_id = m.id
	`
	args := []interface{}{}

	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" WHERE p.date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		if from != nil {
			query += fmt.Sprintf(" AND p.date <= $%d", len(args))
		} else {
			query += fmt.Sprintf(" WHERE p.date <= $%d", len(args))
		}
	}

	query += " ORDER BY p.date DESC, p.created_at DESC"

	var payments []PaymentWithMember
	err := r.db.SelectContext(ctx, &payments, query, args...)
	if err != nil {
		return nil, err
	}

	return payments, nil
}
