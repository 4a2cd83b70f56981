package member

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// CreateWithSubscription inserts the member, their first subscription and
// the payment for it in one transaction. Either all three rows exist
// afterwards or none do.
func (r *repository) CreateWithSubscription(ctx context.Context, p OnboardingParams) (*Member, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	m := &Member{}
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO members (full_name, phone, email, gender, date_of_birth, address, info, status, join_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'active', $8)
		RETURNING id, full_name, phone, email, gender, date_of_birth, address, info, status, join_date, image_url, created_at
	`, p.FullName, p.Phone, p.Email, p.Gender, p.DateOfBirth, p.Address, p.Info, p.JoinDate).StructScan(m)
	if err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO subscriptions (member_id, plan_name, price, start_date, end_date, is_active)
		VALUES ($1, $2, $3, $4, $5, true)
	`, m.ID, p.PlanName, p.Price, p.StartDate, p.EndDate)
	if err != nil {
		return nil, fmt.Errorf("create subscription: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO payments (member_id, amount, date, method, admin_note)
		VALUES ($1, $2, $3, $4, $5)
	`, m.ID, p.PaymentAmount, p.PaymentDate, p.PaymentMethod, p.AdminNote)
	if err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return m, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Member, error) {
	query := `
		SELECT id, full_name, phone, email, gender, date_of_birth, address, info, status, join_date, image_url, created_at
		FROM members
		WHERE id = $1
	`

	var m Member
	err := r.db.GetContext(ctx, &m, query, id)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

// Update patches only the fields present in the request. Absent fields
// keep their stored values.
func (r *repository) Update(ctx context.Context, id uuid.UUID, p UpdateParams) error {
	sets := []string{}
	args := []interface{}{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if p.FullName != nil {
		add("full_name", *p.FullName)
	}
	if p.Phone != nil {
		add("phone", *p.Phone)
	}
	if p.Email != nil {
		add("email", *p.Email)
	}
	if p.Gender != nil {
		add("gender", *p.Gender)
	}
	if p.DateOfBirth != nil {
		add("date_of_birth", *p.DateOfBirth)
	}
	if p.Address != nil {
		add("address", *p.Address)
	}
	if p.Info != nil {
		add("info", *p.Info)
	}
	if p.Status != nil {
		add("status", *p.Status)
	}
	if p.ImageURL != nil {
		add("image_url", *p.ImageURL)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE members SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrMemberNotFound
	}

	return nil
}

func (r *repository) List(ctx context.Context, search, status string) ([]Member, error) {
	query := `
		SELECT id, full_name, phone, email, gender, date_of_birth, address, info, status, join_date, image_url, created_at
		FROM members
	`
	conditions := []string{}
	args := []interface{}{}

	if status != "" && status != "all" {
		args = append(args, status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		conditions = append(conditions, fmt.Sprintf("(full_name ILIKE $%d OR phone ILIKE $%d)", len(args), len(args)))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY created_at DESC"

	var members []Member
	err := r.db.SelectContext(ctx, &members, query, args...)
	if err != nil {
		return nil, err
	}

	return members, nil
}
