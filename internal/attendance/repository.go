package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindMemberByID(ctx context.Context, id uuid.UUID) (*MemberRef, error) {
	query := `
		SELECT id, full_name
		FROM members
		WHERE id = $1
	`

	var ref MemberRef
	err := r.db.GetContext(ctx, &ref, query, id)
	if err != nil {
		return nil, err
	}

	return &ref, nil
}

func (r *repository) FindMemberByPhone(ctx context.Context, phone string) (*MemberRef, error) {
	query := `
		SELECT id, full_name
		FROM members
		WHERE phone = $1
	`

	var ref MemberRef
	err := r.db.GetContext(ctx, &ref, query, phone)
	if err != nil {
		return nil, err
	}

	return &ref, nil
}

// Create inserts the day's check-in row. The unique constraint on
// (member_id, date) is the duplicate guard: a second insert for the same
// member and day comes back as ErrAlreadyCheckedIn without a racy
// read-before-write.
func (r *repository) Create(ctx context.Context, memberID uuid.UUID, date time.Time, checkInTime string, method Method) (*Record, error) {
	query := `
		INSERT INTO attendance (member_id, date, check_in_time, method)
		VALUES ($1, $2, $3, $4)
		RETURNING id, member_id, date, check_in_time, check_out_time, method, created_at
	`

	var record Record
	err := r.db.GetContext(ctx, &record, query, memberID, date, checkInTime, method)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, err
	}

	return &record, nil
}

func (r *repository) ListByMember(ctx context.Context, memberID uuid.UUID) ([]Record, error) {
	query := `
		SELECT id, member_id, date, check_in_time, check_out_time, method, created_at
		FROM attendance
		WHERE member_id = $1
		ORDER BY date DESC
	`

	var records []Record
	err := r.db.SelectContext(ctx, &records, query, memberID)
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *repository) ListForDate(ctx context.Context, date time.Time) ([]RecordWithMember, error) {
	query := `
		SELECT
			a.id,
			a.member_id,
			a.date,
			a.check_in_time,
			a.check_out_time,
			a.method,
			a.created_at,
			m.full_name AS member_name,
			m.image_url AS member_image,
			m.status AS member_status
		FROM attendance a
		JOIN members m ON a.member_id = m.id
		WHERE a.date = $1
		ORDER BY a.created_at DESC
	`

	var records []RecordWithMember
	err := r.db.SelectContext(ctx, &records, query, date)
	if err != nil {
		return nil, err
	}

	return records, nil
}
