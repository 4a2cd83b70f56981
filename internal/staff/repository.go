package staff

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, name, email, passwordHash, role string) (*Staff, error) {
	query := `
		INSERT INTO staff (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, password_hash, role, created_at
	`

	var s Staff
	err := r.db.GetContext(ctx, &s, query, name, email, passwordHash, role)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*Staff, error) {
	query := `
		SELECT id, name, email, password_hash, role, created_at
		FROM staff
		WHERE email = $1
	`

	var s Staff
	err := r.db.GetContext(ctx, &s, query, email)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*Staff, error) {
	query := `
		SELECT id, name, email, password_hash, role, created_at
		FROM staff
		WHERE id = $1
	`

	var s Staff
	err := r.db.GetContext(ctx, &s, query, id)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *Repository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM staff WHERE email = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, email)
	if err != nil {
		return false, err
	}

	return exists, nil
}
