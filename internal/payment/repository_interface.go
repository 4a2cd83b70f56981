package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]Payment, error)
	List(ctx context.Context, from, to *time.Time) ([]PaymentWithMember, error)
}
