package subscription

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]Subscription, error)
	ListWithMembers(ctx context.Context) ([]SubscriptionWithMember, error)
	HasCurrentAccess(ctx context.Context, memberID uuid.UUID, today time.Time) (bool, error)
	ListExpiringWithin(ctx context.Context, today time.Time, days int) ([]SubscriptionWithMember, error)
	Renew(ctx context.Context, p RenewParams) (*Subscription, error)
}
