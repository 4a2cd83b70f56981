package dashboard

import (
	"context"
	"time"
)

type Repository interface {
	CountActiveMembers(ctx context.Context) (int, error)
	CountExpiringSubscriptions(ctx context.Context, from, to time.Time) (int, error)
	SumPaymentsSince(ctx context.Context, from time.Time) (float64, error)
	PaymentsSince(ctx context.Context, from time.Time) ([]PaymentDay, error)
	RecentCheckIns(ctx context.Context, limit int) ([]Activity, error)
}
