package attendance

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	FindMemberByID(ctx context.Context, id uuid.UUID) (*MemberRef, error)
	FindMemberByPhone(ctx context.Context, phone string) (*MemberRef, error)
	Create(ctx context.Context, memberID uuid.UUID, date time.Time, checkInTime string, method Method) (*Record, error)
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]Record, error)
	ListForDate(ctx context.Context, date time.Time) ([]RecordWithMember, error)
}
