package member

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	CreateWithSubscription(ctx context.Context, p OnboardingParams) (*Member, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Member, error)
	Update(ctx context.Context, id uuid.UUID, p UpdateParams) error
	List(ctx context.Context, search, status string) ([]Member, error)
}
