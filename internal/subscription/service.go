package subscription

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const renewalNotePrefix = "Plan Renewal: "

var (
	ErrInvalidRenewal = errors.New("invalid renewal request")
)

type Service interface {
	Renew(ctx context.Context, memberID uuid.UUID, req RenewRequest) (*Subscription, error)
	ListWithStatus(ctx context.Context) ([]SubscriptionWithMember, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *service) Renew(ctx context.Context, memberID uuid.UUID, req RenewRequest) (*Subscription, error) {
	if req.PlanName == "" {
		return nil, fmt.Errorf("%w: plan name is required", ErrInvalidRenewal)
	}
	if req.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrInvalidRenewal)
	}
	if req.DurationMonths < 1 {
		return nil, fmt.Errorf("%w: duration must be at least one month", ErrInvalidRenewal)
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start date must be YYYY-MM-DD", ErrInvalidRenewal)
	}

	sub, err := s.repo.Renew(ctx, RenewParams{
		MemberID:      memberID,
		PlanName:      req.PlanName,
		Price:         req.Price,
		StartDate:     startDate,
		EndDate:       EndDate(startDate, req.DurationMonths),
		PaymentAmount: req.Price,
		PaymentMethod: req.PaymentMethod,
		PaymentDate:   DateOnly(s.now()),
		AdminNote:     renewalNotePrefix + req.AdminNote,
	})
	if err != nil {
		return nil, fmt.Errorf("renew subscription: %w", err)
	}

	return sub, nil
}

func (s *service) ListWithStatus(ctx context.Context) ([]SubscriptionWithMember, error) {
	subs, err := s.repo.ListWithMembers(ctx)
	if err != nil {
		return nil, err
	}

	today := DateOnly(s.now())
	for i := range subs {
		subs[i].RemainingDays = RemainingDays(subs[i].EndDate, today)
		subs[i].Status = Classify(subs[i].Subscription, today)
	}

	return subs, nil
}
