package member

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gymdesk/internal/attendance"
	"gymdesk/internal/email"
	"gymdesk/internal/payment"
	"gymdesk/internal/subscription"

	"github.com/google/uuid"
)

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrValidation     = errors.New("validation failed")
)

type Service interface {
	CreateWithSubscription(ctx context.Context, req CreateMemberRequest) (*Member, error)
	Get(ctx context.Context, id uuid.UUID) (*Member, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateMemberRequest) error
	List(ctx context.Context, search, status string) ([]Member, error)
	History(ctx context.Context, id uuid.UUID) (*History, error)
}

type service struct {
	repo         Repository
	subsRepo     subscription.Repository
	paymentRepo  payment.Repository
	attRepo      attendance.Repository
	emailService *email.Service
	now          func() time.Time
}

func NewService(
	repo Repository,
	subsRepo subscription.Repository,
	paymentRepo payment.Repository,
	attRepo attendance.Repository,
	emailService *email.Service,
) Service {
	return &service{
		repo:         repo,
		subsRepo:     subsRepo,
		paymentRepo:  paymentRepo,
		attRepo:      attRepo,
		emailService: emailService,
		now:          time.Now,
	}
}

// CreateWithSubscription onboards a member: the member row, their first
// subscription and its payment are written as one unit. Join date and
// payment date are always today, and the member starts out active, no
// matter what the caller sent.
func (s *service) CreateWithSubscription(ctx context.Context, req CreateMemberRequest) (*Member, error) {
	if req.Profile.FullName == "" {
		return nil, fmt.Errorf("%w: full name is required", ErrValidation)
	}
	if req.Profile.Phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrValidation)
	}
	if req.Plan.PlanName == "" {
		return nil, fmt.Errorf("%w: plan name is required", ErrValidation)
	}
	if req.Plan.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	if req.Plan.DurationMonths < 1 {
		return nil, fmt.Errorf("%w: duration must be at least one month", ErrValidation)
	}

	startDate, err := time.Parse("2006-01-02", req.Plan.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start date must be YYYY-MM-DD", ErrValidation)
	}

	var dob *time.Time
	if req.Profile.DateOfBirth != nil && *req.Profile.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", *req.Profile.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("%w: date of birth must be YYYY-MM-DD", ErrValidation)
		}
		dob = &parsed
	}

	today := subscription.DateOnly(s.now())
	endDate := subscription.EndDate(startDate, req.Plan.DurationMonths)

	m, err := s.repo.CreateWithSubscription(ctx, OnboardingParams{
		FullName:    req.Profile.FullName,
		Phone:       req.Profile.Phone,
		Email:       req.Profile.Email,
		Gender:      req.Profile.Gender,
		DateOfBirth: dob,
		Address:     req.Profile.Address,
		Info:        req.Profile.Info,
		JoinDate:    today,

		PlanName:  req.Plan.PlanName,
		Price:     req.Plan.Price,
		StartDate: startDate,
		EndDate:   endDate,

		PaymentAmount: req.Payment.Amount,
		PaymentMethod: req.Payment.Method,
		PaymentDate:   today,
		AdminNote:     req.Payment.AdminNote,
	})
	if err != nil {
		return nil, err
	}

	if s.emailService != nil && m.Email != nil {
		s.emailService.SendWelcome(ctx, *m.Email, m.FullName, req.Plan.PlanName, endDate)
	}

	return m, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Member, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return m, nil
}

// Update applies only the fields present in the request.
func (s *service) Update(ctx context.Context, id uuid.UUID, req UpdateMemberRequest) error {
	var dob *time.Time
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return fmt.Errorf("%w: date of birth must be YYYY-MM-DD", ErrValidation)
		}
		dob = &parsed
	}

	return s.repo.Update(ctx, id, UpdateParams{
		FullName:    req.FullName,
		Phone:       req.Phone,
		Email:       req.Email,
		Gender:      req.Gender,
		DateOfBirth: dob,
		Address:     req.Address,
		Info:        req.Info,
		Status:      req.Status,
		ImageURL:    req.ImageURL,
	})
}

func (s *service) List(ctx context.Context, search, status string) ([]Member, error) {
	return s.repo.List(ctx, search, status)
}

func (s *service) History(ctx context.Context, id uuid.UUID) (*History, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	subs, err := s.subsRepo.ListByMember(ctx, id)
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListByMember(ctx, id)
	if err != nil {
		return nil, err
	}

	records, err := s.attRepo.ListByMember(ctx, id)
	if err != nil {
		return nil, err
	}

	return &History{
		Subscriptions: subs,
		Payments:      payments,
		Attendance:    records,
	}, nil
}
