package member

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"gymdesk/internal/attendance"
	"gymdesk/internal/payment"
	"gymdesk/internal/subscription"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMemberRepo struct{ mock.Mock }
type MockSubsRepo struct{ mock.Mock }
type MockPaymentRepo struct{ mock.Mock }
type MockAttendanceRepo struct{ mock.Mock }

func (m *MockMemberRepo) CreateWithSubscription(ctx context.Context, p OnboardingParams) (*Member, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockMemberRepo) FindByID(ctx context.Context, id uuid.UUID) (*Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockMemberRepo) Update(ctx context.Context, id uuid.UUID, p UpdateParams) error {
	return m.Called(ctx, id, p).Error(0)
}

func (m *MockMemberRepo) List(ctx context.Context, search, status string) ([]Member, error) {
	args := m.Called(ctx, search, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Member), args.Error(1)
}

func (m *MockSubsRepo) ListByMember(ctx context.Context, memberID uuid.UUID) ([]subscription.Subscription, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]subscription.Subscription), args.Error(1)
}

func (m *MockSubsRepo) ListWithMembers(ctx context.Context) ([]subscription.SubscriptionWithMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]subscription.SubscriptionWithMember), args.Error(1)
}

func (m *MockSubsRepo) HasCurrentAccess(ctx context.Context, memberID uuid.UUID, today time.Time) (bool, error) {
	args := m.Called(ctx, memberID, today)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubsRepo) ListExpiringWithin(ctx context.Context, today time.Time, days int) ([]subscription.SubscriptionWithMember, error) {
	args := m.Called(ctx, today, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]subscription.SubscriptionWithMember), args.Error(1)
}

func (m *MockSubsRepo) Renew(ctx context.Context, p subscription.RenewParams) (*subscription.Subscription, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}

func (m *MockPaymentRepo) ListByMember(ctx context.Context, memberID uuid.UUID) ([]payment.Payment, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]payment.Payment), args.Error(1)
}

func (m *MockPaymentRepo) List(ctx context.Context, from, to *time.Time) ([]payment.PaymentWithMember, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]payment.PaymentWithMember), args.Error(1)
}

func (m *MockAttendanceRepo) FindMemberByID(ctx context.Context, id uuid.UUID) (*attendance.MemberRef, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*attendance.MemberRef), args.Error(1)
}

func (m *MockAttendanceRepo) FindMemberByPhone(ctx context.Context, phone string) (*attendance.MemberRef, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*attendance.MemberRef), args.Error(1)
}

func (m *MockAttendanceRepo) Create(ctx context.Context, memberID uuid.UUID, date time.Time, checkInTime string, method attendance.Method) (*attendance.Record, error) {
	args := m.Called(ctx, memberID, date, checkInTime, method)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*attendance.Record), args.Error(1)
}

func (m *MockAttendanceRepo) ListByMember(ctx context.Context, memberID uuid.UUID) ([]attendance.Record, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]attendance.Record), args.Error(1)
}

func (m *MockAttendanceRepo) ListForDate(ctx context.Context, date time.Time) ([]attendance.RecordWithMember, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]attendance.RecordWithMember), args.Error(1)
}

func newTestService(repo Repository, subs subscription.Repository, payments payment.Repository, att attendance.Repository, now time.Time) *service {
	return &service{
		repo:        repo,
		subsRepo:    subs,
		paymentRepo: payments,
		attRepo:     att,
		now:         func() time.Time { return now },
	}
}

func validRequest() CreateMemberRequest {
	return CreateMemberRequest{
		Profile: ProfileInput{
			FullName: "Asha Rao",
			Phone:    "9876543210",
		},
		Plan: PlanInput{
			PlanName:       "Quarterly",
			Price:          4500,
			DurationMonths: 3,
			StartDate:      "2026-03-10",
		},
		Payment: PaymentInput{
			Amount: 4500,
			Method: "upi",
		},
	}
}

func TestCreateWithSubscription_Validation(t *testing.T) {
	repo := new(MockMemberRepo)
	svc := newTestService(repo, nil, nil, nil, time.Date(2026, time.March, 10, 11, 0, 0, 0, time.UTC))

	badDOB := "31/01/1990"

	tests := []struct {
		name   string
		mutate func(r *CreateMemberRequest)
	}{
		{"missing full name", func(r *CreateMemberRequest) { r.Profile.FullName = "" }},
		{"missing phone", func(r *CreateMemberRequest) { r.Profile.Phone = "" }},
		{"missing plan name", func(r *CreateMemberRequest) { r.Plan.PlanName = "" }},
		{"zero price", func(r *CreateMemberRequest) { r.Plan.Price = 0 }},
		{"zero duration", func(r *CreateMemberRequest) { r.Plan.DurationMonths = 0 }},
		{"malformed start date", func(r *CreateMemberRequest) { r.Plan.StartDate = "March 10" }},
		{"malformed date of birth", func(r *CreateMemberRequest) { r.Profile.DateOfBirth = &badDOB }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			m, err := svc.CreateWithSubscription(context.Background(), req)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	repo.AssertNotCalled(t, "CreateWithSubscription")
}

func TestCreateWithSubscription_Success(t *testing.T) {
	repo := new(MockMemberRepo)
	now := time.Date(2026, time.March, 10, 11, 0, 0, 0, time.UTC)
	today := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	svc := newTestService(repo, nil, nil, nil, now)

	req := validRequest()

	want := &Member{
		ID:       uuid.New(),
		FullName: "Asha Rao",
		Phone:    "9876543210",
		Status:   StatusActive,
		JoinDate: today,
	}

	repo.On("CreateWithSubscription", mock.Anything, mock.MatchedBy(func(p OnboardingParams) bool {
		return p.FullName == "Asha Rao" &&
			p.Phone == "9876543210" &&
			p.JoinDate.Equal(today) &&
			p.PlanName == "Quarterly" &&
			p.StartDate.Equal(time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)) &&
			p.EndDate.Equal(time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)) &&
			p.PaymentAmount == 4500 &&
			p.PaymentMethod == "upi" &&
			p.PaymentDate.Equal(today)
	})).Return(want, nil)

	m, err := svc.CreateWithSubscription(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, want, m)
	repo.AssertExpectations(t)
}

func TestCreateWithSubscription_ClampsEndDate(t *testing.T) {
	repo := new(MockMemberRepo)
	svc := newTestService(repo, nil, nil, nil, time.Date(2023, time.January, 31, 9, 0, 0, 0, time.UTC))

	req := validRequest()
	req.Plan.StartDate = "2023-01-31"
	req.Plan.DurationMonths = 1

	repo.On("CreateWithSubscription", mock.Anything, mock.MatchedBy(func(p OnboardingParams) bool {
		return p.EndDate.Equal(time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC))
	})).Return(&Member{}, nil)

	_, err := svc.CreateWithSubscription(context.Background(), req)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestGet(t *testing.T) {
	repo := new(MockMemberRepo)
	svc := newTestService(repo, nil, nil, nil, time.Now())
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		want := &Member{ID: id, FullName: "Asha Rao"}
		repo.On("FindByID", mock.Anything, id).Return(want, nil).Once()

		m, err := svc.Get(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, want, m)
	})

	t.Run("not found", func(t *testing.T) {
		repo.On("FindByID", mock.Anything, id).Return(nil, sql.ErrNoRows).Once()

		m, err := svc.Get(context.Background(), id)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, ErrMemberNotFound)
	})
}

func TestUpdate(t *testing.T) {
	repo := new(MockMemberRepo)
	svc := newTestService(repo, nil, nil, nil, time.Now())
	id := uuid.New()

	t.Run("parses date of birth", func(t *testing.T) {
		dob := "1990-06-15"
		repo.On("Update", mock.Anything, id, mock.MatchedBy(func(p UpdateParams) bool {
			return p.DateOfBirth != nil &&
				p.DateOfBirth.Equal(time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC))
		})).Return(nil).Once()

		err := svc.Update(context.Background(), id, UpdateMemberRequest{DateOfBirth: &dob})
		require.NoError(t, err)
	})

	t.Run("rejects malformed date of birth", func(t *testing.T) {
		dob := "15/06/1990"
		err := svc.Update(context.Background(), id, UpdateMemberRequest{DateOfBirth: &dob})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("passes not found through", func(t *testing.T) {
		name := "New Name"
		repo.On("Update", mock.Anything, id, mock.Anything).Return(ErrMemberNotFound).Once()

		err := svc.Update(context.Background(), id, UpdateMemberRequest{FullName: &name})
		assert.ErrorIs(t, err, ErrMemberNotFound)
	})
}

func TestHistory(t *testing.T) {
	repo := new(MockMemberRepo)
	subsRepo := new(MockSubsRepo)
	paymentRepo := new(MockPaymentRepo)
	attRepo := new(MockAttendanceRepo)
	svc := newTestService(repo, subsRepo, paymentRepo, attRepo, time.Now())
	id := uuid.New()

	t.Run("unknown member", func(t *testing.T) {
		repo.On("FindByID", mock.Anything, id).Return(nil, sql.ErrNoRows).Once()

		h, err := svc.History(context.Background(), id)
		assert.Nil(t, h)
		assert.ErrorIs(t, err, ErrMemberNotFound)
	})

	t.Run("collects all three ledgers", func(t *testing.T) {
		repo.On("FindByID", mock.Anything, id).Return(&Member{ID: id}, nil).Once()

		subs := []subscription.Subscription{{MemberID: id, PlanName: "Quarterly"}}
		payments := []payment.Payment{{MemberID: id, Amount: 4500}}
		records := []attendance.Record{{MemberID: id, CheckInTime: "07:12:45"}}

		subsRepo.On("ListByMember", mock.Anything, id).Return(subs, nil).Once()
		paymentRepo.On("ListByMember", mock.Anything, id).Return(payments, nil).Once()
		attRepo.On("ListByMember", mock.Anything, id).Return(records, nil).Once()

		h, err := svc.History(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, subs, h.Subscriptions)
		assert.Equal(t, payments, h.Payments)
		assert.Equal(t, records, h.Attendance)
	})
}

func TestList(t *testing.T) {
	repo := new(MockMemberRepo)
	svc := newTestService(repo, nil, nil, nil, time.Now())

	members := []Member{{FullName: "Asha Rao"}, {FullName: "Vikram Shetty"}}
	repo.On("List", mock.Anything, "rao", "active").Return(members, nil)

	got, err := svc.List(context.Background(), "rao", "active")
	require.NoError(t, err)
	assert.Equal(t, members, got)
}
