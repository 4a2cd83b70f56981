package attendance

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"gymdesk/internal/subscription"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAttendanceRepo struct{ mock.Mock }
type MockSubsRepo struct{ mock.Mock }

func (m *MockAttendanceRepo) FindMemberByID(ctx context.Context, id uuid.UUID) (*MemberRef, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*MemberRef), args.Error(1)
}

func (m *MockAttendanceRepo) FindMemberByPhone(ctx context.Context, phone string) (*MemberRef, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*MemberRef), args.Error(1)
}

func (m *MockAttendanceRepo) Create(ctx context.Context, memberID uuid.UUID, date time.Time, checkInTime string, method Method) (*Record, error) {
	args := m.Called(ctx, memberID, date, checkInTime, method)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Record), args.Error(1)
}

func (m *MockAttendanceRepo) ListByMember(ctx context.Context, memberID uuid.UUID) ([]Record, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Record), args.Error(1)
}

func (m *MockAttendanceRepo) ListForDate(ctx context.Context, date time.Time) ([]RecordWithMember, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]RecordWithMember), args.Error(1)
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

func newTestService(repo Repository, subs subscription.Repository, now time.Time) *service {
	return &service{
		repo: repo,
		subs: subs,
		now:  func() time.Time { return now },
	}
}

func TestCheckIn_Success(t *testing.T) {
	repo := new(MockAttendanceRepo)
	subs := new(MockSubsRepo)
	now := time.Date(2026, time.March, 10, 7, 12, 45, 0, time.UTC)
	today := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	svc := newTestService(repo, subs, now)

	memberID := uuid.New()
	ref := &MemberRef{ID: memberID, FullName: "Asha Rao"}

	repo.On("FindMemberByPhone", mock.Anything, "9876543210").Return(ref, nil)
	subs.On("HasCurrentAccess", mock.Anything, memberID, today).Return(true, nil)
	repo.On("Create", mock.Anything, memberID, today, "07:12:45", MethodManual).
		Return(&Record{MemberID: memberID, Date: today, CheckInTime: "07:12:45"}, nil)

	result, err := svc.CheckIn(context.Background(), "9876543210", MethodManual)
	require.NoError(t, err)
	assert.Equal(t, memberID, result.MemberID)
	assert.Equal(t, "Asha Rao", result.MemberName)
	assert.Equal(t, "07:12:45", result.CheckInTime)
	repo.AssertExpectations(t)
	subs.AssertExpectations(t)
}

func TestCheckIn_ResolvesUUIDAsID(t *testing.T) {
	repo := new(MockAttendanceRepo)
	subs := new(MockSubsRepo)
	now := time.Date(2026, time.March, 10, 7, 12, 45, 0, time.UTC)
	today := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	svc := newTestService(repo, subs, now)

	memberID := uuid.New()
	ref := &MemberRef{ID: memberID, FullName: "Asha Rao"}

	repo.On("FindMemberByID", mock.Anything, memberID).Return(ref, nil)
	subs.On("HasCurrentAccess", mock.Anything, memberID, today).Return(true, nil)
	repo.On("Create", mock.Anything, memberID, today, "07:12:45", MethodQR).
		Return(&Record{MemberID: memberID}, nil)

	_, err := svc.CheckIn(context.Background(), memberID.String(), MethodQR)
	require.NoError(t, err)
	repo.AssertNotCalled(t, "FindMemberByPhone")
}

func TestCheckIn_DefaultsToManualMethod(t *testing.T) {
	repo := new(MockAttendanceRepo)
	subs := new(MockSubsRepo)
	now := time.Date(2026, time.March, 10, 7, 12, 45, 0, time.UTC)
	today := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	svc := newTestService(repo, subs, now)

	memberID := uuid.New()
	repo.On("FindMemberByPhone", mock.Anything, "9876543210").Return(&MemberRef{ID: memberID, FullName: "Asha Rao"}, nil)
	subs.On("HasCurrentAccess", mock.Anything, memberID, today).Return(true, nil)
	repo.On("Create", mock.Anything, memberID, today, "07:12:45", MethodManual).
		Return(&Record{MemberID: memberID}, nil)

	_, err := svc.CheckIn(context.Background(), " 9876543210 ", "")
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCheckIn_MemberNotFound(t *testing.T) {
	repo := new(MockAttendanceRepo)
	subs := new(MockSubsRepo)
	svc := newTestService(repo, subs, time.Now())

	repo.On("FindMemberByPhone", mock.Anything, "0000000000").Return(nil, sql.ErrNoRows)

	result, err := svc.CheckIn(context.Background(), "0000000000", MethodManual)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrMemberNotFound)
	subs.AssertNotCalled(t, "HasCurrentAccess")
	repo.AssertNotCalled(t, "Create")
}

func TestCheckIn_NoActiveSubscription(t *testing.T) {
	repo := new(MockAttendanceRepo)
	subs := new(MockSubsRepo)
	now := time.Date(2026, time.March, 10, 7, 0, 0, 0, time.UTC)
	today := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	svc := newTestService(repo, subs, now)

	memberID := uuid.New()
	repo.On("FindMemberByPhone", mock.Anything, "9876543210").Return(&MemberRef{ID: memberID, FullName: "Asha Rao"}, nil)
	subs.On("HasCurrentAccess", mock.Anything, memberID, today).Return(false, nil)

	result, err := svc.CheckIn(context.Background(), "9876543210", MethodManual)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrNoActiveSubscription)
	assert.Contains(t, err.Error(), "Asha Rao")

	// The gate stops the flow before any row is written.
	repo.AssertNotCalled(t, "Create")
}

func TestCheckIn_AlreadyCheckedIn(t *testing.T) {
	repo := new(MockAttendanceRepo)
	subs := new(MockSubsRepo)
	now := time.Date(2026, time.March, 10, 7, 0, 0, 0, time.UTC)
	today := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	svc := newTestService(repo, subs, now)

	memberID := uuid.New()
	repo.On("FindMemberByPhone", mock.Anything, "9876543210").Return(&MemberRef{ID: memberID, FullName: "Asha Rao"}, nil)
	subs.On("HasCurrentAccess", mock.Anything, memberID, today).Return(true, nil)
	repo.On("Create", mock.Anything, memberID, today, mock.Anything, MethodManual).
		Return(nil, ErrAlreadyCheckedIn)

	result, err := svc.CheckIn(context.Background(), "9876543210", MethodManual)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)
	assert.Contains(t, err.Error(), "Asha Rao")
}

func TestCheckIn_SubscriptionLookupError(t *testing.T) {
	repo := new(MockAttendanceRepo)
	subs := new(MockSubsRepo)
	svc := newTestService(repo, subs, time.Now())

	memberID := uuid.New()
	repo.On("FindMemberByPhone", mock.Anything, "9876543210").Return(&MemberRef{ID: memberID, FullName: "Asha Rao"}, nil)
	subs.On("HasCurrentAccess", mock.Anything, memberID, mock.Anything).Return(false, assert.AnError)

	result, err := svc.CheckIn(context.Background(), "9876543210", MethodManual)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, assert.AnError)
	repo.AssertNotCalled(t, "Create")
}

func TestTodaysAttendance(t *testing.T) {
	repo := new(MockAttendanceRepo)
	subs := new(MockSubsRepo)
	now := time.Date(2026, time.March, 10, 18, 0, 0, 0, time.UTC)
	today := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	svc := newTestService(repo, subs, now)

	records := []RecordWithMember{
		{Record: Record{CheckInTime: "07:12:45"}, MemberName: "Asha Rao"},
	}
	repo.On("ListForDate", mock.Anything, today).Return(records, nil)

	got, err := svc.TodaysAttendance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, records, got)
}
